package kv

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/store"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func resultData(correct, total, percentage int) *models.ResultData {
	answers := make([]models.AnswerRecord, 0, total)
	for i := 0; i < total; i++ {
		answers = append(answers, models.AnswerRecord{
			QuestionIndex: i,
			Answer:        models.TextAnswer("x"),
			IsCorrect:     i < correct,
		})
	}
	return &models.ResultData{
		Correct:    correct,
		Total:      total,
		Percentage: percentage,
		Answers:    answers,
	}
}

func TestResultKV_SaveAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.repo.Result().Save(ctx, "t1", resultData(1, 1, 100))
	require.NoError(t, err)
	assert.Equal(t, "id-1", saved.ResultID)
	assert.Equal(t, "t1", saved.TestID)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", saved.Timestamp)

	assert.True(t, f.mr.Exists(store.ResultKey("t1", "id-1")))
	isMember, err := f.mr.SIsMember(store.ResultIndexKey("t1"), "id-1")
	require.NoError(t, err)
	assert.True(t, isMember)

	got, err := f.repo.Result().GetByID(ctx, "t1", saved.ResultID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = f.repo.Result().GetByID(ctx, "t1", "missing")
	assert.ErrorIs(t, err, repositories.ErrResultNotFound)
}

func TestResultKV_SaveValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		testID string
		data   *models.ResultData
	}{
		{name: "blank test id", testID: "  ", data: resultData(1, 1, 100)},
		{name: "nil payload", testID: "t1", data: nil},
		{name: "correct above total", testID: "t1", data: &models.ResultData{Correct: 3, Total: 2, Percentage: 100, Answers: []models.AnswerRecord{}}},
		{name: "percentage out of range", testID: "t1", data: &models.ResultData{Correct: 1, Total: 1, Percentage: 150, Answers: []models.AnswerRecord{}}},
		{name: "missing answers", testID: "t1", data: &models.ResultData{Correct: 1, Total: 1, Percentage: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.repo.Result().Save(ctx, tt.testID, tt.data)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}

	assert.Equal(t, 0, f.repo.Result().Count(ctx, "t1"))
}

func TestResultKV_ListNewestFirstWithStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, pct := range []int{100, 80, 60} {
		correct := pct / 20
		_, err := f.repo.Result().Save(ctx, "t1", resultData(correct, 5, pct))
		require.NoError(t, err)
	}

	// a legacy record with an unparsable timestamp sorts last
	f.mr.Set(store.ResultKey("t1", "legacy"), `{"resultId":"legacy","testId":"t1","timestamp":"yesterday","correct":0,"total":5,"percentage":0,"answers":[]}`)
	_, err := f.mr.SAdd(store.ResultIndexKey("t1"), "legacy")
	require.NoError(t, err)

	list := f.repo.Result().List(ctx, "t1")
	require.Len(t, list.Results, 4)

	ids := make([]string, 0, len(list.Results))
	for _, r := range list.Results {
		ids = append(ids, r.ResultID)
	}
	assert.Equal(t, []string{"id-3", "id-2", "id-1", "legacy"}, ids)
	assert.Equal(t, models.Statistics{Total: 4, Average: 60, Highest: 100, Lowest: 0}, list.Statistics)
}

func TestResultKV_ListEmptyAndUnreadable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list := f.repo.Result().List(ctx, "nothing")
	assert.NotNil(t, list.Results)
	assert.Empty(t, list.Results)
	assert.Equal(t, models.Statistics{}, list.Statistics)

	f.mr.Set(store.ResultKey("t1", "broken"), "not json")
	_, err := f.mr.SAdd(store.ResultIndexKey("t1"), "broken", "dangling")
	require.NoError(t, err)

	list = f.repo.Result().List(ctx, "t1")
	assert.Empty(t, list.Results)
	assert.Equal(t, 0, list.Statistics.Total)
}

func TestResultKV_Count(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, 0, f.repo.Result().Count(ctx, "t1"))
	for i := 0; i < 2; i++ {
		_, err := f.repo.Result().Save(ctx, "t1", resultData(0, 1, 0))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, f.repo.Result().Count(ctx, "t1"))

	f.mr.SetError("ERR server unavailable")
	assert.Equal(t, 0, f.repo.Result().Count(ctx, "t1"))
	f.mr.SetError("")
	assert.Equal(t, 2, f.repo.Result().Count(ctx, "t1"))
}

func TestResultKV_DeleteAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.repo.Result().Save(ctx, "t1", resultData(1, 1, 100))
		require.NoError(t, err)
	}
	_, err := f.repo.Result().Save(ctx, "t2", resultData(1, 1, 100))
	require.NoError(t, err)

	assert.Equal(t, 3, f.repo.Result().DeleteAll(ctx, "t1"))
	assert.Equal(t, 0, f.repo.Result().Count(ctx, "t1"))
	assert.False(t, f.mr.Exists(store.ResultIndexKey("t1")))
	assert.Empty(t, f.repo.Result().List(ctx, "t1").Results)

	assert.Equal(t, 1, f.repo.Result().Count(ctx, "t2"), "other tests keep their results")
	assert.Equal(t, 0, f.repo.Result().DeleteAll(ctx, "t1"))
}

func TestResultKV_DeleteAllBestEffort(t *testing.T) {
	kv := new(MockKeyValueStore)
	kv.On("SetMembers", mock.Anything, "test:t1:results").Return([]string{"a", "b", "c"}, nil)
	kv.On("Delete", mock.Anything, "test:t1:result:a").Return(true, nil)
	kv.On("Delete", mock.Anything, "test:t1:result:b").Return(false, apperrors.NewStoreError("delete", "test:t1:result:b", errors.New("timeout")))
	kv.On("Delete", mock.Anything, "test:t1:result:c").Return(false, nil)
	kv.On("Delete", mock.Anything, "test:t1:results").Return(true, nil)

	repo := NewResultKV(kv, validator.New(), discardLogger(), NewSharedHelpers(sequentialIDs(), nil))

	assert.Equal(t, 1, repo.DeleteAll(context.Background(), "t1"))
	kv.AssertExpectations(t)
}

func TestResultKV_DeleteAllIndexFailure(t *testing.T) {
	kv := new(MockKeyValueStore)
	kv.On("SetMembers", mock.Anything, "test:t1:results").Return(nil, errors.New("timeout"))

	repo := NewResultKV(kv, validator.New(), discardLogger(), NewSharedHelpers(sequentialIDs(), nil))

	assert.Equal(t, 0, repo.DeleteAll(context.Background(), "t1"))
	kv.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
