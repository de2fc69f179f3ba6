package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/SAP-F-2025/practice-quiz/internal/events"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mathQuiz() *models.Test {
	return &models.Test{
		Title: "Math Quiz",
		Questions: []models.Question{
			{Type: models.Numeric, Prompt: "2+2", Answer: models.NumberAnswer(4)},
		},
	}
}

func TestResultService_MathQuizScenario(t *testing.T) {
	it := newIntegration(t)
	ctx := context.Background()

	created, err := it.services.Test().CreateTest(ctx, mathQuiz())
	require.NoError(t, err)

	first, err := it.services.Result().SubmitAttempt(ctx, created.ID, &SubmitAttemptRequest{
		Answers: []models.Answer{models.NumberAnswer(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Correct)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 100, first.Percentage)
	assert.Equal(t, created.ID, first.TestID)

	stored, err := it.services.Result().GetResult(ctx, created.ID, first.ResultID)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	second, err := it.services.Result().SubmitAttempt(ctx, created.ID, &SubmitAttemptRequest{
		Answers: []models.Answer{models.TextAnswer("five")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Correct)
	assert.Equal(t, 0, second.Percentage)
	assert.Equal(t, []models.AnswerRecord{{QuestionIndex: 0, Answer: models.TextAnswer("five"), IsCorrect: false}}, second.Answers)

	assert.Equal(t, 2, it.services.Result().CountResults(ctx, created.ID))

	list := it.services.Result().ListResults(ctx, created.ID)
	assert.Len(t, list.Results, 2)
	assert.Equal(t, models.Statistics{Total: 2, Average: 50, Highest: 100, Lowest: 0}, list.Statistics)

	assert.Equal(t, []events.EventType{
		events.EventTestCreated,
		events.EventResultSubmitted,
		events.EventResultSubmitted,
	}, eventTypes(it.publisher))
}

func TestResultService_SubmitAttemptErrors(t *testing.T) {
	it := newIntegration(t)
	ctx := context.Background()

	_, err := it.services.Result().SubmitAttempt(ctx, "missing", &SubmitAttemptRequest{})
	assert.ErrorIs(t, err, ErrTestNotFound)

	draft, err := it.services.Test().CreateTest(ctx, &models.Test{Title: "Draft", Questions: []models.Question{}})
	require.NoError(t, err)

	_, err = it.services.Result().SubmitAttempt(ctx, draft.ID, &SubmitAttemptRequest{})
	assert.True(t, IsUnusableTest(err))
	assert.Equal(t, 0, it.services.Result().CountResults(ctx, draft.ID))
}

func TestResultService_SubmitAttemptWithMissingAnswers(t *testing.T) {
	it := newIntegration(t)
	ctx := context.Background()

	test := mathQuiz()
	test.Questions = append(test.Questions, models.Question{Type: models.Spelling, Prompt: "Spell cat", Answer: models.TextAnswer("cat")})
	created, err := it.services.Test().CreateTest(ctx, test)
	require.NoError(t, err)

	result, err := it.services.Result().SubmitAttempt(ctx, created.ID, &SubmitAttemptRequest{
		Answers: []models.Answer{models.TextAnswer("4.0")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Correct)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 50, result.Percentage)
}

func TestResultService_SubmitResult(t *testing.T) {
	it := newIntegration(t)
	ctx := context.Background()

	// the test is not required to exist
	resp, err := it.services.Result().SubmitResult(ctx, "external", &models.ResultData{
		Correct:    2,
		Total:      3,
		Percentage: 67,
		Answers:    []models.AnswerRecord{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResultID)
	assert.Equal(t, 1, it.services.Result().CountResults(ctx, "external"))

	_, err = it.services.Result().SubmitResult(ctx, "external", &models.ResultData{Correct: 4, Total: 3, Answers: []models.AnswerRecord{}})
	assert.True(t, IsValidation(err))

	published := it.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	data, ok := published[0].Data.(events.ResultSubmittedEvent)
	require.True(t, ok)
	assert.False(t, data.Graded)
}

func TestResultService_GetResultErrors(t *testing.T) {
	repo, _, svc := newMockedServices()
	storeErr := apperrors.NewStoreError("get", "test:t1:result:r2", errors.New("timeout"))
	repo.results.On("GetByID", mock.Anything, "t1", "r1").Return(nil, repositories.ErrResultNotFound)
	repo.results.On("GetByID", mock.Anything, "t1", "r2").Return(nil, storeErr)

	_, err := svc.Result().GetResult(context.Background(), "t1", "r1")
	assert.ErrorIs(t, err, ErrResultNotFound)

	_, err = svc.Result().GetResult(context.Background(), "t1", "r2")
	assert.True(t, IsStoreError(err))
	assert.False(t, IsNotFound(err))
}

func TestExportService_ExportResults(t *testing.T) {
	it := newIntegration(t)
	ctx := context.Background()

	created, err := it.services.Test().CreateTest(ctx, mathQuiz())
	require.NoError(t, err)
	for _, answer := range []models.Answer{models.NumberAnswer(4), models.TextAnswer("five")} {
		_, err := it.services.Result().SubmitAttempt(ctx, created.ID, &SubmitAttemptRequest{Answers: []models.Answer{answer}})
		require.NoError(t, err)
	}

	data, err := it.services.Export().ExportResults(ctx, created.ID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Results", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Result ID", "Timestamp", "Correct", "Total", "Percentage"}, rows[0])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Test", "Math Quiz"},
		{"Attempts", "2"},
		{"Average", "50"},
		{"Highest", "100"},
		{"Lowest", "0"},
	}, summary)
}

func TestExportService_ExportWithoutTest(t *testing.T) {
	it := newIntegration(t)

	data, err := it.services.Export().ExportResults(context.Background(), "gone")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Attempts", "0"}, summary[0])
}
