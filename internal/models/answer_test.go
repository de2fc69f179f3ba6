package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswer_UnmarshalKeepsKind(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"type":"numeric","prompt":"2+2","answer":4}`), &q))
	n, ok := q.Answer.Number()
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"short_answer","prompt":"?","answer":"4"}`), &q))
	assert.Equal(t, AnswerKindText, q.Answer.Kind())
	assert.Equal(t, "4", q.Answer.String())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"short_answer","prompt":"?","answer":null}`), &q))
	assert.True(t, q.Answer.IsZero())
}

func TestAnswer_UnmarshalRejectsOtherKinds(t *testing.T) {
	for _, raw := range []string{`true`, `{"a":1}`, `[1]`} {
		var a Answer
		assert.Error(t, json.Unmarshal([]byte(raw), &a), raw)
	}
}

func TestAnswer_Marshal(t *testing.T) {
	out, err := json.Marshal([]Answer{NumberAnswer(4), NumberAnswer(2.5), TextAnswer("Paris"), {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[4, 2.5, "Paris", null]`, string(out))

	assert.Equal(t, "4", NumberAnswer(4.0).String())
	assert.Equal(t, "-0.25", NumberAnswer(-0.25).String())
}

func TestResult_Time(t *testing.T) {
	r := &Result{Timestamp: "2024-05-01T10:00:00.123Z"}
	assert.Equal(t, 2024, r.Time().Year())

	r.Timestamp = "2024-05-01T10:00:00Z"
	assert.False(t, r.Time().IsZero())

	r.Timestamp = "yesterday"
	assert.True(t, r.Time().IsZero())

	r.Timestamp = ""
	assert.True(t, r.Time().IsZero())
}

func TestResult_JSONShape(t *testing.T) {
	r := Result{
		ResultID:  "r1",
		TestID:    "t1",
		Timestamp: "2024-05-01T10:00:00Z",
		ResultData: ResultData{
			Correct:    1,
			Total:      1,
			Percentage: 100,
			Answers:    []AnswerRecord{{QuestionIndex: 0, Answer: NumberAnswer(4), IsCorrect: true}},
		},
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resultId": "r1",
		"testId": "t1",
		"timestamp": "2024-05-01T10:00:00Z",
		"correct": 1,
		"total": 1,
		"percentage": 100,
		"answers": [{"questionIndex": 0, "answer": 4, "isCorrect": true}]
	}`, string(out))
}

func TestTest_IsGradable(t *testing.T) {
	assert.False(t, (&Test{Title: "empty", Questions: []Question{}}).IsGradable())
	assert.True(t, (&Test{Title: "one", Questions: []Question{{Type: Numeric}}}).IsGradable())
	assert.True(t, Spelling.IsValid())
	assert.False(t, QuestionType("essay").IsValid())
}
