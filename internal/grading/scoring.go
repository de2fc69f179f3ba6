// Package grading holds the pure scoring and statistics functions. Nothing in
// this package performs I/O.
package grading

import (
	"math"
	"strings"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
)

type QuestionOutcome struct {
	QuestionIndex int           `json:"questionIndex"`
	Answer        models.Answer `json:"answer"`
	IsCorrect     bool          `json:"isCorrect"`
}

type ScoreResult struct {
	Correct     int               `json:"correct"`
	Total       int               `json:"total"`
	Percentage  int               `json:"percentage"`
	PerQuestion []QuestionOutcome `json:"perQuestion"`
}

// Score grades submitted answers against questions. Answers are matched by
// position; a missing answer is graded as blank text and extra answers are
// ignored.
func Score(questions []models.Question, answers []models.Answer) ScoreResult {
	result := ScoreResult{
		Total:       len(questions),
		PerQuestion: make([]QuestionOutcome, len(questions)),
	}

	for i, q := range questions {
		submitted := models.TextAnswer("")
		if i < len(answers) && !answers[i].IsZero() {
			submitted = answers[i]
		}

		ok := IsCorrect(q, submitted)
		if ok {
			result.Correct++
		}
		result.PerQuestion[i] = QuestionOutcome{
			QuestionIndex: i,
			Answer:        submitted,
			IsCorrect:     ok,
		}
	}

	result.Percentage = Percentage(result.Correct, result.Total)
	return result
}

// IsCorrect applies the type-aware equality rule to one question.
func IsCorrect(q models.Question, submitted models.Answer) bool {
	want, wantIsNumber := q.Answer.Number()
	got, gotIsNumber := submitted.Number()
	if wantIsNumber && gotIsNumber {
		return got == want
	}

	if q.Type == models.Numeric {
		got, gotOK := numericValue(submitted)
		want, wantOK := numericValue(q.Answer)
		return gotOK && wantOK && got == want
	}

	return normalize(submitted.String()) == normalize(q.Answer.String())
}

// Percentage is round(100 * correct / total), rounding halves up, and 0 when
// total is 0.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(100 * float64(correct) / float64(total))
}

// ToRecords converts per-question outcomes into the stored answer records.
func (r ScoreResult) ToRecords() []models.AnswerRecord {
	records := make([]models.AnswerRecord, len(r.PerQuestion))
	for i, o := range r.PerQuestion {
		records[i] = models.AnswerRecord{
			QuestionIndex: o.QuestionIndex,
			Answer:        o.Answer,
			IsCorrect:     o.IsCorrect,
		}
	}
	return records
}

// ToResultData packages the score in the shape persisted for an attempt.
func (r ScoreResult) ToResultData() models.ResultData {
	return models.ResultData{
		Correct:    r.Correct,
		Total:      r.Total,
		Percentage: r.Percentage,
		Answers:    r.ToRecords(),
	}
}

func numericValue(a models.Answer) (float64, bool) {
	if n, ok := a.Number(); ok {
		return n, true
	}
	if a.IsZero() {
		return 0, false
	}
	return ParseNumber(a.String())
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
