package models

import "time"

type AnswerRecord struct {
	QuestionIndex int    `json:"questionIndex" validate:"gte=0"`
	Answer        Answer `json:"answer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// ResultData is a graded attempt before it is assigned an id and timestamp.
type ResultData struct {
	Correct    int            `json:"correct" validate:"gte=0,ltefield=Total"`
	Total      int            `json:"total" validate:"gte=0"`
	Percentage int            `json:"percentage" validate:"gte=0,lte=100"`
	Answers    []AnswerRecord `json:"answers" validate:"required,dive"`
}

// Result is an immutable attempt record stored under
// test:<testId>:result:<resultId>.
type Result struct {
	ResultID  string `json:"resultId"`
	TestID    string `json:"testId"`
	Timestamp string `json:"timestamp"`
	ResultData
}

// Time parses Timestamp. Records with a missing or malformed timestamp report
// the zero time so that they order as the oldest.
func (r *Result) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

type Statistics struct {
	Total   int `json:"total"`
	Average int `json:"average"`
	Highest int `json:"highest"`
	Lowest  int `json:"lowest"`
}
