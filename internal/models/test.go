package models

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	ShortAnswer    QuestionType = "short_answer"
	Numeric        QuestionType = "numeric"
	Spelling       QuestionType = "spelling"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, ShortAnswer, Numeric, Spelling:
		return true
	}
	return false
}

// Question is embedded in a Test and has no identity of its own. For
// spelling questions Prompt is the word read aloud, not shown.
type Question struct {
	Type    QuestionType `json:"type" validate:"required,question_type"`
	Prompt  string       `json:"prompt" validate:"required,notblank"`
	Choices []string     `json:"choices,omitempty"`
	Answer  Answer       `json:"answer" validate:"required"`
}

// Test is stored under test:<id>. Questions may be empty on write; such a
// test cannot be served for grading.
type Test struct {
	ID        string     `json:"id"`
	Title     string     `json:"title" validate:"required,notblank"`
	Subject   string     `json:"subject,omitempty"`
	Grade     string     `json:"grade,omitempty"`
	Questions []Question `json:"questions" validate:"required,dive"`
}

func (t *Test) IsGradable() bool {
	return len(t.Questions) > 0
}
