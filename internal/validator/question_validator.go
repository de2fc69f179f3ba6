package validator

import (
	"strings"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/go-playground/validator/v10"
)

// MinChoices is the minimum number of non-blank choices of a multiple choice question.
const MinChoices = 2

// QuestionValidator handles question-specific validation
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// CountChoices returns the number of non-blank choices
func (v *QuestionValidator) CountChoices(choices []string) int {
	n := 0
	for _, c := range choices {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}

// validateQuestionStruct enforces the rules that depend on the question type.
func (v *QuestionValidator) validateQuestionStruct(sl validator.StructLevel) {
	question := sl.Current().Interface().(models.Question)

	if question.Type == models.MultipleChoice && v.CountChoices(question.Choices) < MinChoices {
		sl.ReportError(question.Choices, "choices", "Choices", "min_choices", "2")
	}
}
