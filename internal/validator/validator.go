package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator is the main validator instance that combines all validation types
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	questionValidator := NewQuestionValidator()

	// Register all custom validators once
	registerCustomValidators(structValidator)
	structValidator.RegisterStructValidation(questionValidator.validateQuestionStruct, models.Question{})
	structValidator.RegisterStructValidation(validateResultStruct, models.ResultData{})

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates s and converts failures into ValidationErrors
func (v *Validator) Validate(s interface{}) error {
	err := v.ValidateStruct(s)
	if err == nil {
		return nil
	}
	if errs := ToValidationErrors(err); len(errs) > 0 {
		return errs
	}
	return err
}

// ValidateTest checks a test definition before it is written
func (v *Validator) ValidateTest(test *models.Test) error {
	if test == nil {
		return ValidationErrors{*NewValidationErrorWithRule("test", "is required", "required", nil)}
	}
	return v.Validate(test)
}

// ValidateResultData checks a graded attempt payload before it is written
func (v *Validator) ValidateResultData(data *models.ResultData) error {
	if data == nil {
		return ValidationErrors{*NewValidationErrorWithRule("result", "is required", "required", nil)}
	}
	return v.Validate(data)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("notblank", validators.NotBlank)

	// Answer is validated through its underlying value so that "required"
	// rejects a missing or null answer.
	validate.RegisterCustomTypeFunc(answerValue, models.Answer{})

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionType(fl validator.FieldLevel) bool {
	return models.QuestionType(fl.Field().String()).IsValid()
}

func answerValue(field reflect.Value) interface{} {
	answer, ok := field.Interface().(models.Answer)
	if !ok || answer.IsZero() {
		return nil
	}
	// Numbers render as non-empty text, so 0 is a valid canonical answer.
	return answer.String()
}
