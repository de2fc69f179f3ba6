package validator

import (
	"github.com/SAP-F-2025/practice-quiz/internal/grading"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/go-playground/validator/v10"
)

// validateResultStruct checks that a stored percentage agrees with its counts.
// Out-of-range values are already reported by the field tags.
func validateResultStruct(sl validator.StructLevel) {
	data := sl.Current().Interface().(models.ResultData)

	if data.Percentage < 0 || data.Percentage > 100 || data.Correct > data.Total {
		return
	}
	if want := grading.Percentage(data.Correct, data.Total); data.Percentage != want {
		sl.ReportError(data.Percentage, "percentage", "Percentage", "percentage_mismatch", "")
	}
}
