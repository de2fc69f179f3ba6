package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound = apperrors.ErrNotFound

	// Test specific errors
	ErrTestNotFound = repositories.ErrTestNotFound

	// Result specific errors
	ErrResultNotFound = repositories.ErrResultNotFound
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// UnusableTestError is returned when a stored test cannot be served to a
// student. It unwraps to the ValidationErrors describing why.
type UnusableTestError struct {
	TestID string
	Errors ValidationErrors
}

func (e *UnusableTestError) Error() string {
	return "test " + e.TestID + " cannot be taken: " + e.Errors.Error()
}

func (e *UnusableTestError) Unwrap() error {
	return e.Errors
}

// ===== ERROR HELPERS =====


func newUnusableTestError(testID string) error {
	return &UnusableTestError{
		TestID: testID,
		Errors: ValidationErrors{*apperrors.NewValidationErrorWithRule("questions", "test has no questions", "min", 0)},
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsUnusableTest checks if a test was found but cannot be served
func IsUnusableTest(err error) bool {
	var ue *UnusableTestError
	return errors.As(err, &ue)
}

// IsStoreError checks if error came from the key-value store
func IsStoreError(err error) bool {
	return apperrors.IsStoreError(err)
}
