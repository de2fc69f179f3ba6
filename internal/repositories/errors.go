package repositories

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
)

var (
	ErrTestNotFound   = fmt.Errorf("test %w", apperrors.ErrNotFound)
	ErrResultNotFound = fmt.Errorf("result %w", apperrors.ErrNotFound)
)

// IsNotFoundError reports whether err means the referenced record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
