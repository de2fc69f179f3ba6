package repositories

import (
	"context"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
)

// TestRepository stores test definitions under test:<id> and indexes them in
// the test:ids set.
type TestRepository interface {
	// Create validates and stores a new test, returning its generated id.
	// The record write and the index update are two separate calls; a failure
	// between them is reported but not rolled back.
	Create(ctx context.Context, test *models.Test) (string, error)
	GetByID(ctx context.Context, id string) (*models.Test, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, test *models.Test) error
	Delete(ctx context.Context, id string) error

	// GetAll returns every readable test. Index entries whose record is
	// missing or unreadable are skipped.
	GetAll(ctx context.Context) []*models.Test
}
