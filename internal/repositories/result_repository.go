package repositories

import (
	"context"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
)

// ResultRepository stores attempt records under test:<testId>:result:<id> and
// indexes them per test in test:<testId>:results.
type ResultRepository interface {
	// Save stores a graded attempt. The owning test is not looked up.
	Save(ctx context.Context, testID string, data *models.ResultData) (*models.Result, error)
	GetByID(ctx context.Context, testID, resultID string) (*models.Result, error)

	// Count is advisory and returns 0 on any failure.
	Count(ctx context.Context, testID string) int
	// List never fails; unreadable records are dropped.
	List(ctx context.Context, testID string) *ResultList
	// DeleteAll removes every record of a test best-effort, then the index,
	// and returns how many records were actually removed.
	DeleteAll(ctx context.Context, testID string) int
}
