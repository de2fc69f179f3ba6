package repositories

import (
	"context"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
)

// Repository groups the repositories that share one key-value store.
type Repository interface {
	Test() TestRepository
	Result() ResultRepository

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

// ===== SHARED RESULT STRUCTS =====

// ResultList is the read-back of every attempt recorded for a test, newest
// first, with statistics computed over exactly the returned records.
type ResultList struct {
	Results    []*models.Result  `json:"results"`
	Statistics models.Statistics `json:"statistics"`
}
