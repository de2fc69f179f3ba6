package services

import (
	"context"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
)

// ===== REQUEST / RESPONSE TYPES =====

type CreateTestResponse struct {
	ID string `json:"id"`
}

// UpdateTestResponse describes what an update did to the test's results.
type UpdateTestResponse struct {
	ID          string `json:"id"`
	HadResults  bool   `json:"hadResults"`
	Purged      bool   `json:"purged"`
	PurgedCount int    `json:"purgedCount"`
}

type DeleteTestResponse struct {
	PurgedCount int `json:"purgedCount"`
}

// SubmitAttemptRequest carries one answer per question, in question order.
type SubmitAttemptRequest struct {
	Answers []models.Answer `json:"answers" binding:"required"`
}

type SubmitResultResponse struct {
	ResultID string `json:"resultId"`
}

type CountResultsResponse struct {
	Count int `json:"count"`
}

// ===== SERVICE INTERFACES =====

type TestService interface {
	CreateTest(ctx context.Context, test *models.Test) (*CreateTestResponse, error)
	// GetTest returns a test ready to be taken. Tests without questions are rejected.
	GetTest(ctx context.Context, id string) (*models.Test, error)
	// GetTestDefinition returns the stored test as-is, for editing.
	GetTestDefinition(ctx context.Context, id string) (*models.Test, error)
	ListTests(ctx context.Context) []*models.Test
	UpdateTest(ctx context.Context, id string, test *models.Test, purgeResults bool) (*UpdateTestResponse, error)
	DeleteTest(ctx context.Context, id string) (*DeleteTestResponse, error)
}

type ResultService interface {
	SubmitAttempt(ctx context.Context, testID string, req *SubmitAttemptRequest) (*models.Result, error)
	SubmitResult(ctx context.Context, testID string, data *models.ResultData) (*SubmitResultResponse, error)
	CountResults(ctx context.Context, testID string) int
	ListResults(ctx context.Context, testID string) *repositories.ResultList
	GetResult(ctx context.Context, testID, resultID string) (*models.Result, error)
}

type ExportService interface {
	// ExportResults renders the results of a test as an xlsx workbook.
	ExportResults(ctx context.Context, testID string) ([]byte, error)
}

type ServiceManager interface {
	Test() TestService
	Result() ResultService
	Export() ExportService
	Health(ctx context.Context) error
}
