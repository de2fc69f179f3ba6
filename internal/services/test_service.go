package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
)

type testService struct {
	repo      repositories.Repository
	events    QuizEventService
	logger    *slog.Logger
	opLogger  *ServiceLogger
	validator *validator.Validator
}

func NewTestService(repo repositories.Repository, events QuizEventService, logger *slog.Logger, validator *validator.Validator) TestService {
	return &testService{
		repo:      repo,
		events:    events,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "practice-quiz", Component: "test"}),
		validator: validator,
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *testService) CreateTest(ctx context.Context, test *models.Test) (resp *CreateTestResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "create_test")
	defer func() { op.LogResult(idOf(test), "test", err) }()

	id, err := s.repo.Test().Create(ctx, test)
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	s.events.NotifyTestCreated(ctx, test)
	return &CreateTestResponse{ID: id}, nil
}

func (s *testService) GetTest(ctx context.Context, id string) (*models.Test, error) {
	test, err := s.GetTestDefinition(ctx, id)
	if err != nil {
		return nil, err
	}
	if !test.IsGradable() {
		return nil, newUnusableTestError(id)
	}
	return test, nil
}

func (s *testService) GetTestDefinition(ctx context.Context, id string) (*models.Test, error) {
	test, err := s.repo.Test().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}

func (s *testService) ListTests(ctx context.Context) []*models.Test {
	return s.repo.Test().GetAll(ctx)
}

// ===== CASCADE OPERATIONS =====

// UpdateTest overwrites a test definition. Existing results are kept unless
// purgeResults is set, in which case they are removed before the write.
func (s *testService) UpdateTest(ctx context.Context, id string, test *models.Test, purgeResults bool) (resp *UpdateTestResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "update_test")
	defer func() { op.LogResult(id, "test", err) }()

	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateTest(test); err != nil {
		return nil, err
	}

	count := s.repo.Result().Count(ctx, id)
	resp = &UpdateTestResponse{ID: id, HadResults: count > 0}

	if purgeResults && count > 0 {
		resp.Purged = true
		resp.PurgedCount = s.repo.Result().DeleteAll(ctx, id)
		s.logger.InfoContext(ctx, "Purged results before test update",
			"test_id", id,
			"indexed", count,
			"purged", resp.PurgedCount)
	}

	if err := s.repo.Test().Update(ctx, id, test); err != nil {
		if resp.Purged {
			s.logger.ErrorContext(ctx, "Test update failed after results were purged",
				"test_id", id,
				"purged", resp.PurgedCount,
				"error", err)
		}
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update test: %w", err)
	}

	s.events.NotifyTestUpdated(ctx, test, resp)
	return resp, nil
}

// DeleteTest removes every result recorded against id and then the test
// itself. Results go first even when the test is missing, so results saved
// against an unknown id can still be cleared. Result removal is best-effort
// and never blocks deleting the test.
func (s *testService) DeleteTest(ctx context.Context, id string) (resp *DeleteTestResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "delete_test")
	defer func() { op.LogResult(id, "test", err) }()

	purged := s.repo.Result().DeleteAll(ctx, id)

	if err := s.repo.Test().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to delete test: %w", err)
	}

	s.events.NotifyTestDeleted(ctx, id, purged)
	return &DeleteTestResponse{PurgedCount: purged}, nil
}

func (s *testService) ensureExists(ctx context.Context, id string) error {
	exists, err := s.repo.Test().Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check test: %w", err)
	}
	if !exists {
		return ErrTestNotFound
	}
	return nil
}

func idOf(test *models.Test) string {
	if test == nil {
		return ""
	}
	return test.ID
}
