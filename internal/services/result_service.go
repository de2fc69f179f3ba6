package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/grading"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
)

type resultService struct {
	repo     repositories.Repository
	events   QuizEventService
	logger   *slog.Logger
	opLogger *ServiceLogger
}

func NewResultService(repo repositories.Repository, events QuizEventService, logger *slog.Logger) ResultService {
	return &resultService{
		repo:     repo,
		events:   events,
		logger:   logger,
		opLogger: NewServiceLogger(logger, LogConfig{Service: "practice-quiz", Component: "result"}),
	}
}

// ===== SUBMISSION =====

// SubmitAttempt grades the answers against the stored test and saves the outcome.
func (s *resultService) SubmitAttempt(ctx context.Context, testID string, req *SubmitAttemptRequest) (result *models.Result, err error) {
	op := s.opLogger.WithOperation(ctx, "submit_attempt")
	defer func() { op.LogResult(testID, "result", err) }()

	test, err := s.repo.Test().GetByID(ctx, testID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to load test: %w", err)
	}
	if !test.IsGradable() {
		return nil, newUnusableTestError(testID)
	}

	var answers []models.Answer
	if req != nil {
		answers = req.Answers
	}

	score := grading.Score(test.Questions, answers)
	data := score.ToResultData()

	result, err = s.save(ctx, testID, &data)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "Attempt graded",
		"test_id", testID,
		"result_id", result.ResultID,
		"correct", result.Correct,
		"total", result.Total)

	s.events.NotifyResultSubmitted(ctx, result, true)
	return result, nil
}

// SubmitResult stores a result graded by the client. The test is not looked up.
func (s *resultService) SubmitResult(ctx context.Context, testID string, data *models.ResultData) (resp *SubmitResultResponse, err error) {
	op := s.opLogger.WithOperation(ctx, "submit_result")
	defer func() { op.LogResult(testID, "result", err) }()

	result, err := s.save(ctx, testID, data)
	if err != nil {
		return nil, err
	}

	s.events.NotifyResultSubmitted(ctx, result, false)
	return &SubmitResultResponse{ResultID: result.ResultID}, nil
}

func (s *resultService) save(ctx context.Context, testID string, data *models.ResultData) (*models.Result, error) {
	result, err := s.repo.Result().Save(ctx, testID, data)
	if err != nil {
		if IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	return result, nil
}

// ===== QUERIES =====

func (s *resultService) CountResults(ctx context.Context, testID string) int {
	return s.repo.Result().Count(ctx, testID)
}

func (s *resultService) ListResults(ctx context.Context, testID string) *repositories.ResultList {
	return s.repo.Result().List(ctx, testID)
}

func (s *resultService) GetResult(ctx context.Context, testID, resultID string) (*models.Result, error) {
	result, err := s.repo.Result().GetByID(ctx, testID, resultID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return result, nil
}
