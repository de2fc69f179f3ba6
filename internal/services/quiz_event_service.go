package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/events"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
)

// QuizEventService announces successful mutations through the event publisher.
// Publishing is best-effort: failures are logged and never returned.
type QuizEventService interface {
	// Test notifications
	NotifyTestCreated(ctx context.Context, test *models.Test)
	NotifyTestUpdated(ctx context.Context, test *models.Test, outcome *UpdateTestResponse)
	NotifyTestDeleted(ctx context.Context, testID string, purgedCount int)

	// Result notifications
	NotifyResultSubmitted(ctx context.Context, result *models.Result, graded bool)
}

type quizEventService struct {
	eventPublisher events.EventPublisher
	logger         *slog.Logger
}

func NewQuizEventService(eventPublisher events.EventPublisher, logger *slog.Logger) QuizEventService {
	return &quizEventService{
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// ===== TEST NOTIFICATIONS =====

func (s *quizEventService) NotifyTestCreated(ctx context.Context, test *models.Test) {
	s.publish(ctx, events.NewTestCreatedEvent(test.ID, test.Title, len(test.Questions)))
}

func (s *quizEventService) NotifyTestUpdated(ctx context.Context, test *models.Test, outcome *UpdateTestResponse) {
	s.publish(ctx, events.NewTestUpdatedEvent(
		outcome.ID,
		test.Title,
		len(test.Questions),
		outcome.HadResults,
		outcome.Purged,
		outcome.PurgedCount,
	))
}

func (s *quizEventService) NotifyTestDeleted(ctx context.Context, testID string, purgedCount int) {
	s.publish(ctx, events.NewTestDeletedEvent(testID, purgedCount))
}

// ===== RESULT NOTIFICATIONS =====

func (s *quizEventService) NotifyResultSubmitted(ctx context.Context, result *models.Result, graded bool) {
	s.publish(ctx, events.NewResultSubmittedEvent(
		result.TestID,
		result.ResultID,
		result.Correct,
		result.Total,
		result.Percentage,
		graded,
	))
}

func (s *quizEventService) publish(ctx context.Context, event *events.QuizEvent) {
	if err := s.eventPublisher.PublishEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish quiz event",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
	}
}
