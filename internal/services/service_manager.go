package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/events"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
)

type serviceManager struct {
	repo          repositories.Repository
	testService   TestService
	resultService ResultService
	exportService ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	eventPublisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	quizEvents := NewQuizEventService(eventPublisher, logger.With("component", "events"))

	return &serviceManager{
		repo:          repo,
		testService:   NewTestService(repo, quizEvents, logger, validator),
		resultService: NewResultService(repo, quizEvents, logger),
		exportService: NewExportService(repo, logger),
	}
}

func (m *serviceManager) Test() TestService     { return m.testService }
func (m *serviceManager) Result() ResultService { return m.resultService }
func (m *serviceManager) Export() ExportService { return m.exportService }

// Health reports whether the backing store is reachable.
func (m *serviceManager) Health(ctx context.Context) error {
	return m.repo.Ping(ctx)
}
