package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SAP-F-2025/practice-quiz/internal/events"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories/kv"
	"github.com/SAP-F-2025/practice-quiz/internal/store"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockTestRepository is a mock implementation of repositories.TestRepository
type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) Create(ctx context.Context, test *models.Test) (string, error) {
	args := m.Called(ctx, test)
	return args.String(0), args.Error(1)
}

func (m *MockTestRepository) GetByID(ctx context.Context, id string) (*models.Test, error) {
	args := m.Called(ctx, id)
	test, _ := args.Get(0).(*models.Test)
	return test, args.Error(1)
}

func (m *MockTestRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTestRepository) Update(ctx context.Context, id string, test *models.Test) error {
	args := m.Called(ctx, id, test)
	return args.Error(0)
}

func (m *MockTestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestRepository) GetAll(ctx context.Context) []*models.Test {
	args := m.Called(ctx)
	tests, _ := args.Get(0).([]*models.Test)
	return tests
}

// MockResultRepository is a mock implementation of repositories.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Save(ctx context.Context, testID string, data *models.ResultData) (*models.Result, error) {
	args := m.Called(ctx, testID, data)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

func (m *MockResultRepository) GetByID(ctx context.Context, testID, resultID string) (*models.Result, error) {
	args := m.Called(ctx, testID, resultID)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

func (m *MockResultRepository) Count(ctx context.Context, testID string) int {
	args := m.Called(ctx, testID)
	return args.Int(0)
}

func (m *MockResultRepository) List(ctx context.Context, testID string) *repositories.ResultList {
	args := m.Called(ctx, testID)
	list, _ := args.Get(0).(*repositories.ResultList)
	return list
}

func (m *MockResultRepository) DeleteAll(ctx context.Context, testID string) int {
	args := m.Called(ctx, testID)
	return args.Int(0)
}

// MockRepository bundles the repository mocks behind repositories.Repository
type MockRepository struct {
	tests   *MockTestRepository
	results *MockResultRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		tests:   new(MockTestRepository),
		results: new(MockResultRepository),
	}
}

func (m *MockRepository) Test() repositories.TestRepository     { return m.tests }
func (m *MockRepository) Result() repositories.ResultRepository { return m.results }
func (m *MockRepository) Ping(ctx context.Context) error        { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMockedServices wires the services over repository mocks and an in-memory publisher.
func newMockedServices() (*MockRepository, *events.MockEventPublisher, ServiceManager) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(discardLogger())
	return repo, publisher, NewServiceManager(repo, publisher, discardLogger(), validator.New())
}

type integration struct {
	mr        *miniredis.Miniredis
	publisher *events.MockEventPublisher
	services  ServiceManager
}

// newIntegration wires the services over the Redis-backed repositories and miniredis.
func newIntegration(t *testing.T) *integration {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	v := validator.New()
	repo := kv.NewRepository(store.NewRedisStore(client, discardLogger()), v, discardLogger(), nil)
	publisher := events.NewMockEventPublisher(discardLogger())

	return &integration{
		mr:        mr,
		publisher: publisher,
		services:  NewServiceManager(repo, publisher, discardLogger(), v),
	}
}

func eventTypes(publisher *events.MockEventPublisher) []events.EventType {
	published := publisher.GetPublishedEvents()
	types := make([]events.EventType, 0, len(published))
	for _, e := range published {
		types = append(types, e.Type)
	}
	return types
}
