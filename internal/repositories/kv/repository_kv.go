package kv

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/store"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
)

type repositoryKV struct {
	store  store.KeyValueStore
	tests  repositories.TestRepository
	result repositories.ResultRepository
}

// NewRepository wires the kv-backed repositories around one shared store.
func NewRepository(kv store.KeyValueStore, v *validator.Validator, logger *slog.Logger, helpers *SharedHelpers) repositories.Repository {
	if helpers == nil {
		helpers = NewSharedHelpers(nil, nil)
	}
	return &repositoryKV{
		store:  kv,
		tests:  NewTestKV(kv, v, logger.With("repository", "test"), helpers),
		result: NewResultKV(kv, v, logger.With("repository", "result"), helpers),
	}
}

func (r *repositoryKV) Test() repositories.TestRepository {
	return r.tests
}

func (r *repositoryKV) Result() repositories.ResultRepository {
	return r.result
}

func (r *repositoryKV) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
