package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/store"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
)

type TestKV struct {
	store     store.KeyValueStore
	validator *validator.Validator
	logger    *slog.Logger
	helpers   *SharedHelpers
}

func NewTestKV(kv store.KeyValueStore, v *validator.Validator, logger *slog.Logger, helpers *SharedHelpers) repositories.TestRepository {
	return &TestKV{
		store:     kv,
		validator: v,
		logger:    logger,
		helpers:   helpers,
	}
}

func (r *TestKV) Create(ctx context.Context, test *models.Test) (string, error) {
	if err := r.validator.ValidateTest(test); err != nil {
		return "", err
	}

	id, err := r.helpers.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate test id: %w", err)
	}

	record := *test
	record.ID = id
	key := store.TestKey(id)

	data, err := r.helpers.encode(key, &record)
	if err != nil {
		return "", err
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return "", fmt.Errorf("failed to write test: %w", err)
	}

	if err := r.store.SetAdd(ctx, store.TestIndexKey, id); err != nil {
		// The record now exists without an index entry. It stays that way.
		r.logger.ErrorContext(ctx, "Test written but not indexed", "test_id", id, "error", err)
		return "", fmt.Errorf("failed to index test: %w", err)
	}

	test.ID = id
	return id, nil
}

func (r *TestKV) GetByID(ctx context.Context, id string) (*models.Test, error) {
	key := store.TestKey(id)

	data, err := r.store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, repositories.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	var test models.Test
	if err := r.helpers.decode(key, data, &test); err != nil {
		return nil, err
	}
	if err := r.validator.ValidateTest(&test); err != nil {
		return nil, apperrors.NewStoreError("decode", key, err)
	}
	test.ID = id

	return &test, nil
}

func (r *TestKV) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.store.Get(ctx, store.TestKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *TestKV) Update(ctx context.Context, id string, test *models.Test) error {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repositories.ErrTestNotFound
	}

	if err := r.validator.ValidateTest(test); err != nil {
		return err
	}

	record := *test
	record.ID = id
	key := store.TestKey(id)

	data, err := r.helpers.encode(key, &record)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write test: %w", err)
	}

	test.ID = id
	return nil
}

func (r *TestKV) Delete(ctx context.Context, id string) error {
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return repositories.ErrTestNotFound
	}

	if _, err := r.store.Delete(ctx, store.TestKey(id)); err != nil {
		return fmt.Errorf("failed to delete test: %w", err)
	}

	if err := r.store.SetRemove(ctx, store.TestIndexKey, id); err != nil {
		// The index now points at a missing record; GetAll skips it.
		r.logger.ErrorContext(ctx, "Test deleted but still indexed", "test_id", id, "error", err)
		return fmt.Errorf("failed to unindex test: %w", err)
	}

	return nil
}

func (r *TestKV) GetAll(ctx context.Context) []*models.Test {
	ids, err := r.store.SetMembers(ctx, store.TestIndexKey)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read test index", "error", err)
		return []*models.Test{}
	}

	tests := make([]*models.Test, 0, len(ids))
	for _, id := range ids {
		test, err := r.GetByID(ctx, id)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable test", "test_id", id, "error", err)
			continue
		}
		tests = append(tests, test)
	}

	sort.SliceStable(tests, func(i, j int) bool {
		ti, tj := strings.ToLower(tests[i].Title), strings.ToLower(tests[j].Title)
		if ti != tj {
			return ti < tj
		}
		return tests[i].ID < tests[j].ID
	})

	return tests
}
