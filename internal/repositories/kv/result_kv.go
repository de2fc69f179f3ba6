package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/SAP-F-2025/practice-quiz/internal/grading"
	"github.com/SAP-F-2025/practice-quiz/internal/models"
	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/SAP-F-2025/practice-quiz/internal/store"
	"github.com/SAP-F-2025/practice-quiz/internal/validator"
)

type ResultKV struct {
	store     store.KeyValueStore
	validator *validator.Validator
	logger    *slog.Logger
	helpers   *SharedHelpers
}

func NewResultKV(kv store.KeyValueStore, v *validator.Validator, logger *slog.Logger, helpers *SharedHelpers) repositories.ResultRepository {
	return &ResultKV{
		store:     kv,
		validator: v,
		logger:    logger,
		helpers:   helpers,
	}
}

func (r *ResultKV) Save(ctx context.Context, testID string, data *models.ResultData) (*models.Result, error) {
	testID = strings.TrimSpace(testID)
	if testID == "" {
		return nil, validator.ValidationErrors{*validator.NewValidationErrorWithRule("testId", "is required", "required", nil)}
	}
	if err := r.validator.ValidateResultData(data); err != nil {
		return nil, err
	}

	resultID, err := r.helpers.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate result id: %w", err)
	}

	result := &models.Result{
		ResultID:   resultID,
		TestID:     testID,
		Timestamp:  r.helpers.Timestamp(),
		ResultData: *data,
	}
	key := store.ResultKey(testID, resultID)

	encoded, err := r.helpers.encode(key, result)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, key, encoded); err != nil {
		return nil, fmt.Errorf("failed to write result: %w", err)
	}

	if err := r.store.SetAdd(ctx, store.ResultIndexKey(testID), resultID); err != nil {
		r.logger.ErrorContext(ctx, "Result written but not indexed",
			"test_id", testID,
			"result_id", resultID,
			"error", err)
		return nil, fmt.Errorf("failed to index result: %w", err)
	}

	return result, nil
}

func (r *ResultKV) GetByID(ctx context.Context, testID, resultID string) (*models.Result, error) {
	key := store.ResultKey(testID, resultID)

	data, err := r.store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, repositories.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}

	var result models.Result
	if err := r.helpers.decode(key, data, &result); err != nil {
		return nil, err
	}
	if err := r.validator.ValidateResultData(&result.ResultData); err != nil {
		return nil, apperrors.NewStoreError("decode", key, err)
	}
	result.ResultID = resultID
	result.TestID = testID

	return &result, nil
}

func (r *ResultKV) Count(ctx context.Context, testID string) int {
	n, err := r.store.SetSize(ctx, store.ResultIndexKey(testID))
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to count results", "test_id", testID, "error", err)
		return 0
	}
	return int(n)
}

func (r *ResultKV) List(ctx context.Context, testID string) *repositories.ResultList {
	ids, err := r.store.SetMembers(ctx, store.ResultIndexKey(testID))
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read result index", "test_id", testID, "error", err)
		ids = nil
	}

	results := make([]*models.Result, 0, len(ids))
	for _, id := range ids {
		result, err := r.GetByID(ctx, testID, id)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping unreadable result",
				"test_id", testID,
				"result_id", id,
				"error", err)
			continue
		}
		results = append(results, result)
	}

	// Newest first; unparsable timestamps count as the zero time.
	sort.SliceStable(results, func(i, j int) bool {
		ti, tj := results[i].Time(), results[j].Time()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return results[i].ResultID < results[j].ResultID
	})

	return &repositories.ResultList{
		Results:    results,
		Statistics: grading.Aggregate(results),
	}
}

func (r *ResultKV) DeleteAll(ctx context.Context, testID string) int {
	indexKey := store.ResultIndexKey(testID)

	ids, err := r.store.SetMembers(ctx, indexKey)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read result index for purge", "test_id", testID, "error", err)
		return 0
	}

	removed := 0
	for _, id := range ids {
		deleted, err := r.store.Delete(ctx, store.ResultKey(testID, id))
		if err != nil {
			r.logger.WarnContext(ctx, "Failed to delete result",
				"test_id", testID,
				"result_id", id,
				"error", err)
			continue
		}
		if deleted {
			removed++
		}
	}

	if _, err := r.store.Delete(ctx, indexKey); err != nil {
		r.logger.WarnContext(ctx, "Failed to delete result index", "test_id", testID, "error", err)
	}

	if removed < len(ids) {
		r.logger.WarnContext(ctx, "Result purge incomplete",
			"test_id", testID,
			"indexed", len(ids),
			"removed", removed)
	}

	return removed
}
