package store

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client redis.UniversalClient
	logger *slog.Logger
}

// NewRedisStore wraps a shared go-redis client. The client is safe for
// concurrent use and is never closed by the store.
func NewRedisStore(client redis.UniversalClient, logger *slog.Logger) KeyValueStore {
	return &redisStore{
		client: client,
		logger: logger,
	}
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, apperrors.NewStoreError("get", key, err)
	}
	return value, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return apperrors.NewStoreError("set", key, err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, apperrors.NewStoreError("delete", key, err)
	}
	return n > 0, nil
}

func (r *redisStore) SetAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	if err := r.client.SAdd(ctx, key, toArgs(members)...).Err(); err != nil {
		return apperrors.NewStoreError("set-add", key, err)
	}
	return nil
}

func (r *redisStore) SetRemove(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	if err := r.client.SRem(ctx, key, toArgs(members)...).Err(); err != nil {
		return apperrors.NewStoreError("set-remove", key, err)
	}
	return nil
}

func (r *redisStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, apperrors.NewStoreError("set-members", key, err)
	}
	return members, nil
}

func (r *redisStore) SetSize(ctx context.Context, key string) (int64, error) {
	n, err := r.client.SCard(ctx, key).Result()
	if err != nil {
		return 0, apperrors.NewStoreError("set-size", key, err)
	}
	return n, nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.logger.WarnContext(ctx, "Redis ping failed", "error", err)
		return apperrors.NewStoreError("ping", "", err)
	}
	return nil
}

func toArgs(members []string) []interface{} {
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	return args
}
