// Package store adapts the Redis key-value service used for all persistence.
//
// The adapter exposes single-key operations only. Nothing here spans more than
// one key atomically; callers that write several keys do so as an explicit
// ordered sequence and own the partial-failure policy.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the subset of Redis the repositories rely on.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)

	SetAdd(ctx context.Context, key string, members ...string) error
	SetRemove(ctx context.Context, key string, members ...string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
	SetSize(ctx context.Context, key string) (int64, error)

	Ping(ctx context.Context) error
}
