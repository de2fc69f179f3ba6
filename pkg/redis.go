package pkg

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/practice-quiz/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the store named by cfg.RedisURL and checks it
// answers a ping within cfg.RedisTimeout.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	if cfg.RedisTimeout > 0 {
		opt.DialTimeout = cfg.RedisTimeout
		opt.ReadTimeout = cfg.RedisTimeout
		opt.WriteTimeout = cfg.RedisTimeout
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, opt.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}
