package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ai-chat-service/config"
)

// Connect opens a Redis client and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: failed to ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
