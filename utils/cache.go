// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"venuebook/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects the Redis client used for venue caching. The caller
// closes it on shutdown.
func NewCacheClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}
