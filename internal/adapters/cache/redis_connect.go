package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Connect initializes the Redis client behind the session cache. Only URL
// form (redis://host:port/db) is accepted: the cache is optional, so a
// malformed address must fail at bootstrap instead of degrading every read.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	// Session lookups are small point reads; a modest pool is plenty.
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	return redis.NewClient(opt), nil
}
