package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lanternworks/auth-service/internal/domain"
)

const sessionKeyPrefix = "auth:session:"

// RedisSessionCache caches session rows keyed by session id. The TTL is set
// by the caller and must not exceed the session's remaining validity.
type RedisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache creates the session cache adapter.
func NewRedisSessionCache(client *redis.Client) *RedisSessionCache {
	return &RedisSessionCache{client: client}
}

type cachedSession struct {
	SessionID    uuid.UUID `json:"sessionId"`
	UserID       uuid.UUID `json:"userId"`
	KeepSignedIn bool      `json:"keepSignedIn"`
	StartedAt    time.Time `json:"startedAt"`
}

func (c *RedisSessionCache) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	raw, err := c.client.Get(ctx, sessionKeyPrefix+sessionID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var rec cachedSession
	if err := json.Unmarshal(raw, &rec); err != nil {
		// A corrupt entry behaves like a miss; the store is authoritative.
		return nil, nil
	}
	return &domain.Session{
		ID:           rec.SessionID,
		UserID:       rec.UserID,
		KeepSignedIn: rec.KeepSignedIn,
		StartedAt:    rec.StartedAt,
	}, nil
}

func (c *RedisSessionCache) Put(ctx context.Context, session domain.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(cachedSession{
		SessionID:    session.ID,
		UserID:       session.UserID,
		KeepSignedIn: session.KeepSignedIn,
		StartedAt:    session.StartedAt,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKeyPrefix+session.ID.String(), raw, ttl).Err()
}

func (c *RedisSessionCache) Invalidate(ctx context.Context, sessionID uuid.UUID) error {
	return c.client.Del(ctx, sessionKeyPrefix+sessionID.String()).Err()
}
