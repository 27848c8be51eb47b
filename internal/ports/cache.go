package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lanternworks/auth-service/internal/domain"
)

// SessionCache is an optional read-through cache in front of the session
// store. The store stays the source of truth: a miss or a cache outage is
// never an authentication failure, and entries must never outlive the
// session's remaining validity.
type SessionCache interface {
	// Get returns (nil, nil) on miss.
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Put(ctx context.Context, session domain.Session, ttl time.Duration) error
	Invalidate(ctx context.Context, sessionID uuid.UUID) error
}
