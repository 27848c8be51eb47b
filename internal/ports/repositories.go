package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lanternworks/auth-service/internal/domain"
)

// CreateUserParams captures the fields persisted on registration. PasswordHash
// is already hashed when it crosses this boundary.
type CreateUserParams struct {
	Name         string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for identities.
// Create relies on the store's uniqueness constraints as the sole enforcement
// point for name/email collisions and maps violations to domain.ErrConflict;
// pre-checking would just reintroduce a check-then-insert race.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByName(ctx context.Context, name string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	ListWithSessions(ctx context.Context) ([]UserSessionRow, error)
}

// UserSessionRow is one row of the users-joined-with-sessions listing.
// Users without a session appear once with a nil SessionID.
type UserSessionRow struct {
	UserID       uuid.UUID
	Name         string
	Email        string
	DisplayName  string
	CreatedAt    time.Time
	SessionID    *uuid.UUID
	KeepSignedIn *bool
}

// SessionRepository manages persistent session lifecycle. Each call is a
// single transactional statement at the store.
type SessionRepository interface {
	Create(ctx context.Context, userID uuid.UUID, keepSignedIn bool, startedAt time.Time) (domain.Session, error)
	GetByID(ctx context.Context, sessionID uuid.UUID) (domain.Session, error)
	// DeleteByID reports the number of rows removed so callers can detect a
	// session vanishing between liveness check and delete.
	DeleteByID(ctx context.Context, sessionID uuid.UUID) (int64, error)
	// DeleteStartedBefore garbage-collects sessions whose validity window has
	// passed. Readers already treat them as absent; this only reclaims rows.
	DeleteStartedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CreateRecoveryParams captures a fully generated recovery attempt.
type CreateRecoveryParams struct {
	UserID       uuid.UUID
	Code         string
	RegisteredAt time.Time
	ExpiresAt    time.Time
}

// RecoveryRepository owns the one-time-code lifecycle. CreateIfNone must
// re-check the at-most-one-unexpired-attempt invariant inside the same
// transaction that inserts, returning domain.ErrTooManyAttempts when an
// unexpired attempt already exists.
type RecoveryRepository interface {
	CreateIfNone(ctx context.Context, params CreateRecoveryParams) (domain.RecoveryAttempt, error)
	// GetActiveByUser returns the unexpired attempt for the user, or
	// domain.ErrNotFound when none exists or the last one expired.
	GetActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (domain.RecoveryAttempt, error)
	DeleteByID(ctx context.Context, attemptID uuid.UUID) (int64, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
