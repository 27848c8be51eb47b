package domain

import (
	"time"

	"github.com/google/uuid"
)

// Validity windows are part of the persistence contract: consumers treat rows
// outside their window as absent even when the record still exists.
const (
	SessionValidity  = 24 * time.Hour
	RecoveryValidity = 5 * time.Minute

	RecoveryCodeLength = 6
)

// User is the identity record. PasswordHash always holds an argon2id hash;
// plaintext never reaches persistence.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is proof of authentication. Its ID doubles as the opaque bearer
// token handed to the transport layer. A user may hold any number of
// concurrent sessions.
type Session struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	KeepSignedIn bool
	StartedAt    time.Time
}

// ExpiresAt returns the instant the session stops being valid.
func (s Session) ExpiresAt() time.Time {
	return s.StartedAt.Add(SessionValidity)
}

// IsExpiredAt reports whether the session must be treated as absent at t.
// Expiry is evaluated at read time; rows are not required to be deleted.
func (s Session) IsExpiredAt(t time.Time) bool {
	return t.Sub(s.StartedAt) > SessionValidity
}

// RecoveryAttempt is an outstanding one-time password challenge. At most one
// unexpired attempt may exist per user; consumed or expired attempts are
// deleted, never reused.
type RecoveryAttempt struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Code         string
	RegisteredAt time.Time
	ExpiresAt    time.Time
}

// IsExpiredAt reports whether the attempt can no longer be redeemed at t.
func (a RecoveryAttempt) IsExpiredAt(t time.Time) bool {
	return !a.ExpiresAt.After(t)
}
