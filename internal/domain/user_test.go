package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionExpiryBoundary(t *testing.T) {
	startedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session := Session{StartedAt: startedAt}

	assert.False(t, session.IsExpiredAt(startedAt), "fresh session must be live")
	assert.False(t, session.IsExpiredAt(startedAt.Add(SessionValidity)), "session is live at exactly the validity boundary")
	assert.True(t, session.IsExpiredAt(startedAt.Add(SessionValidity+time.Millisecond)), "session is expired past the boundary")
	assert.Equal(t, startedAt.Add(24*time.Hour), session.ExpiresAt())
}

func TestRecoveryAttemptExpiry(t *testing.T) {
	registeredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	attempt := RecoveryAttempt{
		RegisteredAt: registeredAt,
		ExpiresAt:    registeredAt.Add(RecoveryValidity),
	}

	assert.False(t, attempt.IsExpiredAt(registeredAt))
	assert.False(t, attempt.IsExpiredAt(registeredAt.Add(RecoveryValidity-time.Millisecond)))
	assert.True(t, attempt.IsExpiredAt(registeredAt.Add(RecoveryValidity)), "attempt is inactive at exactly its expiry instant")
}
