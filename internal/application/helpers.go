package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lanternworks/auth-service/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// randomRecoveryCode draws each decimal digit independently and uniformly, so
// leading zeros are as likely as any other digit. The result is a fixed-width
// string, never a parsed integer.
func randomRecoveryCode() (string, error) {
	code := make([]byte, domain.RecoveryCodeLength)
	buf := make([]byte, 1)
	for i := 0; i < len(code); {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		// Rejection sampling: 250..255 would bias the low digits.
		if buf[0] >= 250 {
			continue
		}
		code[i] = '0' + buf[0]%10
		i++
	}
	return string(code), nil
}

// codesMatch compares a submitted code against the stored one in constant
// time to avoid leaking match position through timing.
func codesMatch(submitted, stored string) bool {
	if len(submitted) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}

// authenticate resolves a bearer token to a live session. Absence of a token,
// an unknown token, and an expired session all yield (nil, nil); only store
// faults produce an error. It never mutates the store.
func (s *Service) authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	sessionID, err := uuid.Parse(token)
	if err != nil {
		// Tokens are store-issued ids; anything else cannot name a session.
		return nil, nil
	}

	now := s.nowFn()
	if s.cache != nil {
		cached, cacheErr := s.cache.Get(ctx, sessionID)
		if cacheErr != nil {
			s.logger().WarnContext(ctx, "session cache read failed",
				"operation", "authenticate",
				"outcome", "degraded",
				"error", cacheErr,
			)
		} else if cached != nil {
			if cached.IsExpiredAt(now) {
				return nil, nil
			}
			return cached, nil
		}
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if session.IsExpiredAt(now) {
		return nil, nil
	}

	if s.cache != nil {
		if cacheErr := s.cache.Put(ctx, session, session.ExpiresAt().Sub(now)); cacheErr != nil {
			s.logger().WarnContext(ctx, "session cache write failed",
				"operation", "authenticate",
				"outcome", "degraded",
				"error", cacheErr,
			)
		}
	}
	return &session, nil
}

func (s *Service) invalidateCached(ctx context.Context, sessionID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, sessionID); err != nil {
		s.logger().WarnContext(ctx, "session cache invalidation failed",
			"operation", "invalidate_session",
			"outcome", "degraded",
			"session_id", sessionID,
			"error", err,
		)
	}
}

func (s *Service) logger() *slog.Logger {
	return slog.Default().With(
		"module", "application",
		"layer", "application",
	)
}
