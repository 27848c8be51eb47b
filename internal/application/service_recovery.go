package application

import (
	"context"
	"fmt"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

// RequestRecovery issues a one-time code for the account behind the email and
// mails it out-of-band. Unlike login, an unknown email is reported as-is: the
// asymmetry with the merged login error is an accepted product decision.
func (s *Service) RequestRecovery(ctx context.Context, email string) (RecoveryRequestResponse, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return RecoveryRequestResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return RecoveryRequestResponse{}, err
	}

	code, err := randomRecoveryCode()
	if err != nil {
		return RecoveryRequestResponse{}, fmt.Errorf("generate recovery code: %w", err)
	}

	now := s.nowFn()
	attempt, err := s.recovery.CreateIfNone(ctx, ports.CreateRecoveryParams{
		UserID:       user.ID,
		Code:         code,
		RegisteredAt: now,
		ExpiresAt:    now.Add(s.cfg.RecoveryValidity),
	})
	if err != nil {
		return RecoveryRequestResponse{}, err
	}

	// The attempt row stays written on delivery failure so the caller can
	// retry delivery; rollback-on-failure is deliberately not performed.
	if err := s.mailer.SendRecoveryCode(ctx, user.Email, attempt.Code, attempt.ExpiresAt); err != nil {
		s.logger().ErrorContext(ctx, "recovery code delivery failed",
			"operation", "request_recovery",
			"outcome", "failure",
			"user_id", user.ID,
			"error", err,
		)
		return RecoveryRequestResponse{}, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.logger().InfoContext(ctx, "recovery code issued",
		"operation", "request_recovery",
		"outcome", "success",
		"user_id", user.ID,
		"expires_at", attempt.ExpiresAt,
	)
	return RecoveryRequestResponse{UserID: user.ID}, nil
}

// ResetPassword redeems an outstanding recovery code. A mismatched code does
// not consume the attempt; a matched one is deleted before it can be replayed,
// and the caller is signed in exactly as on login.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (SessionResponse, error) {
	if err := domain.ValidateRecoveryCode(req.Code); err != nil {
		return SessionResponse{}, err
	}
	if err := domain.ValidatePassword(req.NewPassword); err != nil {
		return SessionResponse{}, err
	}

	attempt, err := s.recovery.GetActiveByUser(ctx, req.UserID, s.nowFn())
	if err != nil {
		if isNotFound(err) {
			return SessionResponse{}, domain.ErrNoActiveAttempt
		}
		return SessionResponse{}, err
	}

	if !codesMatch(req.Code, attempt.Code) {
		return SessionResponse{}, domain.ErrCodeMismatch
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, req.UserID, passwordHash); err != nil {
		return SessionResponse{}, err
	}

	// One-shot consumption: after this point the code cannot be replayed.
	if _, err := s.recovery.DeleteByID(ctx, attempt.ID); err != nil {
		return SessionResponse{}, err
	}

	session, err := s.sessions.Create(ctx, req.UserID, false, s.nowFn())
	if err != nil {
		return SessionResponse{}, fmt.Errorf("create session: %w", err)
	}

	s.logger().InfoContext(ctx, "password reset completed",
		"operation", "reset_password",
		"outcome", "success",
		"user_id", req.UserID,
	)
	return toSessionResponse(session), nil
}
