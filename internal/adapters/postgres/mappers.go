package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lanternworks/auth-service/internal/domain"
)

func toDomainUser(row userModel) domain.User {
	displayName := ""
	if row.DisplayName != nil {
		displayName = *row.DisplayName
	}
	return domain.User{
		ID:           row.UserID,
		Name:         row.Name,
		Email:        row.Email,
		DisplayName:  displayName,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

func toDomainSession(row sessionModel) domain.Session {
	return domain.Session{
		ID:           row.SessionID,
		UserID:       row.UserID,
		KeepSignedIn: row.KeepSignedIn,
		StartedAt:    row.StartedAt,
	}
}

func toDomainRecoveryAttempt(row recoveryAttemptModel) domain.RecoveryAttempt {
	return domain.RecoveryAttempt{
		ID:           row.AttemptID,
		UserID:       row.UserID,
		Code:         row.OTP,
		RegisteredAt: row.RegisteredAt,
		ExpiresAt:    row.ExpiresAt,
	}
}

func nullableString(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
