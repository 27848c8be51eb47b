package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

type recoveryRepository struct {
	db *gorm.DB
}

// CreateIfNone serializes concurrent requests for the same user by locking the
// owning users row, then re-checks the unexpired-attempt count before
// inserting. "Unexpired" cannot be expressed as a partial unique index because
// it depends on the clock, so the lock-and-count inside one transaction is the
// enforcement point.
func (r *recoveryRepository) CreateIfNone(ctx context.Context, params ports.CreateRecoveryParams) (domain.RecoveryAttempt, error) {
	var rec recoveryAttemptModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner userModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", params.UserID).
			Take(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var active int64
		if err := tx.Model(&recoveryAttemptModel{}).
			Where("user_id = ? AND expires_at > ?", params.UserID, params.RegisteredAt).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrTooManyAttempts
		}

		rec = recoveryAttemptModel{
			UserID:       params.UserID,
			OTP:          params.Code,
			RegisteredAt: params.RegisteredAt,
			ExpiresAt:    params.ExpiresAt,
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return domain.RecoveryAttempt{}, err
	}
	return toDomainRecoveryAttempt(rec), nil
}

func (r *recoveryRepository) GetActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (domain.RecoveryAttempt, error) {
	var rec recoveryAttemptModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Order("registered_at DESC").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecoveryAttempt{}, domain.ErrNotFound
		}
		return domain.RecoveryAttempt{}, err
	}
	return toDomainRecoveryAttempt(rec), nil
}

func (r *recoveryRepository) DeleteByID(ctx context.Context, attemptID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("attempt_id = ?", attemptID).Delete(&recoveryAttemptModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *recoveryRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at < ?", cutoff).Delete(&recoveryAttemptModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
