package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, params ports.CreateUserParams) (domain.User, error) {
	rec := userModel{
		DisplayName:  nullableString(params.DisplayName),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    params.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("user_id = ?", userID).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type userSessionRow struct {
	UserID       uuid.UUID  `gorm:"column:user_id"`
	Name         string     `gorm:"column:name"`
	Email        string     `gorm:"column:email"`
	DisplayName  *string    `gorm:"column:display_name"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SessionID    *uuid.UUID `gorm:"column:session_id"`
	KeepSignedIn *bool      `gorm:"column:keep_signed_in"`
}

func (r *userRepository) ListWithSessions(ctx context.Context) ([]ports.UserSessionRow, error) {
	var rows []userSessionRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.user_id, users.name, users.email, users.display_name, users.created_at, sessions.session_id, sessions.keep_signed_in").
		Joins("LEFT JOIN sessions ON sessions.user_id = users.user_id").
		Order("users.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]ports.UserSessionRow, 0, len(rows))
	for _, row := range rows {
		displayName := ""
		if row.DisplayName != nil {
			displayName = *row.DisplayName
		}
		result = append(result, ports.UserSessionRow{
			UserID:       row.UserID,
			Name:         row.Name,
			Email:        row.Email,
			DisplayName:  displayName,
			CreatedAt:    row.CreatedAt,
			SessionID:    row.SessionID,
			KeepSignedIn: row.KeepSignedIn,
		})
	}
	return result, nil
}
