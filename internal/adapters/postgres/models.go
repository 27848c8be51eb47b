package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName  *string   `gorm:"column:display_name"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	SessionID    uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id"`
	KeepSignedIn bool      `gorm:"column:keep_signed_in"`
	StartedAt    time.Time `gorm:"column:started_at"`
}

func (sessionModel) TableName() string { return "sessions" }

type recoveryAttemptModel struct {
	AttemptID    uuid.UUID `gorm:"column:attempt_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `gorm:"column:user_id"`
	OTP          string    `gorm:"column:otp"`
	RegisteredAt time.Time `gorm:"column:registered_at"`
	ExpiresAt    time.Time `gorm:"column:expires_at"`
}

func (recoveryAttemptModel) TableName() string { return "recovery_attempts" }
