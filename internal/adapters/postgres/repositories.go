package postgres

import (
	"gorm.io/gorm"

	"github.com/lanternworks/auth-service/internal/ports"
)

type Repositories struct {
	Users    ports.UserRepository
	Sessions ports.SessionRepository
	Recovery ports.RecoveryRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    &userRepository{db: db},
		Sessions: &sessionRepository{db: db},
		Recovery: &recoveryRepository{db: db},
	}
}
