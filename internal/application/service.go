package application

import (
	"time"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

// Service composes the credential hasher, session store, and recovery code
// manager into the user-facing operations. It is stateless between requests;
// all durable state lives behind the repository ports.
type Service struct {
	cfg      Config
	users    ports.UserRepository
	sessions ports.SessionRepository
	recovery ports.RecoveryRepository
	hasher   ports.PasswordHasher
	mailer   ports.RecoveryMailer
	cache    ports.SessionCache
	nowFn    func() time.Time
}

type Dependencies struct {
	Config   Config
	Users    ports.UserRepository
	Sessions ports.SessionRepository
	Recovery ports.RecoveryRepository
	Hasher   ports.PasswordHasher
	Mailer   ports.RecoveryMailer
	// Cache may be nil; the service then reads sessions from the store only.
	Cache ports.SessionCache
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.SessionValidity <= 0 {
		cfg.SessionValidity = domain.SessionValidity
	}
	if cfg.RecoveryValidity <= 0 {
		cfg.RecoveryValidity = domain.RecoveryValidity
	}
	return &Service{
		cfg:      cfg,
		users:    deps.Users,
		sessions: deps.Sessions,
		recovery: deps.Recovery,
		hasher:   deps.Hasher,
		mailer:   deps.Mailer,
		cache:    deps.Cache,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}
