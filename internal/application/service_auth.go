package application

import (
	"context"
	"fmt"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

// Register creates an identity and immediately starts a session for it. Name
// and email collisions are left to the store's uniqueness constraints and
// surface as domain.ErrConflict; pre-checking here would race anyway.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if err := domain.ValidateName(req.Name); err != nil {
		return RegisterResponse{}, err
	}
	if err := domain.ValidateEmail(req.Email); err != nil {
		return RegisterResponse{}, err
	}
	if err := domain.ValidateDisplayName(req.DisplayName); err != nil {
		return RegisterResponse{}, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return RegisterResponse{}, err
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFn()
	user, err := s.users.Create(ctx, ports.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	})
	if err != nil {
		return RegisterResponse{}, err
	}

	session, err := s.sessions.Create(ctx, user.ID, req.KeepSignedIn, now)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("create session: %w", err)
	}

	s.logger().InfoContext(ctx, "user registered",
		"operation", "register",
		"outcome", "success",
		"user_id", user.ID,
	)

	return RegisterResponse{
		User:         toUserView(user),
		SessionToken: session.ID.String(),
		ExpiresAt:    session.ExpiresAt(),
	}, nil
}

// Login authenticates by name or email plus password and issues a session.
// A caller that already holds a live session is rejected; user-not-found and
// wrong-password deliberately collapse into one error kind.
func (s *Service) Login(ctx context.Context, token string, req LoginRequest) (SessionResponse, error) {
	existing, err := s.authenticate(ctx, token)
	if err != nil {
		return SessionResponse{}, err
	}
	if existing != nil {
		return SessionResponse{}, domain.ErrAlreadyAuthenticated
	}

	if req.Name == "" && req.Email == "" {
		return SessionResponse{}, fmt.Errorf("%w: either name or email must be present", domain.ErrBadRequest)
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return SessionResponse{}, err
	}

	var user domain.User
	if req.Email != "" {
		user, err = s.users.GetByEmail(ctx, req.Email)
	} else {
		user, err = s.users.GetByName(ctx, req.Name)
	}
	if err != nil {
		if isNotFound(err) {
			return SessionResponse{}, domain.ErrInvalidCredentials
		}
		return SessionResponse{}, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return SessionResponse{}, domain.ErrInvalidCredentials
	}

	session, err := s.sessions.Create(ctx, user.ID, req.KeepSignedIn, s.nowFn())
	if err != nil {
		return SessionResponse{}, fmt.Errorf("create session: %w", err)
	}

	s.logger().InfoContext(ctx, "user logged in",
		"operation", "login",
		"outcome", "success",
		"user_id", user.ID,
	)

	return toSessionResponse(session), nil
}

// Logout deletes the caller's session. A delete that affects zero rows after
// the liveness check means the session vanished underneath us; that is a
// consistency fault, not user error.
func (s *Service) Logout(ctx context.Context, token string) error {
	session, err := s.authenticate(ctx, token)
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrUnauthenticated
	}

	count, err := s.sessions.DeleteByID(ctx, session.ID)
	if err != nil {
		return err
	}
	s.invalidateCached(ctx, session.ID)
	if count == 0 {
		return domain.ErrDeleteFailed
	}

	s.logger().InfoContext(ctx, "user logged out",
		"operation", "logout",
		"outcome", "success",
		"user_id", session.UserID,
	)
	return nil
}

// Authenticate exposes session resolution to transport adapters. It returns
// (nil, nil) when the token names no live session.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	return s.authenticate(ctx, token)
}
