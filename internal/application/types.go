package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

type Config struct {
	SessionValidity  time.Duration
	RecoveryValidity time.Duration
}

type RegisterRequest struct {
	DisplayName  string `json:"displayName,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	KeepSignedIn bool   `json:"keepSignedIn,omitempty"`
}

// UserView is the outward shape of a user. It has no password field at all,
// stripped or otherwise.
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RegisterResponse struct {
	User         UserView  `json:"user"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type LoginRequest struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Password     string `json:"password"`
	KeepSignedIn bool   `json:"keepSignedIn,omitempty"`
}

type SessionResponse struct {
	SessionToken string    `json:"sessionToken"`
	UserID       uuid.UUID `json:"userId"`
	KeepSignedIn bool      `json:"keepSignedIn"`
	StartedAt    time.Time `json:"startedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// UserListItem is one row of the users listing: user fields joined with the
// owning sessions. Users without sessions appear once with an empty sessionId.
type UserListItem struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	SessionID    *uuid.UUID `json:"sessionId,omitempty"`
	KeepSignedIn *bool      `json:"keepSignedIn,omitempty"`
}

type RecoveryRequestResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type ResetPasswordRequest struct {
	UserID      uuid.UUID `json:"userId"`
	Code        string    `json:"code"`
	NewPassword string    `json:"password"`
}

func toUserView(user domain.User) UserView {
	return UserView{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func toSessionResponse(session domain.Session) SessionResponse {
	return SessionResponse{
		SessionToken: session.ID.String(),
		UserID:       session.UserID,
		KeepSignedIn: session.KeepSignedIn,
		StartedAt:    session.StartedAt,
		ExpiresAt:    session.ExpiresAt(),
	}
}

func toUserListItem(row ports.UserSessionRow) UserListItem {
	return UserListItem{
		ID:           row.UserID,
		Name:         row.Name,
		Email:        row.Email,
		DisplayName:  row.DisplayName,
		CreatedAt:    row.CreatedAt,
		SessionID:    row.SessionID,
		KeepSignedIn: row.KeepSignedIn,
	}
}
