package application

import (
	"context"

	"github.com/lanternworks/auth-service/internal/domain"
)

// ListUsers returns all users joined with their sessions. No pagination; the
// endpoint is a known limitation, not part of the core contract.
func (s *Service) ListUsers(ctx context.Context, token string) ([]UserListItem, error) {
	session, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}

	rows, err := s.users.ListWithSessions(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]UserListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toUserListItem(row))
	}
	return items, nil
}
