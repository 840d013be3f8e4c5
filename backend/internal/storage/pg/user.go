package pg

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
)

// UpsertUser mirrors a user from the authentication service so threads and
// comments can reference it. An existing row gets the new username.
func (s *Storage) UpsertUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (id, username)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
    `, user.Id, user.Username)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
