package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	id := "thread-" + s.newId()

	var row struct {
		Id     string `db:"id"`
		Title  string `db:"title"`
		UserId string `db:"user_id"`
	}
	err := s.db.QueryRowxContext(ctx, `
        INSERT INTO threads (id, title, body, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, user_id
    `, id, thread.Title(), thread.Body(), thread.Owner(), s.timestamp()).StructScan(&row)
	if err != nil {
		if isForeignKeyViolation(err, "fk_threads_user_id") {
			return domain.AddedThread{}, internal_errors.WithField(internal_errors.UserNotFound, thread.Owner())
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.ParseAddedThread(domain.Payload{"id": row.Id, "title": row.Title, "owner": row.UserId})
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	var thread domain.ThreadDetail
	err := s.db.GetContext(ctx, &thread, `
        SELECT
            threads.id, threads.title, threads.body,
            threads.created_at AS date, COALESCE(users.username, '') AS username
        FROM threads
        LEFT JOIN users ON threads.user_id = users.id
        WHERE threads.id = $1
    `, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadDetail{}, internal_errors.WithField(internal_errors.ThreadNotFound, id)
		}
		return domain.ThreadDetail{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.WithField(internal_errors.ThreadNotFound, id)
	}
	return nil
}
