package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	id := "comment-" + s.newId()

	var row struct {
		Id      string `db:"id"`
		Content string `db:"content"`
		UserId  string `db:"user_id"`
	}
	err := s.db.QueryRowxContext(ctx, `
        INSERT INTO thread_comments (id, content, thread_id, user_id, is_delete, created_at)
        VALUES ($1, $2, $3, $4, false, $5)
        RETURNING id, content, user_id
    `, id, comment.Content(), threadId, owner, s.timestamp()).StructScan(&row)
	if err != nil {
		switch {
		case isForeignKeyViolation(err, "fk_thread_comments_user_id"):
			return domain.AddedComment{}, internal_errors.WithField(internal_errors.UserNotFound, owner)
		case isForeignKeyViolation(err, "fk_thread_comments_thread_id"):
			// thread removed between the existence check and the insert
			return domain.AddedComment{}, internal_errors.WithField(internal_errors.ThreadNotFound, threadId)
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.ParseAddedComment(domain.Payload{"id": row.Id, "content": row.Content, "owner": row.UserId})
}

// CheckCommentAvailability succeeds for tombstoned comments too.
func (s *Storage) CheckCommentAvailability(ctx context.Context, id domain.CommentId) error {
	var exists bool
	err := s.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM thread_comments WHERE id = $1)", id)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.WithField(internal_errors.CommentNotFound, id)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var userId string
	err := s.db.GetContext(ctx, &userId, "SELECT user_id FROM thread_comments WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.WithField(internal_errors.CommentNotFound, id)
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if userId != owner {
		return internal_errors.WithField(internal_errors.CommentAccessForbiden, id)
	}
	return nil
}

func (s *Storage) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE thread_comments SET is_delete = true WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return internal_errors.WithField(internal_errors.CommentNotFound, id)
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	comments := []domain.CommentRow{}
	err := s.db.SelectContext(ctx, &comments, `
        SELECT
            thread_comments.id, users.username, thread_comments.created_at AS date,
            thread_comments.content, thread_comments.is_delete
        FROM thread_comments
        JOIN users ON thread_comments.user_id = users.id
        WHERE thread_comments.thread_id = $1
        ORDER BY thread_comments.created_at ASC, thread_comments.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return comments, nil
}
