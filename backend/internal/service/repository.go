package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

// ThreadRepository is implemented by storage adapters.
type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	// GetThreadById fails with GET_THREAD.NO_THREAD_FOUND if the thread is absent.
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
	VerifyThreadExists(ctx context.Context, id domain.ThreadId) error
}

// CommentRepository is implemented by storage adapters.
type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	CheckCommentAvailability(ctx context.Context, id domain.CommentId) error
	// VerifyCommentOwner fails with VERIFY_COMMENT_OWNER.ACCESS_FORBIDEN if
	// owner did not write the comment.
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	// DeleteCommentById sets the tombstone flag. The row is kept.
	DeleteCommentById(ctx context.Context, id domain.CommentId) error
	// GetCommentsByThreadId returns comments oldest first.
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
}
