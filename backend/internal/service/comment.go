package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type CommentService interface {
	Add(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewComment(threads ThreadRepository, comments CommentRepository) *Comment {
	return &Comment{threads: threads, comments: comments}
}

// Add validates the payload before touching storage, and never creates a
// comment under a missing thread.
func (c *Comment) Add(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	newComment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := c.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}
	return c.comments.AddComment(ctx, newComment, threadId, owner)
}

// Delete tombstones a comment. Every step gates the next one, including
// for comments that are already deleted.
func (c *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := c.threads.VerifyThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := c.comments.CheckCommentAvailability(ctx, commentId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentOwner(ctx, commentId, owner); err != nil {
		return err
	}
	return c.comments.DeleteCommentById(ctx, commentId)
}
