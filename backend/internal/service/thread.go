package service

import (
	"context"
	"sort"

	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadService interface {
	Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetailView, error)
}

type Thread struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewThread(threads ThreadRepository, comments CommentRepository) *Thread {
	return &Thread{threads: threads, comments: comments}
}

func (t *Thread) Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	newThread, err := domain.ParseNewThread(payload, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return t.threads.AddThread(ctx, newThread)
}

// GetDetail relies on GetThreadById for the existence check.
func (t *Thread) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetailView, error) {
	thread, err := t.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetailView{}, err
	}
	rows, err := t.comments.GetCommentsByThreadId(ctx, id)
	if err != nil {
		return domain.ThreadDetailView{}, err
	}

	return domain.ThreadDetailView{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: commentViews(rows),
	}, nil
}

// commentViews hides tombstoned content and orders by date. Never nil.
func commentViews(rows []domain.CommentRow) []domain.CommentView {
	views := make([]domain.CommentView, 0, len(rows))
	for _, row := range rows {
		content := row.Content
		if row.IsDelete {
			content = domain.DeletedCommentContent
		}
		views = append(views, domain.CommentView{
			Id:       row.Id,
			Username: row.Username,
			Date:     row.Date,
			Content:  content,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date.Before(views[j].Date)
	})
	return views
}
