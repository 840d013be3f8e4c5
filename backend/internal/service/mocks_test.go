package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// --- Mocks ---

// callLog records the order of repository calls across both mocks.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	log *callLog

	addThreadFunc          func(thread domain.NewThread) (domain.AddedThread, error)
	getThreadByIdFunc      func(id domain.ThreadId) (domain.ThreadDetail, error)
	verifyThreadExistsFunc func(id domain.ThreadId) error
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.add("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-1", Title: thread.Title(), Owner: thread.Owner()}, nil
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	m.log.add("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadDetail{Id: id}, nil
}

func (m *MockThreadRepository) VerifyThreadExists(ctx context.Context, id domain.ThreadId) error {
	m.log.add("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(id)
	}
	return nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	log *callLog

	addCommentFunc               func(comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	checkCommentAvailabilityFunc func(id domain.CommentId) error
	verifyCommentOwnerFunc       func(id domain.CommentId, owner domain.UserId) error
	deleteCommentByIdFunc        func(id domain.CommentId) error
	getCommentsByThreadIdFunc    func(threadId domain.ThreadId) ([]domain.CommentRow, error)
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.NewComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	m.log.add("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment, threadId, owner)
	}
	return domain.AddedComment{Id: "comment-1", Content: comment.Content(), Owner: owner}, nil
}

func (m *MockCommentRepository) CheckCommentAvailability(ctx context.Context, id domain.CommentId) error {
	m.log.add("CheckCommentAvailability")
	if m.checkCommentAvailabilityFunc != nil {
		return m.checkCommentAvailabilityFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.add("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentRepository) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	m.log.add("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.log.add("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

// --- Helpers ---

func newMocks() (*MockThreadRepository, *MockCommentRepository, *callLog) {
	log := &callLog{}
	return &MockThreadRepository{log: log}, &MockCommentRepository{log: log}, log
}
