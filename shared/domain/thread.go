package domain

import (
	"time"
	"unicode/utf8"

	"github.com/itchan-dev/forum/shared/errors"
)

const MaxThreadTitleLen = 50

// NewThread is a validated create-thread request.
type NewThread struct {
	title ThreadTitle
	body  ThreadBody
	owner UserId
}

// ParseNewThread validates title and body in p. Owner is taken from the
// authenticated caller, never from the payload.
func ParseNewThread(p Payload, owner UserId) (NewThread, error) {
	if k, ok := anyFalsy(p, "title", "body"); ok {
		return NewThread{}, errors.WithField(errors.NewThreadLackRequiredProperty, k)
	}
	v, k, ok := stringFields(p, "title", "body")
	if !ok {
		return NewThread{}, errors.WithField(errors.NewThreadDataTypeNotMeetSpec, k)
	}
	if utf8.RuneCountInString(v[0]) > MaxThreadTitleLen {
		return NewThread{}, errors.WithField(errors.NewThreadTitleLimitChar, "title")
	}
	return NewThread{title: v[0], body: v[1], owner: owner}, nil
}

func (t NewThread) Title() ThreadTitle { return t.title }
func (t NewThread) Body() ThreadBody   { return t.body }
func (t NewThread) Owner() UserId      { return t.owner }

// AddedThread is what storage reports back after inserting a thread.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

// ParseAddedThread guards storage adapter output.
func ParseAddedThread(p Payload) (AddedThread, error) {
	if k, ok := anyFalsy(p, "id", "title", "owner"); ok {
		return AddedThread{}, errors.WithField(errors.AddedThreadLackRequiredProperty, k)
	}
	v, k, ok := stringFields(p, "id", "title", "owner")
	if !ok {
		return AddedThread{}, errors.WithField(errors.AddedThreadDataTypeNotMeetSpec, k)
	}
	return AddedThread{Id: v[0], Title: v[1], Owner: v[2]}, nil
}

// ThreadDetail is the thread header as read from storage.
type ThreadDetail struct {
	Id       ThreadId    `db:"id"`
	Title    ThreadTitle `db:"title"`
	Body     ThreadBody  `db:"body"`
	Date     time.Time   `db:"date"`
	Username Username    `db:"username"`
}

// ThreadDetailView is the thread with its comments, ready for output.
type ThreadDetailView struct {
	Id       ThreadId      `json:"id"`
	Title    ThreadTitle   `json:"title"`
	Body     ThreadBody    `json:"body"`
	Date     time.Time     `json:"date"`
	Username Username      `json:"username"`
	Comments []CommentView `json:"comments"`
}
