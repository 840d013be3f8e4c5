package errors

import (
	"errors"
	"fmt"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Code is a dotted sentinel identifier, e.g. NEW_THREAD.TITLE_LIMIT_CHAR.
type Code string

const (
	NewThreadLackRequiredProperty Code = "NEW_THREAD.LACK_REQUIRED_PROPERTY"
	NewThreadDataTypeNotMeetSpec  Code = "NEW_THREAD.DATA_TYPE_NOT_MEET_SPECIFICATION"
	NewThreadTitleLimitChar       Code = "NEW_THREAD.TITLE_LIMIT_CHAR"

	AddedThreadLackRequiredProperty Code = "ADDED_THREAD.LACK_REQUIRED_PROPERTY"
	AddedThreadDataTypeNotMeetSpec  Code = "ADDED_THREAD.DATA_TYPE_NOT_MEET_SPECIFICATION"

	NewCommentNotContainNeededProperty Code = "NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	NewCommentNotMeetDataTypeSpec      Code = "NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"

	AddedCommentNotContainNeededProperty Code = "ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	AddedCommentNotMeetDataTypeSpec      Code = "ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"

	ThreadNotFound        Code = "GET_THREAD.NO_THREAD_FOUND"
	CommentNotFound       Code = "GET_THREAD_COMMENT.NO_THREAD_COMMENT_FOUND"
	CommentAccessForbiden Code = "VERIFY_COMMENT_OWNER.ACCESS_FORBIDEN"
	// DeleteCommentForbiden is never raised here; ownership failures use
	// CommentAccessForbiden. It stays translatable for existing clients
	// that already match on it.
	DeleteCommentForbiden Code = "DELETE_THREAD_COMMENT.ACCESS_FORBIDEN"

	UserNotFound Code = "USER.NOT_FOUND"
)

// DomainError is raised by entity parsing and by repositories.
// Field names the offending payload key or resource id when known.
type DomainError struct {
	Code  Code
	Field string
}

func (e *DomainError) Error() string {
	return string(e.Code)
}

// Is makes errors.Is match on the code alone, so callers can compare
// against New(code) without caring about Field.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code Code) *DomainError {
	return &DomainError{Code: code}
}

func WithField(code Code, field string) *DomainError {
	return &DomainError{Code: code, Field: field}
}

// CodeOf returns the code of the first DomainError in err's chain.
func CodeOf(err error) (Code, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}

type Category int

const (
	Validation Category = iota + 1
	NotFound
	Authorization
)

func (c Category) String() string {
	switch c {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Authorization:
		return "authorization"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ClientError is a translated, client-safe error.
type ClientError struct {
	Category Category
	Message  string
}

func (e *ClientError) Error() string {
	return e.Message
}
