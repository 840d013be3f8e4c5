package domain

import (
	"time"

	"github.com/itchan-dev/forum/shared/errors"
)

// DeletedCommentContent replaces the content of tombstoned comments.
const DeletedCommentContent = "**komentar telah dihapus**"

type NewComment struct {
	content CommentText
}

func ParseNewComment(p Payload) (NewComment, error) {
	if falsy(p["content"]) {
		return NewComment{}, errors.WithField(errors.NewCommentNotContainNeededProperty, "content")
	}
	content, ok := p["content"].(string)
	if !ok {
		return NewComment{}, errors.WithField(errors.NewCommentNotMeetDataTypeSpec, "content")
	}
	return NewComment{content: content}, nil
}

func (c NewComment) Content() CommentText { return c.content }

type AddedComment struct {
	Id      CommentId   `json:"id"`
	Content CommentText `json:"content"`
	Owner   UserId      `json:"owner"`
}

func ParseAddedComment(p Payload) (AddedComment, error) {
	if k, ok := anyFalsy(p, "id", "content", "owner"); ok {
		return AddedComment{}, errors.WithField(errors.AddedCommentNotContainNeededProperty, k)
	}
	v, k, ok := stringFields(p, "id", "content", "owner")
	if !ok {
		return AddedComment{}, errors.WithField(errors.AddedCommentNotMeetDataTypeSpec, k)
	}
	return AddedComment{Id: v[0], Content: v[1], Owner: v[2]}, nil
}

// CommentRow is a comment as stored, tombstone flag included.
type CommentRow struct {
	Id       CommentId   `db:"id"`
	Username Username    `db:"username"`
	Date     time.Time   `db:"date"`
	Content  CommentText `db:"content"`
	IsDelete bool        `db:"is_delete"`
}

// CommentView is a comment as shown to clients. It has no tombstone field.
type CommentView struct {
	Id       CommentId   `json:"id"`
	Username Username    `json:"username"`
	Date     time.Time   `json:"date"`
	Content  CommentText `json:"content"`
}
