package api

import (
	"time"

	"github.com/itchan-dev/forum/shared/domain"
)

// Request bodies are decoded into domain.Payload, not into typed DTOs, so
// that type mismatches are reported by entity parsing.

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadDetailResponse struct {
	Id       domain.ThreadId      `json:"id"`
	Title    domain.ThreadTitle   `json:"title"`
	Body     domain.ThreadBody    `json:"body"`
	BodyHTML string               `json:"body_html"`
	Date     time.Time            `json:"date"`
	Username domain.Username      `json:"username"`
	Comments []domain.CommentView `json:"comments"`
}

type ThreadData struct {
	Thread ThreadDetailResponse `json:"thread"`
}
