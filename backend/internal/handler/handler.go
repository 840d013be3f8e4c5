package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

// maxBodyBytes caps request bodies. Larger bodies fail to decode.
const maxBodyBytes = 1 << 20

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckers pings each dependency in order and stops at the first failure.
type HealthCheckers []HealthChecker

func (hc HealthCheckers) Ping(ctx context.Context) error {
	for _, c := range hc {
		if err := c.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Renderer turns a markdown thread body into safe HTML.
type Renderer interface {
	Render(text string) string
}

type Handler struct {
	thread   service.ThreadService
	comment  service.CommentService
	renderer Renderer
	health   HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, renderer Renderer, health HealthChecker) *Handler {
	return &Handler{
		thread:   thread,
		comment:  comment,
		renderer: renderer,
		health:   health,
	}
}

// requireUser returns the authenticated caller or writes a 401.
// Routes behind NeedAuth always have one.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, api.Fail("Missing authentication"))
		return nil, false
	}
	return user, true
}

func decodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	return utils.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}
