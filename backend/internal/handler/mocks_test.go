package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/require"
)

type MockThreadService struct {
	MockAdd       func(payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	MockGetDetail func(id domain.ThreadId) (domain.ThreadDetailView, error)
}

func (m *MockThreadService) Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(payload, owner)
	}
	return domain.AddedThread{}, nil // Default behavior
}

func (m *MockThreadService) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetailView, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(id)
	}
	return domain.ThreadDetailView{Id: id, Comments: []domain.CommentView{}}, nil // Default behavior
}

type MockCommentService struct {
	MockAdd    func(payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Add(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(payload, threadId, owner)
	}
	return domain.AddedComment{}, nil // Default behavior
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, owner)
	}
	return nil // Default behavior
}

type MockRenderer struct{}

func (MockRenderer) Render(text string) string {
	return "<p>" + text + "</p>"
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}

// asUser stands in for the auth middleware.
func asUser(user *domain.User, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user != nil {
			r = r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
		}
		next(w, r)
	}
}

// newTestRouter mounts the handler the same way the real router does,
// with user as the authenticated caller (nil for anonymous).
func newTestRouter(h *Handler, user *domain.User) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/threads", asUser(user, h.AddThread)).Methods("POST")
	router.HandleFunc("/threads/{threadId}", h.GetThread).Methods("GET")
	router.HandleFunc("/threads/{threadId}/comments", asUser(user, h.AddComment)).Methods("POST")
	router.HandleFunc("/threads/{threadId}/comments/{commentId}", asUser(user, h.DeleteComment)).Methods("DELETE")
	return router
}

func createRequest(t *testing.T, method, url string, body string) *http.Request {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = &bytes.Buffer{}
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, url, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json"), "response should be json")
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return env
}
