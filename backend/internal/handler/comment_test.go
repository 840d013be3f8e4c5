package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		comments := &MockCommentService{
			MockAdd: func(payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
				assert.Equal(t, "sebuah comment", payload["content"])
				assert.Equal(t, "thread-123", threadId)
				assert.Equal(t, testUser.Id, owner)
				return domain.AddedComment{Id: "comment-123", Content: "sebuah comment", Owner: owner}, nil
			},
		}
		router := newTestRouter(&Handler{comment: comments}, testUser)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/threads/thread-123/comments", `{"content":"sebuah comment"}`))

		require.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "success", env.Status)

		var data struct {
			AddedComment domain.AddedComment `json:"addedComment"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, domain.AddedComment{Id: "comment-123", Content: "sebuah comment", Owner: "user-123"}, data.AddedComment)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing content",
			err:        internal_errors.New(internal_errors.NewCommentNotContainNeededProperty),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "tidak dapat membuat komentar pada thread dikarenakan properti yang dibutuhkan tidak ada",
		},
		{
			name:       "content not a string",
			err:        internal_errors.New(internal_errors.NewCommentNotMeetDataTypeSpec),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "content harus string",
		},
		{
			name:       "thread not found",
			err:        internal_errors.New(internal_errors.ThreadNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "thread tidak ditemukan",
		},
		{
			name:       "unknown user",
			err:        internal_errors.New(internal_errors.UserNotFound),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "username tidak ditemukan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &MockCommentService{
				MockAdd: func(domain.Payload, domain.ThreadId, domain.UserId) (domain.AddedComment, error) {
					return domain.AddedComment{}, tt.err
				},
			}
			router := newTestRouter(&Handler{comment: comments}, testUser)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/threads/thread-123/comments", `{}`))

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}

	t.Run("no user in context", func(t *testing.T) {
		router := newTestRouter(&Handler{comment: &MockCommentService{}}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/threads/thread-123/comments", `{"content":"c"}`))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		router := newTestRouter(&Handler{comment: &MockCommentService{}}, testUser)
		big := `{"content":"` + string(make([]byte, maxBodyBytes)) + `"}`

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/threads/thread-123/comments", big))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		comments := &MockCommentService{
			MockDelete: func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
				assert.Equal(t, "thread-123", threadId)
				assert.Equal(t, "comment-123", commentId)
				assert.Equal(t, testUser.Id, owner)
				return nil
			},
		}
		router := newTestRouter(&Handler{comment: comments}, testUser)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodDelete, "/threads/thread-123/comments/comment-123", ""))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"thread not found", internal_errors.New(internal_errors.ThreadNotFound), http.StatusNotFound, "thread tidak ditemukan"},
		{"comment not found", internal_errors.New(internal_errors.CommentNotFound), http.StatusNotFound, "komen tidak ditemukan"},
		{"not the owner", internal_errors.New(internal_errors.CommentAccessForbiden), http.StatusForbidden, "kamu tidak punya akses untuk komentar ini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &MockCommentService{
				MockDelete: func(domain.ThreadId, domain.CommentId, domain.UserId) error { return tt.err },
			}
			router := newTestRouter(&Handler{comment: comments}, testUser)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, http.MethodDelete, "/threads/thread-123/comments/comment-123", ""))

			assert.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, "fail", env.Status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}

	t.Run("no user in context", func(t *testing.T) {
		router := newTestRouter(&Handler{comment: &MockCommentService{}}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodDelete, "/threads/thread-123/comments/comment-123", ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
