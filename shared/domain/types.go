package domain

type (
	UserId    = string
	Username  = string
	ThreadId  = string
	CommentId = string

	ThreadTitle = string
	ThreadBody  = string
	CommentText = string
)

// Payload is a decoded JSON request body. Values keep their JSON types
// (string, float64, bool, nil, ...) so parsing can tell a missing field
// from a field of the wrong type.
type Payload = map[string]any
