package api

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Response {
	return Response{Status: "success", Data: data}
}

// Fail is a client-correctable error.
func Fail(message string) Response {
	return Response{Status: "fail", Message: message}
}

// Error is a server-side failure.
func Error(message string) Response {
	return Response{Status: "error", Message: message}
}
