package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

// WriteErrorAndStatusCode translates err and writes the matching envelope.
// Errors the translator does not know become a generic 500; their text is
// logged, never sent.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	translated := internal_errors.Translate(err)

	var ce *internal_errors.ClientError
	if errors.As(translated, &ce) {
		metrics.ObserveError(ce.Category.String())
		WriteJSON(w, statusFor(ce.Category), api.Fail(ce.Message))
		return
	}

	var se *internal_errors.ErrorWithStatusCode
	if errors.As(err, &se) {
		metrics.ObserveError("transport")
		WriteJSON(w, se.StatusCode, api.Fail(se.Message))
		return
	}

	metrics.ObserveError("internal")
	logger.Log.Error("unexpected error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Error(internalErrorMessage))
}

func statusFor(c internal_errors.Category) int {
	switch c {
	case internal_errors.Validation:
		return http.StatusBadRequest
	case internal_errors.NotFound:
		return http.StatusNotFound
	case internal_errors.Authorization:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","message":"` + internalErrorMessage + `"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// DecodePayload reads a JSON object without imposing a schema, so entity
// parsing can report missing fields and wrong types itself.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	var payload domain.Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		// JSON null
		payload = domain.Payload{}
	}
	return payload, nil
}
