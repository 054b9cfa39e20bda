package utils

import (
	"encoding/json"
	"net/http"

	"hirehub/internal/apperr"
	"hirehub/internal/models"

	"go.uber.org/zap"
)

// JSON writes a JSON response with status code
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// JSONError writes an ErrorResponse with the given code and message.
func JSONError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, models.ErrorResponse{Code: code, Message: message})
}

// WriteError maps err onto its HTTP status and writes the error payload.
// Internal errors are logged and reported without their cause.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		GetLogger().Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	JSONError(w, apperr.HTTPStatus(kind), string(kind), apperr.MessageOf(err))
}
