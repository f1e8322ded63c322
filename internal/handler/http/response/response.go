package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// MsgInternalError is the only detail a caller ever sees for a 500.
const MsgInternalError = "An unexpected error occurred. Please try again later."

// ErrorResponse is the error envelope. Detail is a string, or a list of
// strings when a request failed validation on more than one field.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "status", statusCode, "error", err)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error responses
func ValidationError(w http.ResponseWriter, messages []string) {
	var detail interface{} = messages
	if len(messages) == 1 {
		detail = messages[0]
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: detail})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorResponse{Detail: message})
}

func InternalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: MsgInternalError})
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Detail: message})
}
