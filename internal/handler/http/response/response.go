package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every mutating endpoint. ID is set only when
// a record was created.
type MessageResponse struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := ErrorResponse{
			Code:    "ENCODING_ERROR",
			Message: "Failed to encode response",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func SuccessWithMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func Created(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusCreated, MessageResponse{Message: message})
}

func CreatedWithID(w http.ResponseWriter, message string, id int64) {
	writeJSON(w, http.StatusCreated, MessageResponse{Message: message, ID: &id})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:    "BAD_REQUEST",
		Message: message,
		Details: details,
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}

func UnprocessableEntity(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    "UNPROCESSABLE_ENTITY",
		Message: message,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Code:    "NOT_FOUND",
		Message: message,
	})
}

func MethodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "Method not allowed",
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: message,
	})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorResponse{
		Code:    "CONFLICT",
		Message: message,
	})
}
