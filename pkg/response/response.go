package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body every endpoint returns.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries pagination details on list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func write(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	write(w, statusCode, Envelope{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	write(w, statusCode, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}

func Error(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	write(w, statusCode, Envelope{Message: message, Errors: details})
}

// ValidationError reports per-field validation failures as a 400.
func ValidationError(w http.ResponseWriter, fieldErrors interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", fieldErrors)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, orDefault(message, "Unauthorized"), nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, orDefault(message, "Forbidden"), nil)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, orDefault(message, "Resource not found"), nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, orDefault(message, "Internal server error"), nil)
}

func orDefault(message, def string) string {
	if message == "" {
		return def
	}
	return message
}
