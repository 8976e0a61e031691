// Package response writes the JSON bodies of the development catch service.
// Successful answers carry the payload as is; failures carry a single
// "message" field, which is what catch service clients display.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/catchlog/pkg/errors"
)

// Message is the error body.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v as JSON with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, encoding errors can only be dropped.
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

// Fail writes an error body with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Message{Message: message})
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message string) {
	Fail(w, http.StatusUnauthorized, message)
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, message)
}

// InternalError writes a 500 error response without exposing err.
func InternalError(w http.ResponseWriter, _ error) {
	Fail(w, http.StatusInternalServerError, "Erreur interne du serveur")
}

// ErrorFromType maps typed errors to HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	switch {
	case errors.IsNotFound(err):
		NotFound(w, errors.Message(err))
	case errors.IsValidationError(err):
		BadRequest(w, errors.Message(err))
	case errors.IsUnauthorized(err):
		Unauthorized(w, errors.Message(err))
	default:
		InternalError(w, err)
	}
}
