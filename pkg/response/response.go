// Package response writes the storefront's JSON error envelope from plain
// http.ResponseWriter call sites (middleware, mostly). Handlers built on
// pkg/ctx use the richer Context helpers instead.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/maison/pkg/apperr"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// Fail maps an error through the apperr taxonomy: status, kind, and a
// client-safe message.
func Fail(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	write(w, status, envelope{
		Status:  status,
		Message: apperr.Message(err),
		Kind:    string(apperr.KindOf(err)),
	})
}

// Unauthorized sends a 401 with the unauthenticated kind.
func Unauthorized(w http.ResponseWriter) {
	Fail(w, apperr.Unauthenticated())
}

// Forbidden sends a 403 with the forbidden kind.
func Forbidden(w http.ResponseWriter, message string) {
	Fail(w, apperr.Forbidden(message))
}
