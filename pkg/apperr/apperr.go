// Package apperr defines the storefront's error taxonomy.
//
// Every failure that can cross the API boundary is an *Error carrying a
// stable machine-readable Kind and a human message. Controllers map errors
// to HTTP responses through Status and KindOf; anything that is not an
// *Error is treated as internal and collapsed to a generic message before
// it reaches the client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies a class of failure. The string value is part of the API
// contract — clients branch on it, so never rename an existing kind.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindUnauthenticated   Kind = "unauthenticated"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInsufficientStock Kind = "insufficient_stock"
	KindEmptyCart         Kind = "empty_cart"
	KindInternal          Kind = "internal_error"
)

// Error is the taxonomy's concrete error type.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a kinded error. The cause is for logs only and
// never serialized to clients.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// ── Constructors for the common cases ────────────────────────────────────────

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Unauthenticated() *Error {
	return New(KindUnauthenticated, "Authentication required")
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func NotFound(what string) *Error {
	return Newf(KindNotFound, "%s not found", what)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// InsufficientStock names the product that could not be fulfilled, matching
// the message shape the storefront has always returned.
func InsufficientStock(productName string) *Error {
	return Newf(KindInsufficientStock, "Not enough stock for %s", productName)
}

func EmptyCart() *Error {
	return New(KindEmptyCart, "Cart is empty")
}

// Internal wraps an unexpected failure. The message shown to clients is
// always generic; err carries the real cause for logging.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// ── Inspection ───────────────────────────────────────────────────────────────

// KindOf returns the kind of err, or KindInternal when err is not part of
// the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInsufficientStock, KindEmptyCart:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Internal errors collapse
// to a generic message so store failures never leak details.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Internal server error"
}
