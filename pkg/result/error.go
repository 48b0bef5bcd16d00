package result

import (
	"fmt"
	"net/http"
)

// Error codes for each failure variant. Stable, machine-readable.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeForbidden  = "FORBIDDEN"
	CodeNotFound   = "NOT_FOUND"
	CodeGone       = "GONE"
	CodeNoContent  = "NO_CONTENT"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error describes a failed operation. Each variant constructor fixes the
// status, code, title and problem type; callers only supply the description
// (and, for validation, the per-field detail messages). An Error is built
// once at the failure site and never mutated afterwards.
type Error struct {
	Status      int
	Code        string
	Title       string
	Type        string
	Description string
	Details     []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Validation creates a 400 error carrying zero or more field-level messages.
// Details are surfaced together, in the order given, so a client can render
// a complete validation report from a single response.
func Validation(description string, details ...string) *Error {
	return &Error{
		Status:      http.StatusBadRequest,
		Code:        CodeValidation,
		Title:       "Bad Request",
		Type:        "/problems/validation-error",
		Description: description,
		Details:     details,
	}
}

// Forbidden creates a 403 error for a refused authorization.
func Forbidden(description string) *Error {
	return &Error{
		Status:      http.StatusForbidden,
		Code:        CodeForbidden,
		Title:       "Forbidden",
		Type:        "/problems/forbidden",
		Description: description,
	}
}

// NotFound creates a 404 error for an absent resource.
func NotFound(description string) *Error {
	return &Error{
		Status:      http.StatusNotFound,
		Code:        CodeNotFound,
		Title:       "Not Found",
		Type:        "/problems/not-found",
		Description: description,
	}
}

// Gone creates a 410 error for a resource that is permanently unavailable.
func Gone(description string) *Error {
	return &Error{
		Status:      http.StatusGone,
		Code:        CodeGone,
		Title:       "Gone",
		Type:        "/problems/gone",
		Description: description,
	}
}

// NoContent creates an error for an operation whose target is absent, so
// there is nothing to act on. Rendered as 404: the source usage is "delete
// target not found", which is a missing resource, not an empty body.
func NoContent(description string) *Error {
	return &Error{
		Status:      http.StatusNotFound,
		Code:        CodeNoContent,
		Title:       "No Content",
		Type:        "/problems/no-content",
		Description: description,
	}
}

// Internal creates a 500 error for an unexpected failure.
func Internal(description string) *Error {
	return &Error{
		Status:      http.StatusInternalServerError,
		Code:        CodeInternal,
		Title:       "Internal Server Error",
		Type:        "/problems/internal-server-error",
		Description: description,
	}
}

// InternalFrom wraps an unexpected runtime fault (a database driver error,
// for example) caught at a service boundary.
func InternalFrom(err error) *Error {
	return Internal(err.Error())
}
