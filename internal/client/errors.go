// Package client is the Go API client for the portal service. It decodes
// the standard response envelope and normalizes failures into APIError so
// callers can show one human-readable message regardless of which shape
// the server chose for this particular failure.
package client

import (
	"fmt"
	"net/http"
	"sort"
)

// APIError is a non-2xx response decoded into its useful parts.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Err is a short machine-oriented error string carried in the response
	// data ("data.error"), used by action endpoints for business rejections
	// such as "Cannot delete: in use".
	Err string

	// Message is the envelope-level message.
	Message string

	// Detail is a longer explanation some endpoints attach.
	Detail string

	// Fields holds per-field validation messages keyed by dotted path.
	Fields map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.UserMessage())
}

// UserMessage returns the message to surface to the user, probing the
// known response shapes in priority order: the business error string,
// then the envelope message, then the detail, then the first field
// validation message, and finally a generic fallback.
func (e *APIError) UserMessage() string {
	if e.Err != "" {
		return e.Err
	}
	if e.Message != "" && e.Message != "validation error" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("%s: %s", keys[0], e.Fields[keys[0]])
	}
	if e.Message != "" {
		return e.Message
	}
	return "An error occurred. Please try again."
}

// IsNotFound reports whether the error is an APIError with status 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsConflict reports whether the error is an APIError with status 409,
// the status action endpoints use for state-machine rejections.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

// IsUnauthorized reports whether the error is an APIError with status 401.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

func hasStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}
