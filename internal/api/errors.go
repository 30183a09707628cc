package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d) for %s %s", e.StatusCode, e.Method, e.Path)
	}
	return fmt.Sprintf("API error (status %d) for %s %s: %s", e.StatusCode, e.Method, e.Path, e.Message)
}

// IsNotFound returns true if the error is a 404 Not Found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsClientError returns true for 4xx responses.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error is, or wraps, an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
