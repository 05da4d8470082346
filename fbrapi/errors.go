package fbrapi

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the key-issuance response lacked the api_key field
	ErrMissingAPIKey = errors.New("generate_api_key did not return 'api_key'")
)

// APIError represents an FBR API error response
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("FBR API error: status %d: %s", e.StatusCode, truncate(e.Body, 200))
}

// IsUnauthorized checks if the error indicates the API key was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// truncate returns a shortened body for error messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
