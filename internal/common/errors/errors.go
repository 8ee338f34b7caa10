// Package errors provides the standardized error taxonomy for the shim.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeValidation covers locally detected bad input, e.g. a missing
	// phone number. Never retried, surfaced as a client error.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"

	// ErrCodeRemoteAPI covers a non-success response from the HubSpot API.
	// Not retried; the remote status code and payload ride along for
	// diagnostics.
	ErrCodeRemoteAPI ErrorCode = "REMOTE_API_ERROR"

	// ErrCodeUnexpected covers everything else: network faults, malformed
	// remote responses, programming errors.
	ErrCodeUnexpected ErrorCode = "UNEXPECTED_ERROR"
)

// StandardError is a structured application error.
type StandardError struct {
	Code         ErrorCode `json:"code"`
	Message      string    `json:"message"`
	Details      string    `json:"details,omitempty"`
	RemoteStatus int       `json:"remoteStatus,omitempty"`
	RemoteBody   string    `json:"remoteBody,omitempty"`
	Retryable    bool      `json:"retryable"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationError creates a non-retryable client input error.
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidation,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteAPIError creates an error for a non-success HubSpot response,
// carrying the remote status code and body.
func NewRemoteAPIError(operation string, status int, body string) *StandardError {
	return &StandardError{
		Code:         ErrCodeRemoteAPI,
		Message:      fmt.Sprintf("HubSpot %s request failed", operation),
		Details:      fmt.Sprintf("status %d: %s", status, body),
		RemoteStatus: status,
		RemoteBody:   body,
		Retryable:    false,
		Timestamp:    time.Now().UTC(),
	}
}

// NewUnexpectedError wraps an arbitrary failure without leaking internals
// to callers.
func NewUnexpectedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpected,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError normalizes any error to a StandardError.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewUnexpectedError(err)
}

// IsValidation reports whether err is a locally detected input error.
func IsValidation(err error) bool {
	return AsStandardError(err).Code == ErrCodeValidation
}

// HTTPStatus maps an error code to the response status used at the
// request boundary.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeRemoteAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
