package api

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when the backend gives no message.
const DefaultErrorMessage = "API request failed"

// Error is the normalized failure of any API call. Transport and decode
// failures carry StatusCode 0 and wrap their cause.
type Error struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the transport or decode failure, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Detail includes the status code, for logs.
func (e *Error) Detail() string {
	if e.StatusCode == 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.cause)
		}
		return e.Message
	}
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

func newError(status int, message string, cause error) *Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{StatusCode: status, Message: message, cause: cause}
}

// IsAuthError checks if the error is an authentication error
func IsAuthError(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsForbiddenError checks if the error is a forbidden error
func IsForbiddenError(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func statusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
