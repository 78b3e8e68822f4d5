package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

var (
	// ErrSessionExpired marks the terminal failure of the refresh protocol.
	// Credentials are already cleared when it is returned.
	ErrSessionExpired = errors.New("session expired")
	ErrNoRefreshToken = errors.New("no refresh token stored")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Detail     json.RawMessage
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// EnvelopeError is a response whose envelope carried success=false.
// Error returns the server message verbatim.
type EnvelopeError struct {
	Message string
	Detail  json.RawMessage
}

func (e *EnvelopeError) Error() string {
	return e.Message
}

// TransportError is a failure that never produced an HTTP status: connection
// errors, timeouts, an open circuit breaker.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func IsStatus(err error, code int) bool {
	return StatusCode(err) == code
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

type errorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail,omitempty"`
}

type failureBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   *errorBody      `json:"error"`
}

func newStatusError(method, path string, statusCode int, body []byte) *StatusError {
	statusErr := &StatusError{Method: method, Path: path, StatusCode: statusCode}

	var parsed failureBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Error != nil && parsed.Error.Message != "":
			statusErr.Message = parsed.Error.Message
			statusErr.Detail = parsed.Error.Detail
		case len(parsed.Detail) > 0:
			var detail string
			if json.Unmarshal(parsed.Detail, &detail) == nil {
				statusErr.Message = detail
			}
			statusErr.Detail = parsed.Detail
		case parsed.Message != "":
			statusErr.Message = parsed.Message
		}
	}

	return statusErr
}
