package liteapi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ErrTimeout matches every *TimeoutError through errors.Is.
var ErrTimeout = errors.New("liteapi: request timeout")

// ValidationError reports caller input rejected before any network I/O.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "liteapi: invalid request: " + strings.Join(e.Errors, "; ")
}

// TransportError wraps network failures: DNS, refused or reset connections,
// caller cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports a call aborted because its deadline passed.
type TimeoutError struct {
	Method  string
	URL     string
	Timeout time.Duration // zero when the caller's deadline or transport expired first
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("request timeout after %dms", e.Timeout.Milliseconds())
	}
	return fmt.Sprintf("request timeout: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error        { return e.Err }
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// APIError represents a non-success HTTP response from the API.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	Code       string          // Optional server-provided code.
	Raw        json.RawMessage // Server-provided error value, verbatim.
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if e.Code != "" {
		return fmt.Sprintf("liteapi API %d (%s): %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("liteapi API %d: %s", e.StatusCode, msg)
}

// ParseError reports a success status whose body is not valid JSON.
type ParseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ParseError) Error() string { return "Invalid JSON response: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }
