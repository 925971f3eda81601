package liteapi

import (
	"errors"

	json "github.com/goccy/go-json"
)

// Status tags a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Result is the uniform envelope returned by every endpoint method.
//
// On success Data holds the server payload (or its data member, depending on
// the endpoint). On failure exactly one of Errors (local validation) or Error
// (transport, timeout, upstream, parse) is set. Error carries the server's
// error value verbatim when one was supplied, otherwise a JSON string.
type Result struct {
	Status            Status          `json:"status"`
	Data              json.RawMessage `json:"data,omitempty"`
	SentimentAnalysis json.RawMessage `json:"sentimentAnalysis,omitempty"`
	Error             json.RawMessage `json:"error,omitempty"`
	Errors            []string        `json:"errors,omitempty"`

	// StatusCode is the HTTP status, or zero when no response was received.
	StatusCode int `json:"-"`

	err error
}

// OK reports whether the call succeeded.
func (r *Result) OK() bool { return r != nil && r.Status == StatusSuccess }

// Err returns the typed cause of a failed Result: *ValidationError,
// *TransportError, *TimeoutError, *APIError or *ParseError. It is nil on
// success.
func (r *Result) Err() error {
	if r == nil || r.Status == StatusSuccess {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	if len(r.Errors) > 0 {
		return &ValidationError{Errors: r.Errors}
	}
	return errors.New(r.ErrorMessage())
}

// ErrorMessage renders Error as text: a JSON string is unquoted, an object's
// message (or description) is used when present, anything else is returned raw.
func (r *Result) ErrorMessage() string {
	if r == nil || len(r.Error) == 0 {
		return ""
	}
	if s, ok := rawString(r.Error); ok {
		return s
	}
	var obj struct {
		Message     json.RawMessage `json:"message"`
		Description json.RawMessage `json:"description"`
	}
	if json.Unmarshal(r.Error, &obj) == nil {
		if s, ok := rawString(obj.Message); ok && s != "" {
			return s
		}
		if s, ok := rawString(obj.Description); ok && s != "" {
			return s
		}
	}
	return string(r.Error)
}

// Decode unmarshals Data into v. Failed results return Err.
func (r *Result) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

func succeeded(code int, data, sentiment json.RawMessage) *Result {
	return &Result{Status: StatusSuccess, StatusCode: code, Data: data, SentimentAnalysis: sentiment}
}

func rejected(errs []string) *Result {
	return &Result{Status: StatusFailed, Errors: errs, err: &ValidationError{Errors: errs}}
}

// failed builds the envelope for transport, timeout, upstream and parse errors.
func failed(code int, err error) *Result {
	res := &Result{Status: StatusFailed, StatusCode: code, err: err}
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Raw) > 0 {
		res.Error = apiErr.Raw
		return res
	}
	msg := err.Error()
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	res.Error, _ = json.Marshal(msg)
	return res
}

// rawString unquotes raw when it holds a JSON string.
func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
