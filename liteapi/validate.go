package liteapi

import (
	"strings"
	"time"
)

// violations accumulates field-level validation messages for endpoints that
// report every problem at once.
type violations []string

func (v *violations) check(ok bool, msg string) {
	if !ok {
		*v = append(*v, msg)
	}
}

func (v violations) failed() bool { return len(v) > 0 }

func present(s string) bool { return strings.TrimSpace(s) != "" }

// isDate reports whether s is a YYYY-MM-DD calendar date.
func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// reject records a validation failure and returns its envelope. No request is
// sent.
func (c *Client) reject(endpoint string, errs ...string) *Result {
	observe(endpoint, outcomeValidation, 0)
	if c.Logger != nil {
		c.Logger("rejected", map[string]any{"endpoint": endpoint, "errors": errs, "outcome": outcomeValidation})
	}
	return rejected(errs)
}

func orDefault(v, def string) string {
	if present(v) {
		return v
	}
	return def
}
