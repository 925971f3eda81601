package liteapi

import (
	"net/http"
	"strings"
	"time"
)

// Option customizes a Client at construction time.
type Option func(*Client)

func WithSearchURL(u string) Option        { return func(c *Client) { c.SearchURL = strings.TrimRight(u, "/") } }
func WithBookURL(u string) Option          { return func(c *Client) { c.BookURL = strings.TrimRight(u, "/") } }
func WithDashboardURL(u string) Option     { return func(c *Client) { c.DashboardURL = strings.TrimRight(u, "/") } }
func WithLegacyURL(u string) Option        { return func(c *Client) { c.LegacyURL = strings.TrimRight(u, "/") } }
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithTimeout(d time.Duration) Option   { return func(c *Client) { c.Timeout = d } }
func WithLogger(l Logger) Option           { return func(c *Client) { c.Logger = l } }

// WithBaseURL points every service at the same origin. Useful against a
// single mock server or a gateway that fans out by path.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		u = strings.TrimRight(u, "/")
		c.SearchURL, c.BookURL, c.DashboardURL, c.LegacyURL = u, u, u, u
	}
}

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	headers   http.Header
	label     string
	timeout   time.Duration
	requestID string
}

// WithCallTimeout overrides the client timeout for a single call.
func WithCallTimeout(d time.Duration) CallOption {
	return func(co *callOptions) { co.timeout = d }
}

// WithRequestID sets the X-Request-Id sent with the call instead of a
// generated one.
func WithRequestID(id string) CallOption {
	return func(co *callOptions) { co.requestID = id }
}

// WithHeader adds an arbitrary header to a single API call.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Add(key, value)
	}
}

// WithLabel sets an optional label for internal diagnostics.
func WithLabel(l string) CallOption {
	return func(co *callOptions) { co.label = l }
}

func collectCallOptions(opts []CallOption) *callOptions {
	co := &callOptions{}
	for _, o := range opts {
		o(co)
	}
	return co
}
