// Package liteapi provides a typed Go client for the LiteAPI hotel booking API.
// The client wraps HTTP transport, authentication headers, per-call timeouts
// and response normalization behind one method per upstream endpoint.
//
// Every method returns a *Result envelope instead of an error. Validation
// failures are reported before any network I/O; transport, timeout, upstream
// and decoding failures are reported once, without retries. Result.Err
// exposes the typed cause for callers that prefer Go errors.
package liteapi

import (
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Default service origins.
const (
	DefaultSearchURL    = "https://api.liteapi.travel/v3.0"
	DefaultBookURL      = "https://book.liteapi.travel/v3.0"
	DefaultDashboardURL = "https://da.liteapi.travel"
	DefaultLegacyURL    = "https://api.liteapi.travel/v2.0"

	// DefaultTimeout bounds a call when no per-call timeout is given.
	DefaultTimeout = 10 * time.Second
)

// Logger defines an optional structured logging hook. Implementations should
// avoid recording sensitive values. The SDK already redacts API keys in headers.
type Logger func(event string, metadata map[string]any)

// Client contains shared configuration and HTTP plumbing for the SDK.
// A Client is safe for concurrent use once constructed; options must not be
// applied after the first call.
type Client struct {
	// APIKey is sent on every request, in X-API-Key for the search and booking
	// services and in X-Api-Key for the dashboard service.
	APIKey string

	// SearchURL serves rate searches and static data.
	SearchURL string

	// BookURL serves pre-book, book, bookings and guests.
	BookURL string

	// DashboardURL serves vouchers, loyalty and analytics.
	DashboardURL string

	// LegacyURL serves the deprecated v2 surface used by Legacy.
	LegacyURL string

	// HTTPClient is the underlying HTTP client. A tuned default is provided
	// and can be replaced via WithHTTPClient.
	HTTPClient *http.Client

	// UserAgent is added to each request.
	UserAgent string

	// Timeout bounds each call unless overridden with WithCallTimeout.
	// Zero leaves the call bounded only by the caller's context.
	Timeout time.Duration

	// Observability hooks.
	Logger      Logger
	BeforeHooks []func(*http.Request)
	AfterHooks  []func(*http.Response, []byte, error)

	rc *resty.Client
}

// New constructs a Client for apiKey with safe defaults. Options can override
// defaults.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		APIKey:       apiKey,
		SearchURL:    DefaultSearchURL,
		BookURL:      DefaultBookURL,
		DashboardURL: DefaultDashboardURL,
		LegacyURL:    DefaultLegacyURL,
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		UserAgent: "liteapi-go/1.0 (+https://github.com/steven3002/liteapi-go)",
		Timeout:   DefaultTimeout,
	}
	if debugLoggingRequested() {
		c.Logger = ZerologLogger(log.Logger)
	}
	for _, f := range opts {
		f(c)
	}
	c.rc = newRestyClient(c)
	return c
}

// newRestyClient binds a resty client to the configured *http.Client. Retries
// stay disabled: every failure is reported to the caller once.
func newRestyClient(c *Client) *resty.Client {
	hc := c.HTTPClient
	if hc == nil {
		hc = &http.Client{}
		c.HTTPClient = hc
	}
	rc := resty.NewWithClient(hc)
	rc.SetRetryCount(0)
	rc.SetJSONMarshaler(json.Marshal)
	rc.SetJSONUnmarshaler(json.Unmarshal)
	rc.SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
		for _, h := range c.BeforeHooks {
			h(req)
		}
		return nil
	})
	return rc
}
