package liteapi

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// envelope selects how a success payload maps onto Result.Data.
type envelope int

const (
	// envelopeData unwraps a top-level "data" member when present.
	envelopeData envelope = iota
	// envelopeRaw keeps the whole payload.
	envelopeRaw
)

// request describes a single endpoint call.
type request struct {
	endpoint string // metrics and log label
	service  service
	method   string
	path     string
	query    url.Values
	body     any
	envelope envelope
}

func (r request) mutating() bool {
	return r.method == http.MethodPost || r.method == http.MethodPut || r.method == http.MethodPatch
}

// do sends r once and maps the outcome onto a Result. It never retries and
// never returns a nil Result.
func (c *Client) do(ctx context.Context, r request, opts ...CallOption) *Result {
	co := collectCallOptions(opts)
	u := c.baseURL(r.service) + r.path
	if qs := encodeQuery(r.query); qs != "" {
		u += "?" + qs
	}

	timeout := c.Timeout
	if co.timeout > 0 {
		timeout = co.timeout
	}
	// bound is the timeout reported on expiry; it stays zero when the
	// caller's own deadline comes first.
	var bound time.Duration
	if timeout > 0 {
		if dl, ok := ctx.Deadline(); !ok || time.Until(dl) > timeout {
			bound = timeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reqID := co.requestID
	if reqID == "" {
		reqID = uuid.NewString()
	}

	req := c.rc.R().SetContext(ctx)
	req.SetHeader("Accept", "application/json")
	req.SetHeaderVerbatim(apiKeyHeader(r.service), c.APIKey)
	req.SetHeader("X-Request-Id", reqID)
	if c.UserAgent != "" {
		req.SetHeader("User-Agent", c.UserAgent)
	}
	if r.mutating() {
		req.SetHeader("Content-Type", "application/json")
		if r.body != nil {
			req.SetBody(r.body)
		}
	}
	for k, vs := range co.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if c.Logger != nil {
		meta := map[string]any{
			"endpoint": r.endpoint, "method": r.method, "url": u,
			"headers": redactHeaders(req.Header), "request_id": reqID,
		}
		if co.label != "" {
			meta["label"] = co.label
		}
		c.Logger("request", meta)
	}

	start := time.Now()
	resp, err := req.Execute(r.method, u)
	elapsed := time.Since(start)

	var (
		body []byte
		raw  *http.Response
	)
	if resp != nil {
		body = resp.Body()
		raw = resp.RawResponse
	}
	for _, h := range c.AfterHooks {
		h(raw, body, err)
	}

	var (
		res     *Result
		outcome string
	)
	switch {
	case err != nil && isTimeout(ctx, err):
		outcome = outcomeTimeout
		te := &TimeoutError{Method: r.method, URL: u, Err: err}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			te.Timeout = bound
		}
		res = failed(0, te)
	case err != nil:
		outcome = outcomeTransport
		res = failed(0, &TransportError{Method: r.method, URL: u, Err: err})
	case statusOf(raw)/100 != 2:
		outcome = outcomeUpstream
		res = failed(statusOf(raw), parseAPIError(statusOf(raw), body))
	default:
		res = decodeSuccess(statusOf(raw), body, r.envelope)
		outcome = outcomeSuccess
		if !res.OK() {
			outcome = outcomeParse
		}
	}

	observe(r.endpoint, outcome, elapsed)
	if c.Logger != nil {
		c.Logger("response", map[string]any{
			"endpoint": r.endpoint, "method": r.method, "url": u, "status": statusOf(raw),
			"request_id": reqID, "duration_ms": elapsed.Milliseconds(), "outcome": outcome,
		})
	}
	return res
}

// decodeSuccess validates a 2xx body and applies the endpoint's envelope
// convention. An empty body is a success with no data.
func decodeSuccess(code int, body []byte, env envelope) *Result {
	if len(bytes.TrimSpace(body)) == 0 {
		return succeeded(code, nil, nil)
	}
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return failed(code, &ParseError{StatusCode: code, Body: string(body), Err: err})
	}
	payload := json.RawMessage(bytes.TrimSpace(body))
	if env == envelopeRaw {
		return succeeded(code, payload, nil)
	}
	var members map[string]json.RawMessage
	if json.Unmarshal(payload, &members) == nil {
		if data, ok := members["data"]; ok {
			return succeeded(code, data, members["sentimentAnalysis"])
		}
	}
	return succeeded(code, payload, nil)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
