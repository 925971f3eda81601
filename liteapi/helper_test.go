package liteapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	srv := httptest.NewServer(handler)
	cl := New("test-key-0123456789",
		WithBaseURL(srv.URL),
		WithTimeout(2*time.Second),
	)
	return srv, cl
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// countingClient returns a client whose transport counts calls and answers
// every request with an empty 200.
func countingClient() (*Client, *int32) {
	var calls int32
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"data":{}}`)),
			Request:    r,
		}, nil
	})
	cl := New("k", WithBaseURL("http://liteapi.invalid"), WithHTTPClient(&http.Client{Transport: rt}))
	return cl, &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func mustPath(t *testing.T, r *http.Request, want string) {
	t.Helper()
	if r.URL.Path != want {
		t.Errorf("path = %s, want %s", r.URL.Path, want)
	}
}
