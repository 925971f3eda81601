package liteapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_UpstreamErrorPassthrough(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantRaw   string
		wantMsg   string
		wantCode  string
		jsonError bool
	}{
		{"string error", http.StatusBadRequest, `{"error":"Invalid hotelIds"}`, `"Invalid hotelIds"`, "Invalid hotelIds", "", true},
		{"object error", http.StatusUnauthorized, `{"error":{"code":401,"description":"Invalid API key"}}`, `{"code":401,"description":"Invalid API key"}`, "Invalid API key", "401", true},
		{"message only", http.StatusForbidden, `{"message":"Forbidden resource"}`, `"Forbidden resource"`, "Forbidden resource", "", true},
		{"non-json body", http.StatusBadGateway, `<html>bad gateway</html>`, `"request failed with status 502 Bad Gateway"`, "request failed with status 502 Bad Gateway", "", false},
		{"json without error", http.StatusInternalServerError, `{"foo":1}`, `"request failed with status 500 Internal Server Error"`, "request failed with status 500 Internal Server Error", "", true},
		{"empty body", http.StatusServiceUnavailable, ``, `"request failed with status 503 Service Unavailable"`, "request failed with status 503 Service Unavailable", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
				if tc.jsonError {
					w.Header().Set("Content-Type", "application/json")
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			defer srv.Close()

			res := cl.Countries(context.Background())
			assert.Equal(t, StatusFailed, res.Status)
			assert.Equal(t, tc.status, res.StatusCode)
			assert.JSONEq(t, tc.wantRaw, string(res.Error))
			assert.Equal(t, tc.wantMsg, res.ErrorMessage())
			assert.Empty(t, res.Errors)

			var apiErr *APIError
			require.ErrorAs(t, res.Err(), &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.body, apiErr.Body)
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}

func TestDo_InvalidJSONOnSuccess(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[`)
	})
	defer srv.Close()

	res := cl.Facilities(context.Background())
	assert.Equal(t, StatusFailed, res.Status)
	assert.True(t, strings.HasPrefix(res.ErrorMessage(), "Invalid JSON response: "), res.ErrorMessage())

	var pe *ParseError
	require.ErrorAs(t, res.Err(), &pe)
	assert.Equal(t, http.StatusOK, pe.StatusCode)
	assert.Equal(t, `{"data":[`, pe.Body)
}

func TestDo_EmptySuccessBody(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	res := cl.CancelBooking(context.Background(), "bk1")
	assert.True(t, res.OK())
	assert.Nil(t, res.Data)
	assert.NoError(t, res.Err())
}

func TestDo_DataEnvelope(t *testing.T) {
	bodies := map[string]string{
		"/data/countries":  `{"data":[{"code":"FR"}]}`,
		"/data/currencies": `[{"code":"EUR"}]`,
		"/data/reviews":    `{"data":[{"score":9}],"sentimentAnalysis":{"pros":["clean"]}}`,
	}
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bodies[r.URL.Path])
	})
	defer srv.Close()
	ctx := context.Background()

	countries := cl.Countries(ctx)
	assert.JSONEq(t, `[{"code":"FR"}]`, string(countries.Data))
	assert.Nil(t, countries.SentimentAnalysis)

	currencies := cl.Currencies(ctx)
	assert.JSONEq(t, `[{"code":"EUR"}]`, string(currencies.Data))

	reviews := cl.Reviews(ctx, "lp1", 5, true)
	require.True(t, reviews.OK())
	assert.JSONEq(t, `[{"score":9}]`, string(reviews.Data))
	assert.JSONEq(t, `{"pros":["clean"]}`, string(reviews.SentimentAnalysis))
}

func hangingServer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}
}

func TestDo_ClientTimeout(t *testing.T) {
	srv, cl := newTestServer(hangingServer())
	defer srv.Close()
	cl.Timeout = 100 * time.Millisecond

	start := time.Now()
	res := cl.GetFullRates(context.Background(), validRateSearch())
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second, "call must resolve near the timeout")
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "request timeout after 100ms", res.ErrorMessage())
	assert.Zero(t, res.StatusCode)
	assert.True(t, errors.Is(res.Err(), ErrTimeout))

	var te *TimeoutError
	require.ErrorAs(t, res.Err(), &te)
	assert.Equal(t, 100*time.Millisecond, te.Timeout)
}

func TestDo_CallTimeoutOverridesClient(t *testing.T) {
	srv, cl := newTestServer(hangingServer())
	defer srv.Close()

	res := cl.Countries(context.Background(), WithCallTimeout(50*time.Millisecond))
	assert.Equal(t, "request timeout after 50ms", res.ErrorMessage())
}

func TestDo_CallerDeadline(t *testing.T) {
	srv, cl := newTestServer(hangingServer())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res := cl.Countries(ctx)
	assert.True(t, errors.Is(res.Err(), ErrTimeout))
	assert.True(t, strings.HasPrefix(res.ErrorMessage(), "request timeout"), res.ErrorMessage())
}

func TestDo_CallerCancelIsTransportError(t *testing.T) {
	cl := New("k", WithBaseURL("http://127.0.0.1:1"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := cl.Countries(ctx)
	assert.Equal(t, StatusFailed, res.Status)

	var tr *TransportError
	require.ErrorAs(t, res.Err(), &tr)
	assert.True(t, errors.Is(res.Err(), context.Canceled))
	assert.False(t, errors.Is(res.Err(), ErrTimeout))
}

func TestDo_ConnectionRefused(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	res := cl.Countries(context.Background())
	assert.Equal(t, StatusFailed, res.Status)
	assert.Zero(t, res.StatusCode)

	var tr *TransportError
	require.ErrorAs(t, res.Err(), &tr)
	assert.Equal(t, http.MethodGet, tr.Method)
	assert.NotEmpty(t, res.ErrorMessage())
}

func TestDo_NoRetries(t *testing.T) {
	calls := 0
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusTooManyRequests, `{"error":"slow down"}`)
	})
	defer srv.Close()

	res := cl.Countries(context.Background())
	assert.Equal(t, "slow down", res.ErrorMessage())
	assert.Equal(t, 1, calls)
}
