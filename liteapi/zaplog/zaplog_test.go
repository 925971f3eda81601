package zaplog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/steven3002/liteapi-go/liteapi"
)

func TestLogger_WritesRequestAndResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	cl := liteapi.New("secret-key-abcdef", liteapi.WithBaseURL(srv.URL), liteapi.WithLogger(Logger(zap.New(core))))

	res := cl.Countries(context.Background())
	require.False(t, res.OK())

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "liteapi request", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "liteapi response", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	fields := entries[1].ContextMap()
	assert.Equal(t, "upstream", fields["outcome"])
	assert.EqualValues(t, http.StatusBadGateway, fields["status"])

	for _, e := range entries {
		for k, v := range e.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, "secret-key-abcdef", "field %s", k)
			}
		}
	}
}

func TestLogger_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Logger(nil)("request", map[string]any{"outcome": "success"}) })
}
