package liteapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactHeaders(t *testing.T) {
	in := http.Header{
		"X-API-Key":    {"sk_live_abcdefgh1234"},
		"X-Api-Key":    {"short"},
		"Content-Type": {"application/json"},
	}
	out := redactHeaders(in)

	assert.Equal(t, []string{"sk_l…1234"}, out["X-API-Key"])
	assert.Equal(t, []string{"********"}, out["X-Api-Key"])
	assert.Equal(t, "application/json", out.Get("Content-Type"))
	assert.Equal(t, []string{"sk_live_abcdefgh1234"}, in["X-API-Key"], "input must not be modified")
	assert.Nil(t, redactHeaders(nil))
}

func TestParseAPIError_TopLevelCode(t *testing.T) {
	e := parseAPIError(http.StatusBadRequest, []byte(`{"error":"bad dates","code":2001}`))
	assert.Equal(t, "bad dates", e.Message)
	assert.Equal(t, "2001", e.Code)
	assert.Equal(t, `"bad dates"`, string(e.Raw))
	assert.Equal(t, "liteapi API 400 (2001): bad dates", e.Error())
}

func TestParseAPIError_NullError(t *testing.T) {
	e := parseAPIError(http.StatusTeapot, []byte(`{"error":null}`))
	assert.Empty(t, e.Raw)
	assert.Equal(t, "request failed with status 418 I'm a teapot", e.Message)
}

func TestTimeoutError_Message(t *testing.T) {
	assert.Equal(t, "request timeout after 10000ms", (&TimeoutError{Timeout: DefaultTimeout}).Error())
}
