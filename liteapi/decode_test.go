package liteapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func TestDecode_Success(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"code":"FR","name":"France"},{"code":"SG","name":"Singapore"}]}`)
	})
	defer srv.Close()

	got, err := Decode[[]country](cl.Countries(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, []country{{"FR", "France"}, {"SG", "Singapore"}}, got)
}

func TestDecode_FailedResult(t *testing.T) {
	cl, _ := countingClient()

	got, err := Decode[[]country](cl.Cities(context.Background(), ""))
	assert.Nil(t, got)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"The country code is required"}, ve.Errors)
}

func TestDecode_EmptyAndMismatched(t *testing.T) {
	got, err := Decode[country](succeeded(http.StatusOK, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, country{}, got)

	_, err = Decode[country](succeeded(http.StatusOK, []byte(`[1,2]`), nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data decoding failed")

	_, err = Decode[country](nil)
	assert.Error(t, err)
}
