package liteapi

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Decode maps a success envelope's data into T. Struct fields should be
// tagged with the upstream member names, for example `json:"hotelId"`.
// A failed envelope returns res.Err(); a success without data yields the
// zero value.
func Decode[T any](res *Result) (T, error) {
	var t T
	if res == nil {
		return t, fmt.Errorf("liteapi: decode of nil result")
	}
	if err := res.Err(); err != nil {
		return t, err
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return t, nil
	}
	if err := json.Unmarshal(res.Data, &t); err != nil {
		return t, fmt.Errorf("data decoding failed: %w", err)
	}
	return t, nil
}
