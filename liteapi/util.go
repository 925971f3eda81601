package liteapi

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// service selects a base URL and the API-key header casing it expects.
type service int

const (
	searchService service = iota
	bookService
	dashboardService
	legacyService
)

func (c *Client) baseURL(s service) string {
	switch s {
	case bookService:
		return c.BookURL
	case dashboardService:
		return c.DashboardURL
	case legacyService:
		return c.LegacyURL
	default:
		return c.SearchURL
	}
}

// apiKeyHeader returns the header name, with the exact casing each service
// documents. It is sent verbatim, bypassing canonicalization.
func apiKeyHeader(s service) string {
	if s == dashboardService {
		return "X-Api-Key"
	}
	return "X-API-Key"
}

// statusOf returns the HTTP status code or zero if the response is nil.
func statusOf(res *http.Response) int {
	if res == nil {
		return 0
	}
	return res.StatusCode
}

// parseAPIError decodes an error body. The server's error member is kept
// verbatim; message and code are lifted from it when available. Bodies that
// carry nothing usable get a status-derived message.
func parseAPIError(code int, b []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Body: string(b)}
	var env struct {
		Error   json.RawMessage `json:"error"`
		Message json.RawMessage `json:"message"`
		Code    json.RawMessage `json:"code"`
	}
	if json.Unmarshal(b, &env) == nil {
		switch {
		case len(env.Error) > 0 && string(env.Error) != "null":
			apiErr.Raw = env.Error
			if s, ok := rawString(env.Error); ok {
				apiErr.Message = s
			} else {
				var inner struct {
					Message     json.RawMessage `json:"message"`
					Description json.RawMessage `json:"description"`
					Code        json.RawMessage `json:"code"`
				}
				if json.Unmarshal(env.Error, &inner) == nil {
					apiErr.Message = firstString(inner.Message, inner.Description)
					apiErr.Code = scalarText(inner.Code)
				}
			}
		case len(env.Message) > 0:
			if s, ok := rawString(env.Message); ok {
				apiErr.Raw = env.Message
				apiErr.Message = s
			}
		}
		if apiErr.Code == "" {
			apiErr.Code = scalarText(env.Code)
		}
	}
	if apiErr.Message == "" && len(apiErr.Raw) == 0 {
		apiErr.Message = "request failed with status " + statusText(code)
	}
	return apiErr
}

func statusText(code int) string {
	if t := http.StatusText(code); t != "" {
		return strconv.Itoa(code) + " " + t
	}
	return strconv.Itoa(code)
}

func firstString(raws ...json.RawMessage) string {
	for _, r := range raws {
		if s, ok := rawString(r); ok && s != "" {
			return s
		}
	}
	return ""
}

// scalarText renders a JSON string or number as text.
func scalarText(raw json.RawMessage) string {
	if s, ok := rawString(raw); ok {
		return s
	}
	if len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return string(raw)
	}
	return ""
}

// redactHeaders masks sensitive header values for logging.
func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return h
	}
	cp := http.Header{}
	for k, vs := range h {
		for _, v := range vs {
			if strings.EqualFold(k, "x-api-key") {
				if len(v) > 8 {
					cp[k] = append(cp[k], v[:4]+"…"+v[len(v)-4:])
				} else {
					cp[k] = append(cp[k], "********")
				}
			} else {
				cp[k] = append(cp[k], v)
			}
		}
	}
	return cp
}

// encodeQuery renders q with sorted keys. Characters that are safe inside a
// query value (for example "," in comma-joined id lists) are left literal;
// separators, spaces, "%" and non-ASCII bytes are percent-encoded.
func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		for _, v := range q[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(queryEscape(k))
			b.WriteByte('=')
			b.WriteString(queryEscape(v))
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func queryEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if keepInQuery(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&15])
	}
	return b.String()
}

func keepInQuery(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	switch ch {
	case '-', '_', '.', '~', ',', ':', '/', '@', '!', '$', '\'', '(', ')', '*':
		return true
	}
	return false
}
