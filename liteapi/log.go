package liteapi

import (
	"os"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger hook. Requests log at
// debug level; failed responses log at warn.
func ZerologLogger(l zerolog.Logger) Logger {
	return func(event string, metadata map[string]any) {
		ev := l.Debug()
		if outcome, ok := metadata["outcome"].(string); ok && outcome != outcomeSuccess {
			ev = l.Warn()
		}
		ev.Fields(metadata).Msg("liteapi " + event)
	}
}

// debugLoggingRequested checks if request logging should be enabled without
// code changes: LITEAPI_DEBUG=true or DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("LITEAPI_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
