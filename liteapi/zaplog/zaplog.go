// Package zaplog adapts a zap logger to the liteapi Logger hook.
package zaplog

import (
	"sort"

	"go.uber.org/zap"

	"github.com/steven3002/liteapi-go/liteapi"
)

// Logger returns a liteapi.Logger that writes through l. Requests log at
// debug level; responses with an outcome other than success log at warn.
// A nil l yields a no-op logger.
func Logger(l *zap.Logger) liteapi.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return func(event string, metadata map[string]any) {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, zap.Any(k, metadata[k]))
		}

		msg := "liteapi " + event
		if outcome, ok := metadata["outcome"].(string); ok && outcome != "success" {
			l.Warn(msg, fields...)
			return
		}
		l.Debug(msg, fields...)
	}
}
