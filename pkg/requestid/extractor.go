package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rutkit/pkg/logger"
)

// LoggerExtractor adds the request ID to every record logged with a request
// context. Register it with logger.WithContextExtractors.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		attr := logger.RequestID(FromContext(ctx))
		return attr, attr.Key != ""
	}
}
