// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the
// toolkit.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs any registered
// ContextExtractor on every record. The HTTP server uses this to attach the
// request ID to each log line without passing it around explicitly.
//
// # Usage
//
//	import "github.com/dmitrymomot/rutkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rut"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "parsed",
//	    logger.RUT(r),
//	    logger.Notation(rut.Dots),
//	)
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check. Noop returns a logger that discards everything; library
// components fall back to it when the caller supplies none.
package logger
