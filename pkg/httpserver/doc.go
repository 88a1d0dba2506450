// Package httpserver runs the RUT HTTP API with configurable timeouts and
// graceful shutdown.
//
// Run listens on the configured address and blocks until the context is
// cancelled or SIGINT/SIGTERM arrives, then calls http.Server.Shutdown with
// the configured deadline and runs the stop hooks. Serve does the same on a
// caller-supplied listener, which tests use with "127.0.0.1:0".
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStopHook(func(*slog.Logger) { _ = client.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// HealthCheckHandler serves /healthz (no checks) and /readyz (with checks such
// as redis.Healthcheck).
//
// Listen and serve failures are joined with ErrStart, shutdown failures with
// ErrShutdown.
package httpserver
