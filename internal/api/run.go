package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/rutkit/pkg/httpserver"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/redis"
	"github.com/dmitrymomot/rutkit/pkg/rutgen"
)

// Run wires the configured dependencies and serves the API until ctx is done
// or the process is signalled. With REDIS_URL set, random RUTs are
// deduplicated across instances through a shared Redis set and /readyz
// pings Redis; with RUT_UNIQUE alone they are deduplicated per process.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	if log == nil {
		log = logger.Noop()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := []Option{
		WithLogger(log),
		WithRange(cfg.MinBody, cfg.MaxBody),
		WithQRSize(cfg.QRSize),
		WithMaxBatch(cfg.MaxBatch),
	}
	var srvOpts []httpserver.Option

	var store rutgen.Store
	switch {
	case cfg.Redis.Enabled():
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		store = rutgen.NewRedisStore(client,
			rutgen.WithKey(cfg.Redis.KeyPrefix+":issued"),
			rutgen.WithTTL(cfg.Redis.ReservationTTL),
		)
		opts = append(opts, WithReadinessChecks(redis.Healthcheck(client)))
		srvOpts = append(srvOpts, httpserver.WithStopHook(func(l *slog.Logger) {
			if err := client.Close(); err != nil {
				l.Error("closing redis client", logger.Error(err))
			}
		}))
		log.InfoContext(ctx, "random ruts deduplicated in redis", slog.String("key", cfg.Redis.KeyPrefix+":issued"))
	case cfg.Unique:
		store = rutgen.NewMemoryStore()
		log.InfoContext(ctx, "random ruts deduplicated in memory")
	}
	if store != nil {
		opts = append(opts, WithGenerator(rutgen.New(store,
			rutgen.WithRange(cfg.MinBody, cfg.MaxBody),
			rutgen.WithMaxAttempts(cfg.MaxAttempts),
			rutgen.WithLogger(log),
		)))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, append(srvOpts, httpserver.WithLogger(log))...)
	return srv.Run(ctx, NewHandler(opts...))
}
