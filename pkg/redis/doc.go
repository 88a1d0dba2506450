// Package redis connects to the Redis server that backs shared RUT
// reservations (see package rutgen) and exposes a health check for it.
//
// Configuration is read from the environment through package config:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//	    store := rutgen.NewRedisStore(client, rutgen.WithKey(cfg.KeyPrefix+":issued"))
//	}
//
// Connect retries the initial ping; Healthcheck wraps a ping for readiness
// checks. Failures are joined with the sentinel errors in this package so
// callers can match them with errors.Is.
package redis
