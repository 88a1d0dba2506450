package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a readiness check for client. A reply other than PONG
// counts as a failure.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		pong, err := client.Ping(ctx).Result()
		if err != nil {
			return errors.Join(ErrUnhealthy, err)
		}
		if pong != "PONG" {
			return fmt.Errorf("%w: unexpected ping reply %q", ErrUnhealthy, pong)
		}
		return nil
	}
}
