package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkeeper/core/healthcheck"
)

// Healthcheck returns a checker that pings the server.
func Healthcheck(client redis.UniversalClient) healthcheck.Checker {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
