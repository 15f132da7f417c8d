package pg

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sessionkeeper/core/healthcheck"
)

// Pinger is satisfied by *pgxpool.Pool and *pgx.Conn.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a checker that pings the database.
func Healthcheck(db Pinger) healthcheck.Checker {
	return func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
