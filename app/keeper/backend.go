package keeper

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/sessionkeeper/core/healthcheck"
	"github.com/dmitrymomot/sessionkeeper/core/logger"
	"github.com/dmitrymomot/sessionkeeper/core/session"
	"github.com/dmitrymomot/sessionkeeper/integration/database/mongo"
	"github.com/dmitrymomot/sessionkeeper/integration/database/pg"
	"github.com/dmitrymomot/sessionkeeper/integration/database/redis"
	"github.com/dmitrymomot/sessionkeeper/integration/storage/s3"
)

type backend struct {
	store  session.Store
	checks []healthcheck.Checker
	close  func(context.Context) error
}

func noopClose(context.Context) error { return nil }

// alwaysHealthy probes stores with no database behind them.
func alwaysHealthy(context.Context) error { return nil }

// openBackend connects the store selected by cfg.StoreBackend.
func (a *App) openBackend(ctx context.Context) (backend, error) {
	cfg := a.config
	log := a.logger.With(logger.Backend(cfg.StoreBackend))

	switch cfg.StoreBackend {
	case BackendMemory:
		return backend{
			store:  session.NewMemoryStore(),
			checks: []healthcheck.Checker{alwaysHealthy},
			close:  noopClose,
		}, nil

	case BackendRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return backend{}, err
		}
		log.InfoContext(ctx, "connected to redis")
		return backend{
			store:  redis.NewStoreFromConfig(client, cfg.Redis),
			checks: []healthcheck.Checker{redis.Healthcheck(client)},
			close:  func(context.Context) error { return client.Close() },
		}, nil

	case BackendPostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return backend{}, err
		}
		if cfg.AutoMigrate {
			if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
				pool.Close()
				return backend{}, err
			}
		}
		log.InfoContext(ctx, "connected to postgres")
		return backend{
			store:  pg.NewStore(pool),
			checks: []healthcheck.Checker{pg.Healthcheck(pool)},
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case BackendMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return backend{}, err
		}
		log.InfoContext(ctx, "connected to mongo")
		return backend{
			store:  mongo.NewStoreFromConfig(client, cfg.Mongo),
			checks: []healthcheck.Checker{mongo.Healthcheck(client)},
			close:  client.Disconnect,
		}, nil

	case BackendS3:
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return backend{}, err
		}
		return backend{
			store:  store,
			checks: []healthcheck.Checker{store.Healthcheck()},
			close:  noopClose,
		}, nil
	}

	return backend{}, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
}
