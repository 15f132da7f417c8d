// Package pg provides PostgreSQL connection pooling, health checking,
// migrations and a session.Store backed by the upstream_sessions table.
//
// This package wraps pgx/v5 with connection validation and retry logic, and
// uses goose for schema migrations.
//
// # Key Features
//
//   - Connect: Creates a pgxpool.Pool with retry logic and ping verification
//   - Migrate: Applies goose migrations, embedded by default
//   - Healthcheck: Returns a healthcheck.Checker for the session manager's database probe
//   - Store: Implements session.Store with an upsert per user key
//   - Error classification functions for common PostgreSQL error patterns
//
// # Configuration
//
// All configuration is handled through the Config struct with environment variable mapping:
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//		MigrationsPath    string        `env:"PG_MIGRATIONS_PATH"`
//		MigrationsTable   string        `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
//	}
//
// # Usage Example
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := session.NewManager(
//		session.WithStore(pg.NewStore(pool)),
//		session.WithHealthcheck(pg.Healthcheck(pool)),
//		session.WithAuthenticator(auth),
//	)
//
// # Database Migrations
//
// Migrate bridges the pool to database/sql with stdlib.OpenDBFromPool, since
// goose does not speak pgx natively. The embedded migration creates:
//
//	CREATE TABLE upstream_sessions (
//		user_key   TEXT PRIMARY KEY,
//		payload    BYTEA NOT NULL,
//		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// # Transaction Management
//
// Use WithTx to attach a pgx.Tx to a context and TxFromContext to retrieve it.
// Store picks up the transaction, so saving a session can join a wider unit of work:
//
//	tx, err := pool.Begin(ctx)
//	if err != nil {
//		return err
//	}
//	defer tx.Rollback(ctx)
//
//	if err := manager.SaveSession(pg.WithTx(ctx, tx), "alice", sess); err != nil {
//		return err
//	}
//	return tx.Commit(ctx)
//
// # Error Handling
//
// Errors are joined with the underlying pgx error and can be checked with errors.Is():
//
//   - ErrEmptyConnectionString, ErrFailedToParseDBConfig: bad configuration
//   - ErrFailedToOpenDBConnection: the pool never answered a ping
//   - ErrHealthcheckFailed: a health check ping failed
//   - ErrFailedToApplyMigrations, ErrMigrationsDirNotFound: migration problems
//   - ErrStoreFailed: a session read or write failed
//
// IsNotFoundError reports whether a raw pgx error means no rows matched.
package pg
