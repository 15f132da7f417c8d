// Package redis provides Redis client initialization, health checking and a
// session.Store backed by plain string keys.
//
// This package wraps the go-redis client with connection validation and retry
// logic, and keeps one upstream session payload per user under a prefixed key.
//
// # Key Features
//
//   - Connect: Creates a Redis client with exponential retry logic and PING verification
//   - Healthcheck: Returns a healthcheck.Checker for the session manager's database probe
//   - Store: Implements session.Store with GET/SET and an optional TTL
//
// # Configuration
//
// All configuration is handled through the Config struct with environment variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		KeyPrefix      string        `env:"REDIS_SESSION_PREFIX" envDefault:"upstream_session:"`
//		SessionTTL     time.Duration `env:"REDIS_SESSION_TTL" envDefault:"0s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage Example
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	manager, err := session.NewManager(
//		session.WithStore(redis.NewStoreFromConfig(client, cfg)),
//		session.WithHealthcheck(redis.Healthcheck(client)),
//		session.WithAuthenticator(auth),
//	)
//
// # Error Handling
//
// The package defines domain-specific errors that can be checked using errors.Is():
//
//   - ErrFailedToParseRedisConnString: Returned when the Redis connection URL is malformed
//   - ErrRedisNotReady: Returned when Redis doesn't answer within the retry budget
//   - ErrEmptyConnectionURL: Returned when no connection URL is provided
//   - ErrHealthcheckFailed: Returned when the health check ping fails
//   - ErrStoreFailed: Returned when a session GET or SET fails
//
// A missing key is reported as "not found" rather than an error, so the
// session manager logs in again instead of failing.
package redis
