// Package sessionkeeper keeps one authenticated upstream HTTP session per user,
// logging in again whenever the stored session is missing or unreadable.
//
// Every operation talks to slow or flaky collaborators (a database, a session
// store, a remote login form), so each call is bounded by a per-attempt timeout
// and retried a fixed number of times before it fails with a typed error.
//
// # Package Organization
//
//   - Core: the session lifecycle and the ambient stack it is built on
//   - Utilities: standalone retry, timeout and future helpers
//   - Integrations: session stores, database probes and the form login
//   - App: environment-driven wiring
//
// # Core Packages
//
//	github.com/dmitrymomot/sessionkeeper/core/session     - Session, Codec, Store and the lifecycle Manager
//	github.com/dmitrymomot/sessionkeeper/core/healthcheck - Bounded database probe over plain check functions
//	github.com/dmitrymomot/sessionkeeper/core/config      - Type-safe environment variable loading
//	github.com/dmitrymomot/sessionkeeper/core/logger      - slog construction and attribute helpers
//
// # Utility Packages
//
//	github.com/dmitrymomot/sessionkeeper/pkg/resilience - Retry-around-timeout policies
//	github.com/dmitrymomot/sessionkeeper/pkg/async      - Futures for running work in goroutines
//
// # Integration Packages
//
//	github.com/dmitrymomot/sessionkeeper/integration/database/redis - Redis client, health check and session store
//	github.com/dmitrymomot/sessionkeeper/integration/database/pg    - PostgreSQL pool, migrations, health check and session store
//	github.com/dmitrymomot/sessionkeeper/integration/database/mongo - MongoDB client, health check and session store
//	github.com/dmitrymomot/sessionkeeper/integration/storage/s3     - S3 session store with bucket health check
//	github.com/dmitrymomot/sessionkeeper/integration/formlogin      - Username/password form login
//
// # Application Packages
//
//	github.com/dmitrymomot/sessionkeeper/app/keeper - Builds a session manager from STORE_BACKEND and friends
//
// # Quick Start
//
//	manager, err := session.NewManager(
//		session.WithStore(redis.NewStore(client)),
//		session.WithHealthcheck(redis.Healthcheck(client)),
//		session.WithAuthenticator(auth),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := manager.InitSession(ctx, "alice"); err != nil {
//		log.Fatal(err)
//	}
//	sess, err := manager.GetSession(ctx, "alice")
//	client, err := sess.Client(upstreamURL)
package sessionkeeper
