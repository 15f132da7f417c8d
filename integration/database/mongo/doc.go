// Package mongo provides MongoDB client initialization, health checking and a
// session.Store that keeps one document per user.
//
// This package wraps the official MongoDB Go driver with application-level retry logic
// optimized for cloud deployments, particularly MongoDB Atlas. It handles common deployment
// challenges like cold starts, network hiccups, and connection pool management.
//
// New implements retry logic to handle MongoDB Atlas
// cold starts (5-8 seconds) and brief network interruptions that could otherwise cause
// application startup failures.
//
// Basic usage:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to MongoDB:", err)
//	}
//	defer client.Disconnect(ctx)
//
//	manager, err := session.NewManager(
//		session.WithStore(mongo.NewStoreFromConfig(client, cfg)),
//		session.WithHealthcheck(mongo.Healthcheck(client)),
//		session.WithAuthenticator(auth),
//	)
//
// # Configuration
//
// Configuration is handled through environment variables via the Config struct.
// The default values are optimized for MongoDB Atlas deployments:
//
//	MONGODB_URL                 (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//	MONGODB_DATABASE            (default: sessionkeeper)
//	MONGODB_SESSION_COLLECTION  (default: upstream_sessions)
//
// # Session Documents
//
// Each user occupies one document whose _id is the user key:
//
//	{ "_id": "alice", "payload": BinData(...), "updated_at": ISODate(...) }
//
// Set upserts the document, so saving twice leaves a single document.
//
// # Error Handling
//
// The package defines domain-specific errors:
//
//	ErrEmptyConnectionURL     - Returned when MONGODB_URL is empty
//	ErrFailedToConnectToMongo - Returned when all retry attempts are exhausted
//	ErrHealthcheckFailed      - Returned when health check ping fails
//	ErrStoreFailed            - Returned when a session read or write fails
//
// The New function includes connection verification via Ping to ensure the connection
// is actually usable before returning.
package mongo
