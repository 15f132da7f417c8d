// Package session keeps one authenticated upstream HTTP session per user.
//
// A Session is the identity a third-party site hands out after a
// username/password login: its cookies and the headers to replay with them.
// The Manager stores one encoded Session per user key and logs in again
// whenever the stored one is missing or cannot be decoded.
//
// # Components
//
//   - Session: cookies (identified by name, domain and path) and headers
//     (case-insensitive, last write wins). Client builds an *http.Client that
//     replays them.
//   - Codec / Record: a Session is encoded into a Record holding a cookies blob
//     and a headers blob; MarshalRecord frames the record for storage. A record
//     missing either blob never decodes into a partial session.
//   - Store: Get/Set of an opaque payload per user key. MemoryStore is
//     included; Redis, PostgreSQL, MongoDB and S3 stores live under integration/.
//   - Authenticator: the upstream login.
//   - Manager: orchestrates database check, store lookup, decode and login.
//
// # Usage
//
//	mgr, err := session.NewManager(
//		session.WithStore(redis.NewStore(client)),
//		session.WithAuthenticator(auth), // e.g. a *formlogin.Authenticator
//		session.WithHealthcheck(pg.Healthcheck(pool)),
//		session.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	// On login of the end-user:
//	if err := mgr.InitSession(ctx, userID); err != nil {
//		return err
//	}
//
//	// When a request must be replayed upstream:
//	sess, err := mgr.GetSession(ctx, userID)
//	if err != nil {
//		return err
//	}
//	client, err := sess.Client(upstreamURL)
//
// # Resilience
//
// Every step runs under a retry policy (three attempts, 300ms apart by default).
// Login attempts are each bounded by a 90 second timeout; store operations and
// database probes by 3 seconds. Retries are logged, and each failed operation
// returns one error:
//
//   - ErrDatabaseUnavailable: the database probe failed on every attempt; no login was tried
//   - ErrLoginFailed: the upstream login failed on every attempt
//   - ErrStoreIO: the store failed on every attempt
//   - ErrDecode: a stored payload could not be decoded (handled internally by GetSession)
//
// Use errors.Is to check them; resilience.ErrRetriesExhausted and
// resilience.ErrTimeout are also matched when they apply.
package session
