// Package s3 provides a session.Store on Amazon S3 and S3-compatible services.
//
// This package uses the AWS S3 SDK v2 and works with Amazon S3, MinIO,
// DigitalOcean Spaces, Wasabi and other S3-compatible services. Each user
// occupies one object holding the encoded session payload.
//
// Basic usage:
//
//	cfg := s3.Config{
//		Bucket:      "sessionkeeper",
//		Region:      "us-east-1",
//		AccessKeyID: "AKIA...", // Optional - uses IAM roles if empty
//		SecretKey:   "...",     // Optional - uses IAM roles if empty
//		Prefix:      "sessions/",
//	}
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := session.NewManager(
//		session.WithStore(store),
//		session.WithHealthcheck(store.Healthcheck()),
//		session.WithAuthenticator(auth),
//	)
//
// # S3-Compatible Services
//
// For MinIO and similar services, set Endpoint and ForcePathStyle:
//
//	cfg := s3.Config{
//		Bucket:         "sessions",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// # Object Layout
//
// The payload for user key "alice@example.com" lives at
// "sessions/alice@example.com.json". User keys are path-escaped, so a key can
// never address an object outside the prefix.
//
// # Error Handling
//
// S3 errors are mapped to package errors such as ErrAccessDenied,
// ErrBucketNotFound and ErrServiceUnavailable. A missing object is reported as
// "not found" rather than an error. Missing buckets and denied access are
// wrapped with resilience.Permanent, so the session manager fails fast on them
// instead of retrying.
package s3
