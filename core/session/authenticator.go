package session

import "context"

// Authenticator performs the upstream login for a user and returns the
// resulting session. Errors wrapped with resilience.Permanent are not retried.
type Authenticator interface {
	Login(ctx context.Context, userKey string) (Session, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, userKey string) (Session, error)

// Login calls f.
func (f AuthenticatorFunc) Login(ctx context.Context, userKey string) (Session, error) {
	return f(ctx, userKey)
}
