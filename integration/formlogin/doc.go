// Package formlogin implements session.Authenticator for sites that log in
// through a classic username/password HTML form.
//
// Login posts the form to Config.LoginURL, follows redirects, and turns the
// cookies left in a fresh cookie jar into a session.Session together with the
// configured User-Agent header. A 401 or 403 response is wrapped with
// resilience.Permanent, so the session manager does not hammer the site with
// bad credentials. Any other failure is left retryable.
//
// A single account comes from Config; use WithCredentials to resolve
// credentials per user key:
//
//	auth, err := formlogin.New(cfg, formlogin.WithCredentials(
//		func(ctx context.Context, userKey string) (string, string, error) {
//			return vault.Lookup(ctx, userKey)
//		},
//	))
package formlogin
