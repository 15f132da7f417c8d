package formlogin

import "errors"

var (
	ErrInvalidConfig      = errors.New("formlogin: login URL and form field names are required")
	ErrMissingCredentials = errors.New("formlogin: no credentials for user")
	ErrRequestFailed      = errors.New("formlogin: login request failed")
	ErrInvalidCredentials = errors.New("formlogin: credentials rejected")
	ErrUnexpectedStatus   = errors.New("formlogin: unexpected response status")
	ErrLoginRejected      = errors.New("formlogin: success cookie not set")
	ErrNoCookies          = errors.New("formlogin: login returned no cookies")
)
