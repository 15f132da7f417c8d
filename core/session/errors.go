package session

import "errors"

var (
	// ErrDecode is returned when a stored session cannot be turned back into a Session.
	// Callers treat it exactly like a missing session.
	ErrDecode = errors.New("failed to decode stored session")
	// ErrIncompleteRecord is joined with ErrDecode when a record lacks its cookies or headers.
	ErrIncompleteRecord = errors.New("stored session is incomplete")
	// ErrInvalidCookie is joined with ErrDecode when a stored cookie has no name.
	ErrInvalidCookie = errors.New("stored cookie has no name")
	// ErrUnknownVersion is joined with ErrDecode for payloads of an unsupported format version.
	ErrUnknownVersion = errors.New("unknown stored session format version")
	// ErrEncode is returned when a session cannot be encoded for storage.
	ErrEncode = errors.New("failed to encode session")
	// ErrInvalidText is joined with ErrEncode when a cookie or header is not valid UTF-8.
	ErrInvalidText = errors.New("session text is not valid UTF-8")
	// ErrDuplicateHeader is joined with ErrDecode when a stored header name appears twice.
	ErrDuplicateHeader = errors.New("stored header is duplicated")

	// ErrDatabaseUnavailable is returned when the database probe fails on every attempt.
	ErrDatabaseUnavailable = errors.New("database unavailable")
	// ErrLoginFailed is returned when the upstream login fails on every attempt.
	ErrLoginFailed = errors.New("upstream login failed")
	// ErrStoreIO is returned when the session store fails on every attempt.
	ErrStoreIO = errors.New("session store unavailable")

	// ErrMissingUserKey is returned when an operation is called without a user key.
	ErrMissingUserKey = errors.New("user key is required")
	// ErrInvalidBaseURL is returned by Session.Client for a missing or host-less URL.
	ErrInvalidBaseURL = errors.New("base URL with a host is required")

	// ErrStoreRequired is returned when a manager is built without a store.
	ErrStoreRequired = errors.New("session store is required")
	// ErrAuthenticatorRequired is returned when a manager is built without an authenticator.
	ErrAuthenticatorRequired = errors.New("authenticator is required")
	// ErrHealthcheckRequired is returned when a manager is built without a database health check.
	ErrHealthcheckRequired = errors.New("database health check is required")
	// ErrInvalidConfig is returned for non-positive attempts or negative durations.
	ErrInvalidConfig = errors.New("invalid session manager configuration")
)
