package healthcheck

import "errors"

var (
	// ErrTimeout is returned when a probe does not finish within its bound.
	ErrTimeout = errors.New("healthcheck: timeout")
	// ErrUnhealthy is returned when a checker reports a failure.
	ErrUnhealthy = errors.New("healthcheck: dependency unhealthy")
)
