package keeper

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrNilOption      = errors.New("option value cannot be nil")
	ErrWarmupFailed   = errors.New("session warmup failed")
)
