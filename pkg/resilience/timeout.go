package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/sessionkeeper/pkg/async"
)

// WithTimeout calls fn and waits at most d for it to return.
// The call runs on its own goroutine with a context that expires after d;
// if it is still running at that point its result is discarded and a
// *TimeoutError is returned. Cancellation of ctx returns ctx.Err().
// A non-positive d calls fn directly without a bound.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if d <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	future := async.Async(callCtx, fn, func(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
		return fn(ctx)
	})

	v, err := future.AwaitContext(callCtx)
	if err == nil {
		return v, nil
	}

	var zero T
	return zero, classifyTimeout(ctx, callCtx, d, err)
}

// Timeout is WithTimeout for operations that only return an error.
func Timeout(ctx context.Context, d time.Duration, fn func(context.Context) error) error {
	if d <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	future := async.Exec(callCtx, fn, func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	})

	err := future.AwaitContext(callCtx)
	if err == nil {
		return nil
	}

	return classifyTimeout(ctx, callCtx, d, err)
}

// classifyTimeout separates the caller giving up from the bound expiring.
func classifyTimeout(parent, callCtx context.Context, d time.Duration, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Duration: d}
	}
	return err
}
