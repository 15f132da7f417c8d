package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

type retryOptions struct {
	name   string
	logger *slog.Logger
}

// RetryOption configures WithRetry.
type RetryOption func(*retryOptions)

// WithName labels log records of failed attempts.
func WithName(name string) RetryOption {
	return func(o *retryOptions) {
		o.name = name
	}
}

// WithLogger sets the logger used for failed attempts. Attempts are not logged without one.
func WithLogger(l *slog.Logger) RetryOption {
	return func(o *retryOptions) {
		o.logger = l
	}
}

// WithRetry calls fn up to attempts times, sleeping backoff between calls.
// It returns the first successful result. When every attempt fails it returns
// an *ExhaustedError wrapping the last failure. Errors marked Permanent are
// returned immediately without the wrapper, and cancellation of ctx returns ctx.Err().
func WithRetry[T any](ctx context.Context, attempts int, backoff time.Duration, fn func(context.Context) (T, error), opts ...RetryOption) (T, error) {
	o := retryOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if attempts < 1 {
		attempts = 1
	}

	var (
		result  T
		last    error
		attempt int
	)

	b := retry.WithMaxRetries(uint64(attempts-1), constantBackoff(backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		v, err := fn(ctx)
		if err == nil {
			result = v
			return nil
		}
		last = err

		if ctx.Err() != nil || IsPermanent(err) {
			return err
		}

		if o.logger != nil {
			o.logger.WarnContext(ctx, "attempt failed",
				slog.String("operation", o.name),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts),
				slog.Any("error", err),
			)
		}
		return retry.RetryableError(err)
	})
	if err == nil {
		return result, nil
	}

	var zero T
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	var p *permanentError
	if errors.As(err, &p) {
		return zero, p.err
	}
	return zero, &ExhaustedError{Attempts: attempt, Err: last}
}

// Retry is WithRetry for operations that only return an error.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func(context.Context) error, opts ...RetryOption) error {
	_, err := WithRetry(ctx, attempts, backoff, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)
	return err
}

// constantBackoff waits d between attempts; d may be zero.
func constantBackoff(d time.Duration) retry.Backoff {
	if d < 0 {
		d = 0
	}
	return retry.BackoffFunc(func() (time.Duration, bool) {
		return d, false
	})
}
