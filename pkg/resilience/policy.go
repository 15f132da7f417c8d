package resilience

import (
	"context"
	"log/slog"
	"time"
)

// Policy is a retry loop whose every attempt is bounded by Timeout.
type Policy struct {
	Name     string
	Attempts int
	Backoff  time.Duration
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Do runs fn under p: each attempt is a fresh WithTimeout call, retried by WithRetry.
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	return WithRetry(ctx, p.Attempts, p.Backoff, func(ctx context.Context) (T, error) {
		return WithTimeout(ctx, p.Timeout, fn)
	}, p.retryOptions()...)
}

// Run is Do for operations that only return an error.
func (p Policy) Run(ctx context.Context, fn func(context.Context) error) error {
	return Retry(ctx, p.Attempts, p.Backoff, func(ctx context.Context) error {
		return Timeout(ctx, p.Timeout, fn)
	}, p.retryOptions()...)
}

// WorstCase is the longest Do or Run can take when every attempt times out.
func (p Policy) WorstCase() time.Duration {
	n := max(p.Attempts, 1)
	return time.Duration(n)*p.Timeout + time.Duration(n-1)*p.Backoff
}

func (p Policy) retryOptions() []RetryOption {
	return []RetryOption{WithName(p.Name), WithLogger(p.Logger)}
}
