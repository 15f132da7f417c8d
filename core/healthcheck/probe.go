package healthcheck

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkeeper/core/logger"
	"github.com/dmitrymomot/sessionkeeper/pkg/resilience"
)

// DefaultTimeout bounds a whole probe unless WithTimeout says otherwise.
const DefaultTimeout = 3 * time.Second

// Checker verifies one dependency. Integrations return one from their Healthcheck function.
type Checker func(ctx context.Context) error

// Probe runs a fixed set of checkers inside one hard timeout.
type Probe struct {
	checks  []Checker
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Probe.
type Option func(*Probe)

// WithTimeout sets the bound for a whole probe. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger used to report failed probes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Probe) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a probe over the given checkers. Nil checkers are skipped.
func New(checks []Checker, opts ...Option) *Probe {
	p := &Probe{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, c := range checks {
		if c != nil {
			p.checks = append(p.checks, c)
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe runs every checker in order and stops at the first failure.
// It returns nil when all pass, an error matching ErrTimeout when the bound
// elapses first, or an error matching ErrUnhealthy carrying the failure reason.
// A probe with no checkers always passes.
func (p *Probe) Probe(ctx context.Context) error {
	err := resilience.Timeout(ctx, p.timeout, func(ctx context.Context) error {
		for _, check := range p.checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, resilience.ErrTimeout):
		err = errors.Join(ErrTimeout, err)
	case ctx.Err() != nil:
		return err
	default:
		err = errors.Join(ErrUnhealthy, err)
	}

	p.logger.ErrorContext(ctx, "health probe failed",
		logger.Component("healthcheck"),
		logger.Duration(p.timeout),
		logger.Error(err),
	)
	return err
}
