package keeper

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/sessionkeeper/core/config"
	"github.com/dmitrymomot/sessionkeeper/core/healthcheck"
	"github.com/dmitrymomot/sessionkeeper/core/logger"
	"github.com/dmitrymomot/sessionkeeper/core/session"
	"github.com/dmitrymomot/sessionkeeper/integration/formlogin"
	"github.com/dmitrymomot/sessionkeeper/pkg/async"
)

// App wires a session manager from environment configuration: logger,
// store backend, database probe and form login.
type App struct {
	config  Config
	logger  *slog.Logger
	store   session.Store
	checks  []healthcheck.Checker
	auth    session.Authenticator
	manager *session.Manager
	close   func(context.Context) error
}

type AppOption func(*App) error

// NewApp loads Config from the environment and builds the app.
func NewApp(ctx context.Context, opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewAppFromConfig(ctx, cfg, opts...)
}

// NewAppFromConfig builds the app from cfg. Options override the store and
// authenticator that cfg would otherwise select.
func NewAppFromConfig(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: newLogger(cfg),
		close:  noopClose,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.store == nil {
		b, err := app.openBackend(ctx)
		if err != nil {
			return nil, err
		}
		app.store, app.checks, app.close = b.store, b.checks, b.close
	}

	if app.auth == nil {
		auth, err := formlogin.New(cfg.FormLogin, formlogin.WithLogger(app.logger))
		if err != nil {
			_ = app.close(ctx)
			return nil, err
		}
		app.auth = auth
	}

	m, err := session.NewManagerFromConfig(cfg.Session,
		session.WithStore(app.store),
		session.WithHealthcheck(app.checks...),
		session.WithAuthenticator(app.auth),
		session.WithLogger(app.logger),
	)
	if err != nil {
		_ = app.close(ctx)
		return nil, err
	}
	app.manager = m

	app.logger.InfoContext(ctx, "session keeper ready",
		logger.Backend(cfg.StoreBackend),
		logger.Duration(m.Config().LoginTimeout),
	)
	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	if strings.EqualFold(cfg.Env, "production") {
		return logger.New(logger.WithProduction(cfg.AppName), logger.WithLevelString(cfg.LogLevel))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName), logger.WithLevelString(cfg.LogLevel))
}

// Manager returns the session manager.
func (a *App) Manager() *session.Manager {
	return a.manager
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the configuration the app was built from.
func (a *App) Config() Config {
	return a.config
}

// Warmup makes sure every user in cfg.WarmupUsers, plus any extra keys, has a
// stored session. Users are initialized concurrently; all failures are reported.
func (a *App) Warmup(ctx context.Context, userKeys ...string) error {
	keys := append(append([]string{}, a.config.WarmupUsers...), userKeys...)

	futures := make([]*async.ExecFuture, 0, len(keys))
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		futures = append(futures, async.Exec(ctx, key, a.manager.InitSession))
	}

	var errs []error
	for _, f := range futures {
		if err := f.AwaitContext(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		a.logger.ErrorContext(ctx, "warmup finished with errors",
			logger.Action("warmup"),
			logger.Errors(errs...),
		)
		return errors.Join(ErrWarmupFailed, errors.Join(errs...))
	}

	a.logger.InfoContext(ctx, "warmup finished",
		logger.Action("warmup"),
		logger.Count("users", len(futures)),
	)
	return nil
}

// Close releases the store backend's connections.
func (a *App) Close(ctx context.Context) error {
	return a.close(ctx)
}

// WithLogger replaces the logger built from LOG_LEVEL and APP_ENV.
func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return ErrNilOption
		}
		app.logger = logger
		return nil
	}
}

// WithStore uses store instead of the configured backend. checks probe the
// database behind it; without any, the store is treated as always available.
func WithStore(store session.Store, checks ...healthcheck.Checker) AppOption {
	return func(app *App) error {
		if store == nil {
			return ErrNilOption
		}
		app.store = store
		app.checks = checks
		if len(app.checks) == 0 {
			app.checks = []healthcheck.Checker{alwaysHealthy}
		}
		return nil
	}
}

// WithAuthenticator uses auth instead of the configured form login.
func WithAuthenticator(auth session.Authenticator) AppOption {
	return func(app *App) error {
		if auth == nil {
			return ErrNilOption
		}
		app.auth = auth
		return nil
	}
}
