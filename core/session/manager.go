package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkeeper/core/healthcheck"
	"github.com/dmitrymomot/sessionkeeper/core/logger"
	"github.com/dmitrymomot/sessionkeeper/pkg/resilience"
)

// Manager keeps one upstream session per user in a Store, logging in again
// whenever the stored session is missing or unreadable.
// It holds no per-user state and is safe for concurrent use. Concurrent logins
// for the same user are not coordinated; the last write to the store wins.
type Manager struct {
	store  Store
	auth   Authenticator
	checks []healthcheck.Checker
	probe  *healthcheck.Probe
	codec  Codec
	logger *slog.Logger
	config Config

	loginPolicy resilience.Policy
	storePolicy resilience.Policy
	dbPolicy    resilience.Policy
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithStore sets the per-user session store.
func WithStore(s Store) ManagerOption {
	return func(m *Manager) {
		m.store = s
	}
}

// WithAuthenticator sets the upstream login procedure.
func WithAuthenticator(a Authenticator) ManagerOption {
	return func(m *Manager) {
		m.auth = a
	}
}

// WithHealthcheck sets the database checks probed before any session work.
// Nil checks are ignored.
func WithHealthcheck(checks ...healthcheck.Checker) ManagerOption {
	return func(m *Manager) {
		for _, c := range checks {
			if c != nil {
				m.checks = append(m.checks, c)
			}
		}
	}
}

// WithCodec replaces the default JSONCodec.
func WithCodec(c Codec) ManagerOption {
	return func(m *Manager) {
		if c != nil {
			m.codec = c
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConfig applies configuration options on top of the current config.
func WithConfig(opts ...Option) ManagerOption {
	return func(m *Manager) {
		for _, opt := range opts {
			opt(&m.config)
		}
	}
}

// NewManager creates a manager with the default configuration.
// A store, an authenticator and at least one health check are required.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	return NewManagerFromConfig(DefaultConfig(), opts...)
}

// NewManagerFromConfig creates a manager from cfg, typically loaded with config.Load.
func NewManagerFromConfig(cfg Config, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		codec:  JSONCodec{},
		logger: slog.Default(),
		config: cfg,
	}
	for _, opt := range opts {
		opt(m)
	}

	switch {
	case m.store == nil:
		return nil, ErrStoreRequired
	case m.auth == nil:
		return nil, ErrAuthenticatorRequired
	case len(m.checks) == 0:
		return nil, ErrHealthcheckRequired
	}
	if err := m.config.validate(); err != nil {
		return nil, err
	}

	m.probe = healthcheck.New(m.checks,
		healthcheck.WithTimeout(m.config.DBTimeout),
		healthcheck.WithLogger(m.logger),
	)
	m.logger = m.logger.With(logger.Component("session"))

	// Login gets one long attempt per try; store and database calls get short ones.
	m.loginPolicy = resilience.Policy{
		Name:     "login",
		Attempts: m.config.LoginAttempts,
		Backoff:  m.config.LoginBackoff,
		Timeout:  m.config.LoginTimeout,
		Logger:   m.logger,
	}
	m.storePolicy = resilience.Policy{
		Name:     "store",
		Attempts: m.config.StoreAttempts,
		Backoff:  m.config.StoreBackoff,
		Timeout:  m.config.StoreTimeout,
		Logger:   m.logger,
	}
	// The probe enforces DBTimeout itself.
	m.dbPolicy = resilience.Policy{
		Name:     "database",
		Attempts: m.config.DBAttempts,
		Backoff:  m.config.DBBackoff,
		Logger:   m.logger,
	}

	probePolicy := m.dbPolicy
	probePolicy.Timeout = m.config.DBTimeout
	m.logger.Debug("session manager ready",
		logger.Group("worst_case",
			slog.Duration("login", m.loginPolicy.WorstCase()),
			slog.Duration("store", m.storePolicy.WorstCase()),
			slog.Duration("database", probePolicy.WorstCase()),
		),
	)
	return m, nil
}

// Config returns the configuration the manager runs with.
func (m *Manager) Config() Config {
	return m.config
}

// InitSession makes sure a session exists in the store for userKey.
// It checks the database first and fails with ErrDatabaseUnavailable, without
// attempting a login, when the probe fails on every attempt. If no session is
// stored it logs in via NewSession.
func (m *Manager) InitSession(ctx context.Context, userKey string) error {
	if userKey == "" {
		return ErrMissingUserKey
	}
	log := m.logger.With(logger.UserKey(userKey), logger.Action("init"))

	if err := m.dbPolicy.Run(ctx, m.probe.Probe); err != nil {
		log.ErrorContext(ctx, "database unavailable", outcome(err)...)
		return wrap(ctx, ErrDatabaseUnavailable, err)
	}

	_, found, err := m.load(ctx, userKey)
	if err != nil {
		log.ErrorContext(ctx, "failed to look up stored session", outcome(err)...)
		return err
	}
	if found {
		return nil
	}

	_, err = m.NewSession(ctx, userKey)
	return err
}

// NewSession logs in upstream and overwrites the stored session for userKey.
// It fails with ErrLoginFailed when every login attempt fails, and with
// ErrStoreIO when the new session cannot be stored.
func (m *Manager) NewSession(ctx context.Context, userKey string) (Session, error) {
	if userKey == "" {
		return Session{}, ErrMissingUserKey
	}
	log := m.logger.With(logger.UserKey(userKey), logger.Action("login"))
	start := time.Now()

	sess, err := resilience.Do(ctx, m.loginPolicy, func(ctx context.Context) (Session, error) {
		return m.auth.Login(ctx, userKey)
	})
	if err != nil {
		log.ErrorContext(ctx, "upstream login failed", outcome(err)...)
		return Session{}, wrap(ctx, ErrLoginFailed, err)
	}

	sess = sess.Clone()
	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}

	if err := m.SaveSession(ctx, userKey, sess); err != nil {
		return Session{}, err
	}

	log.InfoContext(ctx, "upstream session created",
		logger.Event("session_created"),
		logger.SessionID(sess.ID),
		logger.Count("cookies", len(sess.cookies)),
		logger.Elapsed(start),
	)
	return sess, nil
}

// GetSession returns the stored session for userKey. A missing, incomplete or
// unreadable record is replaced through NewSession, so the only failures are
// those of NewSession and of reading the store itself.
func (m *Manager) GetSession(ctx context.Context, userKey string) (Session, error) {
	if userKey == "" {
		return Session{}, ErrMissingUserKey
	}
	log := m.logger.With(logger.UserKey(userKey), logger.Action("get"))

	data, found, err := m.load(ctx, userKey)
	if err != nil {
		log.ErrorContext(ctx, "failed to read stored session", outcome(err)...)
		return Session{}, err
	}

	if found {
		sess, err := m.decode(data)
		if err == nil {
			return sess, nil
		}
		log.WarnContext(ctx, "stored session unusable, logging in again",
			logger.Event("session_regenerated"),
			logger.Error(err),
		)
	}

	return m.NewSession(ctx, userKey)
}

// SaveSession encodes sess and overwrites the stored session for userKey.
// Saving the same session twice stores the same payload.
func (m *Manager) SaveSession(ctx context.Context, userKey string, sess Session) error {
	if userKey == "" {
		return ErrMissingUserKey
	}

	rec, err := m.codec.Encode(sess)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	data, err := MarshalRecord(rec)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}

	err = m.storePolicy.Run(ctx, func(ctx context.Context) error {
		return m.store.Set(ctx, userKey, data)
	})
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to store session",
			append([]any{logger.UserKey(userKey), logger.Action("save")}, outcome(err)...)...,
		)
		return wrap(ctx, ErrStoreIO, err)
	}
	return nil
}

type loaded struct {
	data  []byte
	found bool
}

func (m *Manager) load(ctx context.Context, userKey string) ([]byte, bool, error) {
	res, err := resilience.Do(ctx, m.storePolicy, func(ctx context.Context) (loaded, error) {
		data, found, err := m.store.Get(ctx, userKey)
		return loaded{data: data, found: found}, err
	})
	if err != nil {
		return nil, false, wrap(ctx, ErrStoreIO, err)
	}
	return res.data, res.found, nil
}

func (m *Manager) decode(data []byte) (Session, error) {
	rec, err := UnmarshalRecord(data)
	if err != nil {
		return Session{}, err
	}
	sess, err := m.codec.Decode(rec)
	if err != nil {
		if !errors.Is(err, ErrDecode) {
			err = errors.Join(ErrDecode, err)
		}
		return Session{}, err
	}
	return sess, nil
}

// outcome describes how a resilience policy gave up on an operation.
func outcome(err error) []any {
	var exhausted *resilience.ExhaustedError
	switch {
	case errors.As(err, &exhausted):
		return []any{logger.Result("exhausted"), logger.RetryCount(exhausted.Attempts), logger.Error(err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return []any{logger.Result("cancelled"), logger.Error(err)}
	default:
		return []any{logger.Result("failed"), logger.Error(err)}
	}
}

// wrap tags err with kind unless the caller gave up, in which case the
// context error is returned as is.
func wrap(ctx context.Context, kind, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return errors.Join(kind, err)
}
