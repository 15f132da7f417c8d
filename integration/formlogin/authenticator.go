package formlogin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/dmitrymomot/sessionkeeper/core/logger"
	"github.com/dmitrymomot/sessionkeeper/core/session"
	"github.com/dmitrymomot/sessionkeeper/pkg/resilience"
)

// Ensure Authenticator implements session.Authenticator.
var _ session.Authenticator = (*Authenticator)(nil)

// CredentialsFunc resolves the upstream username and password for a user key.
type CredentialsFunc func(ctx context.Context, userKey string) (username, password string, err error)

// Authenticator logs in by posting a username/password form and collecting
// the cookies the upstream site sets.
type Authenticator struct {
	cfg         Config
	loginURL    *url.URL
	credentials CredentialsFunc
	transport   http.RoundTripper
	logger      *slog.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithCredentials resolves credentials per user instead of using the
// single account from Config.
func WithCredentials(fn CredentialsFunc) Option {
	return func(a *Authenticator) {
		if fn != nil {
			a.credentials = fn
		}
	}
}

// WithTransport sets the round tripper used for login requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(a *Authenticator) {
		if rt != nil {
			a.transport = rt
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates a form login authenticator.
func New(cfg Config, opts ...Option) (*Authenticator, error) {
	if cfg.LoginURL == "" || cfg.UsernameField == "" || cfg.PasswordField == "" {
		return nil, ErrInvalidConfig
	}
	u, err := url.Parse(cfg.LoginURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: bad login URL %q", ErrInvalidConfig, cfg.LoginURL)
	}

	a := &Authenticator{
		cfg:       cfg,
		loginURL:  u,
		transport: http.DefaultTransport,
		logger:    slog.Default(),
	}
	a.credentials = a.staticCredentials
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("formlogin"))
	return a, nil
}

// Login posts the login form for userKey and returns a session carrying every
// cookie set along the way, scoped as the site set it, and the configured user agent.
// Rejected credentials (401 or 403) are marked permanent; other failures may be retried.
func (a *Authenticator) Login(ctx context.Context, userKey string) (session.Session, error) {
	username, password, err := a.credentials(ctx, userKey)
	if err != nil {
		return session.Session{}, resilience.Permanent(errors.Join(ErrMissingCredentials, err))
	}
	if username == "" || password == "" {
		return session.Session{}, resilience.Permanent(ErrMissingCredentials)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return session.Session{}, err
	}
	recorder := &cookieRecorder{next: a.transport}
	client := &http.Client{Jar: jar, Transport: recorder}

	form := url.Values{}
	form.Set(a.cfg.UsernameField, username)
	form.Set(a.cfg.PasswordField, password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.loginURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return session.Session{}, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if a.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", a.cfg.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return session.Session{}, errors.Join(ErrRequestFailed, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return session.Session{}, resilience.Permanent(fmt.Errorf("%w: status %d", ErrInvalidCredentials, resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return session.Session{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	cookies := recorder.cookies(jar)
	if len(cookies) == 0 {
		return session.Session{}, ErrNoCookies
	}

	sess := session.New()
	for _, c := range cookies {
		sess.SetCookie(c)
	}
	if a.cfg.SuccessCookie != "" {
		if _, ok := sess.Cookie(a.cfg.SuccessCookie); !ok {
			return session.Session{}, fmt.Errorf("%w: %s", ErrLoginRejected, a.cfg.SuccessCookie)
		}
	}
	if a.cfg.UserAgent != "" {
		sess.SetHeader("User-Agent", a.cfg.UserAgent)
	}

	a.logger.DebugContext(ctx, "upstream login succeeded",
		logger.UserKey(userKey),
		logger.Count("cookies", len(cookies)),
	)
	return sess, nil
}

func (a *Authenticator) staticCredentials(context.Context, string) (string, string, error) {
	return a.cfg.Username, a.cfg.Password, nil
}
