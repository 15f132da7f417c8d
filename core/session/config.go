package session

import "time"

// Config holds the resilience settings of the session manager.
type Config struct {
	// Login: one long attempt per try.
	LoginTimeout  time.Duration `env:"SESSION_LOGIN_TIMEOUT" envDefault:"90s"`
	LoginAttempts int           `env:"SESSION_LOGIN_ATTEMPTS" envDefault:"3"`
	LoginBackoff  time.Duration `env:"SESSION_LOGIN_BACKOFF" envDefault:"300ms"`

	// Store reads and writes: short attempts, retried.
	StoreTimeout  time.Duration `env:"SESSION_STORE_TIMEOUT" envDefault:"3s"`
	StoreAttempts int           `env:"SESSION_STORE_ATTEMPTS" envDefault:"3"`
	StoreBackoff  time.Duration `env:"SESSION_STORE_BACKOFF" envDefault:"300ms"`

	// Database probe: each attempt bounded by DBTimeout.
	DBTimeout  time.Duration `env:"SESSION_DB_TIMEOUT" envDefault:"3s"`
	DBAttempts int           `env:"SESSION_DB_ATTEMPTS" envDefault:"3"`
	DBBackoff  time.Duration `env:"SESSION_DB_BACKOFF" envDefault:"300ms"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LoginTimeout:  90 * time.Second,
		LoginAttempts: 3,
		LoginBackoff:  300 * time.Millisecond,
		StoreTimeout:  3 * time.Second,
		StoreAttempts: 3,
		StoreBackoff:  300 * time.Millisecond,
		DBTimeout:     3 * time.Second,
		DBAttempts:    3,
		DBBackoff:     300 * time.Millisecond,
	}
}

func (c Config) validate() error {
	if c.LoginAttempts < 1 || c.StoreAttempts < 1 || c.DBAttempts < 1 {
		return ErrInvalidConfig
	}
	for _, d := range []time.Duration{
		c.LoginTimeout, c.LoginBackoff,
		c.StoreTimeout, c.StoreBackoff,
		c.DBTimeout, c.DBBackoff,
	} {
		if d < 0 {
			return ErrInvalidConfig
		}
	}
	return nil
}

// Option is a functional option for configuring the session manager.
type Option func(*Config)

// WithLoginPolicy sets attempts, pause between attempts and per-attempt timeout of the upstream login.
func WithLoginPolicy(attempts int, backoff, timeout time.Duration) Option {
	return func(c *Config) {
		c.LoginAttempts = attempts
		c.LoginBackoff = backoff
		c.LoginTimeout = timeout
	}
}

// WithStorePolicy sets attempts, pause between attempts and per-attempt timeout of store operations.
func WithStorePolicy(attempts int, backoff, timeout time.Duration) Option {
	return func(c *Config) {
		c.StoreAttempts = attempts
		c.StoreBackoff = backoff
		c.StoreTimeout = timeout
	}
}

// WithDatabasePolicy sets attempts, pause between attempts and per-probe timeout of the database check.
func WithDatabasePolicy(attempts int, backoff, timeout time.Duration) Option {
	return func(c *Config) {
		c.DBAttempts = attempts
		c.DBBackoff = backoff
		c.DBTimeout = timeout
	}
}
