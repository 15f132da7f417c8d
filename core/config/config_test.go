package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkeeper/core/config"
)

type loadOnceConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"default"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"3s"`
}

type requiredConfig struct {
	URL string `env:"CONFIG_TEST_REQUIRED_URL,required"`
}

type parseConfig struct {
	Attempts int `env:"CONFIG_TEST_ATTEMPTS" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "first")

	var cfg loadOnceConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)
	assert.Equal(t, 3*time.Second, cfg.Timeout)

	t.Setenv("CONFIG_TEST_NAME", "second")

	var again loadOnceConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name, "second load must come from cache")
}

func TestLoadRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() {
		var c requiredConfig
		config.MustLoad(&c)
	})
}

func TestLoadNil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, config.Load[loadOnceConfig](nil), config.ErrNilConfig)
	assert.ErrorIs(t, config.Parse[loadOnceConfig](nil), config.ErrNilConfig)
}

func TestParse(t *testing.T) {
	t.Setenv("CONFIG_TEST_ATTEMPTS", "5")

	var cfg parseConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, 5, cfg.Attempts)

	t.Setenv("CONFIG_TEST_ATTEMPTS", "7")
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, 7, cfg.Attempts)
}
