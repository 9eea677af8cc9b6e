package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuskit/pkg/config"
)

type testConfig struct {
	Name    string   `env:"TEST_NAME" envDefault:"fallback"`
	Count   int      `env:"TEST_COUNT" envDefault:"3"`
	Enabled bool     `env:"TEST_ENABLED" envDefault:"false"`
	Words   []string `env:"TEST_WORDS" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Run("values from environment", func(t *testing.T) {
		t.Setenv("TEST_NAME", "from-env")
		t.Setenv("TEST_COUNT", "42")
		t.Setenv("TEST_ENABLED", "true")
		t.Setenv("TEST_WORDS", "alpha,beta")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 42, cfg.Count)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, []string{"alpha", "beta"}, cfg.Words)
	})

	t.Run("defaults apply", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.False(t, cfg.Enabled)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_COUNT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_COUNT", "boom")

		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
