package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/config"
)

type testConfig struct {
	Locale    string   `env:"TEST_TRANSLATE_LOCALE" envDefault:"en"`
	Fallbacks []string `env:"TEST_TRANSLATE_FALLBACKS" envDefault:"en"`
	LogMisses bool     `env:"TEST_TRANSLATE_LOG_MISSES" envDefault:"false"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, []string{"en"}, cfg.Fallbacks)
	assert.False(t, cfg.LogMisses)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_TRANSLATE_LOCALE", "es")
	t.Setenv("TEST_TRANSLATE_FALLBACKS", "es,en")
	t.Setenv("TEST_TRANSLATE_LOG_MISSES", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, []string{"es", "en"}, cfg.Fallbacks)
	assert.True(t, cfg.LogMisses)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
