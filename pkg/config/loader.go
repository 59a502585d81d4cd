package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv sync.Once

// Load populates the configuration struct from environment variables based
// on its `env` field tags. The default .env file, if present, is read once
// per process before the first parse.
//
// Example:
//
//	type Config struct {
//		Locale    string   `env:"TRANSLATE_LOCALE" envDefault:"en"`
//		Fallbacks []string `env:"TRANSLATE_FALLBACK_LOCALES" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	loadDotEnv.Do(func() {
		// The .env file is optional; missing is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Useful for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
