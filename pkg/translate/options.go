package translate

import (
	"io"
	"log/slog"
)

// Option configures a Translator instance.
type Option func(*Translator)

// WithDefaultLocale sets the locale used when Translate is called without an
// explicit one.
func WithDefaultLocale(locale string) Option {
	return func(t *Translator) {
		if locale != "" {
			t.locale = locale
		}
	}
}

// WithFallbacks sets the ordered fallback locale list tried after the
// requested locale.
func WithFallbacks(locales ...string) Option {
	return func(t *Translator) {
		t.fallbacks = append([]string(nil), locales...)
	}
}

// WithFormatter replaces the default ICU formatter.
func WithFormatter(f Formatter) Option {
	return func(t *Translator) {
		if f != nil {
			t.formatter = f
		}
	}
}

// WithLogger provides a logger for the translator. If not specified, a
// discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging controls whether ids that miss every candidate locale
// are logged. Default is false to avoid excessive logging.
func WithMissingLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLog = enabled
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.missingLog = false
	}
}
