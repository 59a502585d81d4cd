package translate

// Config holds translator settings loadable from the environment with
// the config package.
type Config struct {
	Locale    string   `env:"TRANSLATE_LOCALE" envDefault:"en"`                // Locale is the default locale for lookups without an explicit one.
	Fallbacks []string `env:"TRANSLATE_FALLBACK_LOCALES" envDefault:"en"`      // Fallbacks is the ordered fallback locale list, comma separated.
	Domain    string   `env:"TRANSLATE_DOMAIN" envDefault:"messages"`          // Domain is informational; Translate still accepts a per-call domain.
	LogMisses bool     `env:"TRANSLATE_LOG_MISSES" envDefault:"false"`         // LogMisses enables logging of ids missing from every candidate locale.
}

// NewFromConfig creates a Translator from source configured by cfg.
// Additional options are applied after the configuration and may override it.
func NewFromConfig(source Source, cfg Config, opts ...Option) (*Translator, error) {
	base := []Option{
		WithDefaultLocale(cfg.Locale),
		WithFallbacks(cfg.Fallbacks...),
		WithMissingLogging(cfg.LogMisses),
	}
	return New(source, append(base, opts...)...)
}
