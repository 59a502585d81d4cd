package translate

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/translatekit/translatekit/pkg/icu"
)

// Formatter renders a message pattern for a locale. It is satisfied by
// *icu.Formatter, which is also the default.
type Formatter interface {
	Format(locale, pattern string, params map[string]any) (string, error)
}

// Translator resolves message ids to locale-specific text. It looks the id
// up across a locale fallback chain against its Source, renders catalog hits
// through the configured Formatter, and degrades to plain-text substitution
// of the id itself when no catalog contains it.
//
// A Translator is read-only during Translate. SetLocale mutates the current
// locale and must not be called concurrently with Translate; callers sharing
// a Translator across goroutines either avoid SetLocale or guard it with
// their own synchronization. WithLocale returns a derived copy and is the
// safe alternative for per-request locales.
type Translator struct {
	source     Source
	formatter  Formatter
	locale     string
	fallbacks  []string
	logger     *slog.Logger
	missingLog bool
}

// New creates a Translator reading from source. The default configuration
// uses locale "en" with a single "en" fallback and an icu.Formatter.
func New(source Source, opts ...Option) (*Translator, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		source:    source,
		formatter: icu.New(),
		locale:    DefaultLocale,
		fallbacks: []string{DefaultLocale},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Locale returns the translator's current locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Fallbacks returns a copy of the configured fallback locale list.
func (t *Translator) Fallbacks() []string {
	out := make([]string, len(t.fallbacks))
	copy(out, t.fallbacks)
	return out
}

// SetLocale changes the current locale used when Translate is called without
// an explicit one. See the type documentation for the concurrency contract.
func (t *Translator) SetLocale(locale string) {
	if locale != "" {
		t.locale = locale
	}
}

// WithLocale returns a copy of the translator whose current locale is locale.
// The copy shares the source and formatter with the original.
func (t *Translator) WithLocale(locale string) *Translator {
	clone := *t
	clone.fallbacks = t.Fallbacks()
	if locale != "" {
		clone.locale = locale
	}
	return &clone
}

// Translate resolves id for the given locale and renders it with params.
// An empty domain means DefaultDomain; an empty locale means the
// translator's current locale.
//
// Resolution walks the candidate chain (requested locale, its parent tags,
// then the configured fallbacks, duplicates skipped) and stops at the first
// catalog containing id. A hit is rendered through the Formatter with the
// matched candidate's locale; if rendering fails the matched pattern is
// returned unrendered. A miss on every candidate degrades to simple
// substitution of params into the id itself, never an error.
//
// Parameters keyed in "%name%" form select the simple substitution path even
// on a catalog hit (see Substitute), which lets legacy "%count%"-style
// plural messages live in the same catalog as ICU patterns.
//
// The only error returned is a source-level failure, wrapped around
// ErrSourceFailure.
func (t *Translator) Translate(ctx context.Context, id string, params map[string]any, domain, locale string) (string, error) {
	if domain == "" {
		domain = DefaultDomain
	}
	if locale == "" {
		locale = t.locale
	}

	for _, candidate := range t.chain(locale) {
		catalog, err := t.source.Messages(ctx, candidate, domain)
		if err != nil {
			return "", errors.Join(ErrSourceFailure, err)
		}

		pattern, ok := catalog[id]
		if !ok {
			continue
		}
		return t.render(candidate, pattern, params), nil
	}

	if t.missingLog {
		t.logger.WarnContext(ctx, "message id not found in any candidate locale",
			"id", id, "domain", domain, "locale", locale)
	}
	return Substitute(id, params), nil
}

// AvailableLocales returns the locales the source has any data for in
// domain. An empty domain means DefaultDomain.
func (t *Translator) AvailableLocales(ctx context.Context, domain string) ([]string, error) {
	if domain == "" {
		domain = DefaultDomain
	}
	locales, err := t.source.Locales(ctx, domain)
	if err != nil {
		return nil, errors.Join(ErrSourceFailure, err)
	}
	return locales, nil
}

// render applies the formatting policy to a catalog hit: simple substitution
// when a "%name%"-keyed parameter is present, ICU formatting otherwise, and
// the raw pattern when the formatter fails.
func (t *Translator) render(locale, pattern string, params map[string]any) string {
	if hasPercentParams(params) {
		return Substitute(pattern, params)
	}

	out, err := t.formatter.Format(locale, pattern, params)
	if err != nil {
		t.logger.Debug("falling back to raw pattern",
			"locale", locale, "pattern", pattern, "error", err)
		return pattern
	}
	return out
}
