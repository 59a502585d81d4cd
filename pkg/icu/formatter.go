package icu

import (
	"errors"
	"sync"

	"github.com/gotnospirit/messageformat"
	"golang.org/x/text/language"
)

// Formatter renders ICU MessageFormat patterns for a given locale.
// It wraps the messageformat engine and keeps one parser per culture,
// since parser construction loads the culture's plural rules.
//
// The zero value is not usable; create instances with New.
type Formatter struct {
	mu      sync.RWMutex
	parsers map[string]*messageformat.Parser
}

// New creates a Formatter with an empty parser cache.
func New() *Formatter {
	return &Formatter{
		parsers: make(map[string]*messageformat.Parser),
	}
}

// Format renders pattern with the given parameters using the plural and
// select rules of locale.
//
// A malformed pattern returns ErrMalformedPattern; a pattern that parses but
// cannot produce output for the supplied parameters returns ErrFormatFailed.
// Callers that need the graceful-degradation contract must catch either error
// and fall back to the raw pattern themselves.
func (f *Formatter) Format(locale, pattern string, params map[string]any) (string, error) {
	parser := f.parserFor(locale)

	msg, err := parser.Parse(pattern)
	if err != nil {
		return "", errors.Join(ErrMalformedPattern, err)
	}

	out, err := msg.FormatMap(params)
	if err != nil {
		return "", errors.Join(ErrFormatFailed, err)
	}
	return out, nil
}

// parserFor returns the cached parser for the locale's base language,
// creating it on first use. Unknown languages fall back to the engine's
// default (English) plural rules rather than failing, so formatting for an
// unsupported locale still substitutes parameters.
func (f *Formatter) parserFor(locale string) *messageformat.Parser {
	culture := baseLanguage(locale)

	f.mu.RLock()
	parser, ok := f.parsers[culture]
	f.mu.RUnlock()
	if ok {
		return parser
	}

	parser, err := messageformat.NewWithCulture(culture)
	if err != nil {
		parser, _ = messageformat.New()
	}

	f.mu.Lock()
	f.parsers[culture] = parser
	f.mu.Unlock()
	return parser
}

// baseLanguage reduces a locale identifier to its base language code,
// e.g. "pt-BR" and "pt_BR" both become "pt". Unparseable input maps to "en".
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
