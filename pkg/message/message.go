package message

import (
	"context"
	"maps"

	"github.com/translatekit/translatekit/pkg/icu"
)

// Formatter renders a pattern for a locale. Satisfied by *icu.Formatter.
type Formatter interface {
	Format(locale, pattern string, params map[string]any) (string, error)
}

// Translator resolves a message id for a locale. Satisfied by
// *translate.Translator.
type Translator interface {
	Translate(ctx context.Context, id string, params map[string]any, domain, locale string) (string, error)
}

// Message is an immutable renderable message: a pattern (or lookup id),
// its parameters, an optional domain and a default locale.
//
// The same stored string plays two roles. Render treats it as a literal ICU
// pattern and formats it directly; Translate treats it as a catalog lookup
// id and defers resolution to a Translator. This asymmetry is deliberate:
// text created where no translator is available stays readable as-is, and
// becomes a translation key the moment one shows up.
type Message struct {
	pattern   string
	params    map[string]any
	domain    string
	locale    string
	formatter Formatter
}

// New creates a Message. The pattern must not be empty. The parameter map is
// copied, so later mutation by the caller does not affect the message.
func New(pattern string, params map[string]any, opts ...Option) (*Message, error) {
	if pattern == "" {
		return nil, ErrEmptyMessage
	}

	m := &Message{
		pattern:   pattern,
		locale:    defaultLocale,
		formatter: icu.New(),
	}
	if len(params) > 0 {
		m.params = maps.Clone(params)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Pattern returns the message pattern (or lookup id).
func (m *Message) Pattern() string {
	return m.pattern
}

// Params returns a copy of the message parameters.
func (m *Message) Params() map[string]any {
	return maps.Clone(m.params)
}

// Domain returns the message domain, empty when none was set.
func (m *Message) Domain() string {
	return m.domain
}

// Locale returns the default locale used by Render.
func (m *Message) Locale() string {
	return m.locale
}

// Render formats the pattern with the message parameters for the default
// locale, without any translator involved. A pattern the formatter rejects
// is returned unchanged, so Render always produces readable text.
func (m *Message) Render() string {
	out, err := m.formatter.Format(m.locale, m.pattern, m.params)
	if err != nil {
		return m.pattern
	}
	return out
}

// Translate resolves the pattern as a lookup id through translator. An empty
// locale means the message's default locale. The error, if any, is the
// translator's source failure.
func (m *Message) Translate(ctx context.Context, translator Translator, locale string) (string, error) {
	if locale == "" {
		locale = m.locale
	}
	return translator.Translate(ctx, m.pattern, m.params, m.domain, locale)
}
