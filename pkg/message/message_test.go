package message_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/message"
	"github.com/translatekit/translatekit/pkg/source"
	"github.com/translatekit/translatekit/pkg/translate"
)

func newTranslator(t *testing.T, data map[string]map[string]map[string]string) *translate.Translator {
	t.Helper()
	translator, err := translate.New(source.NewMap(data), translate.WithFallbacks("en"))
	require.NoError(t, err)
	return translator
}

func TestMessageRequiresPattern(t *testing.T) {
	_, err := message.New("", nil)
	assert.ErrorIs(t, err, message.ErrEmptyMessage)
}

func TestMessageRender(t *testing.T) {
	m, err := message.New("Hello {name}!", map[string]any{"name": "Ann"})
	require.NoError(t, err)

	assert.Equal(t, "Hello Ann!", m.Render())
}

func TestMessageRenderIdempotent(t *testing.T) {
	m, err := message.New("{count, plural, one{# item} other{# items}}",
		map[string]any{"count": 2})
	require.NoError(t, err)

	first := m.Render()
	second := m.Render()
	assert.Equal(t, "2 items", first)
	assert.Equal(t, first, second)
}

func TestMessageRenderMalformedPattern(t *testing.T) {
	m, err := message.New("Hello {name", map[string]any{"name": "Ann"})
	require.NoError(t, err)

	// An unparseable pattern degrades to the raw pattern, never panics or
	// errors.
	assert.Equal(t, "Hello {name", m.Render())
}

func TestMessagePatternDuality(t *testing.T) {
	m, err := message.New("welcome", map[string]any{"name": "Ann"})
	require.NoError(t, err)

	// Standalone, "welcome" is a literal ICU pattern with no placeholders.
	assert.Equal(t, "welcome", m.Render())

	// With a translator, the same string is a catalog lookup id.
	translator := newTranslator(t, map[string]map[string]map[string]string{
		"en": {"messages": {"welcome": "Welcome {name}!"}},
	})
	out, err := m.Translate(context.Background(), translator, "en")
	require.NoError(t, err)
	assert.Equal(t, "Welcome Ann!", out)
}

func TestMessageTranslateUsesDomainAndDefaultLocale(t *testing.T) {
	translator := newTranslator(t, map[string]map[string]map[string]string{
		"es": {"errors": {"err.required": "Falta el campo {field}"}},
	})

	m, err := message.New("err.required", map[string]any{"field": "email"},
		message.WithDomain("errors"), message.WithLocale("es"))
	require.NoError(t, err)

	out, err := m.Translate(context.Background(), translator, "")
	require.NoError(t, err)
	assert.Equal(t, "Falta el campo email", out)
}

func TestMessageImmutability(t *testing.T) {
	params := map[string]any{"name": "Ann"}
	m, err := message.New("Hello {name}!", params)
	require.NoError(t, err)

	// Mutating the caller's map after construction changes nothing.
	params["name"] = "Bob"
	assert.Equal(t, "Hello Ann!", m.Render())

	// Params returns a copy, so mutating it changes nothing either.
	m.Params()["name"] = "Eve"
	assert.Equal(t, "Hello Ann!", m.Render())
}
