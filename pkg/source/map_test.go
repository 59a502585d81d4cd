package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/source"
)

func TestMapMessages(t *testing.T) {
	src := source.NewMap(map[string]map[string]map[string]string{
		"en": {
			"messages": {"greet": "Hi {name}"},
			"errors":   {"err.required": "The {field} field is required"},
		},
		"es": {
			"messages": {"greet": "Hola {name}"},
		},
	})

	catalog, err := src.Messages(context.Background(), "en", "messages")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greet": "Hi {name}"}, catalog)
}

func TestMapMissingPairIsEmptyCatalog(t *testing.T) {
	src := source.NewMap(map[string]map[string]map[string]string{
		"en": {"messages": {"greet": "Hi"}},
	})

	tests := []struct {
		name   string
		locale string
		domain string
	}{
		{"missing locale", "fr", "messages"},
		{"missing domain", "en", "errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := src.Messages(context.Background(), tt.locale, tt.domain)
			require.NoError(t, err)
			assert.NotNil(t, catalog)
			assert.Empty(t, catalog)
		})
	}
}

func TestMapLocales(t *testing.T) {
	src := source.NewMap(map[string]map[string]map[string]string{
		"fr": {"messages": {"greet": "Salut"}},
		"en": {"messages": {"greet": "Hi"}, "errors": {"oops": "Oops"}},
		"es": {"errors": {"oops": "Uy"}},
	})

	locales, err := src.Locales(context.Background(), "messages")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, locales)

	locales, err = src.Locales(context.Background(), "errors")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, locales)
}

func TestMapCopiesInput(t *testing.T) {
	data := map[string]map[string]map[string]string{
		"en": {"messages": {"greet": "Hi"}},
	}
	src := source.NewMap(data)

	// Mutations of the caller's map after construction are invisible.
	data["en"]["messages"]["greet"] = "changed"

	catalog, err := src.Messages(context.Background(), "en", "messages")
	require.NoError(t, err)
	assert.Equal(t, "Hi", catalog["greet"])
}
