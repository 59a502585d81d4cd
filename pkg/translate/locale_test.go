package translate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/translatekit/translatekit/pkg/translate"
)

func TestMatchLocale(t *testing.T) {
	supported := []string{"en", "es", "fr"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"exact match", "es", "es"},
		{"quality order respected", "es;q=0.5, fr;q=0.9", "fr"},
		{"region matches base language", "en-US,en;q=0.9", "en"},
		{"no match falls back", "de", "de-fallback"},
		{"empty header falls back", "", "de-fallback"},
		{"garbage falls back", ";;;===", "de-fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate.MatchLocale(tt.header, supported, "de-fallback")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchLocaleNoSupported(t *testing.T) {
	assert.Equal(t, "en", translate.MatchLocale("fr", nil, "en"))
}

func TestMatchLocaleOversizedHeader(t *testing.T) {
	header := strings.Repeat("xx,", 4096) + "es"
	got := translate.MatchLocale(header, []string{"en", "es"}, "en")
	// The truncated header never reaches "es"; the point is that parsing
	// stays bounded and still returns a usable locale.
	assert.Contains(t, []string{"en", "es"}, got)
}
