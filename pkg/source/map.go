package source

import (
	"context"
	"maps"
	"sort"

	"github.com/translatekit/translatekit/pkg/translate"
)

// Map is an in-memory Source backed by a locale -> domain -> key -> pattern
// map. It is the natural choice for tests and for small embedded catalogs
// assembled in code.
type Map struct {
	data map[string]map[string]map[string]string
}

var _ translate.Source = (*Map)(nil)

// NewMap builds a Map source. The input is deep-copied, so the caller's map
// can be reused or mutated freely afterwards.
func NewMap(data map[string]map[string]map[string]string) *Map {
	out := make(map[string]map[string]map[string]string, len(data))
	for locale, domains := range data {
		out[locale] = make(map[string]map[string]string, len(domains))
		for domain, catalog := range domains {
			out[locale][domain] = maps.Clone(catalog)
		}
	}
	return &Map{data: out}
}

// Messages returns the catalog for the (locale, domain) pair, or an empty
// map when no data exists for it.
func (m *Map) Messages(_ context.Context, locale, domain string) (map[string]string, error) {
	catalog, ok := m.data[locale][domain]
	if !ok {
		return map[string]string{}, nil
	}
	return maps.Clone(catalog), nil
}

// Locales returns the sorted locales that have any data for the domain.
func (m *Map) Locales(_ context.Context, domain string) ([]string, error) {
	var out []string
	for locale, domains := range m.data {
		if len(domains[domain]) > 0 {
			out = append(out, locale)
		}
	}
	sort.Strings(out)
	return out, nil
}
