package translate

import "context"

// DefaultDomain is the message namespace used when a caller does not name one.
const DefaultDomain = "messages"

// Source provides message catalogs to a Translator. Implementations read
// from memory, files, databases or remote services; the Translator never
// depends on a specific storage technology.
type Source interface {
	// Messages returns the full key-to-pattern catalog for one
	// (locale, domain) pair. When no data exists for the pair it must
	// return an empty (or nil) map, not an error; an error indicates a
	// source-level failure such as unreachable storage or corrupt data.
	Messages(ctx context.Context, locale, domain string) (map[string]string, error)

	// Locales enumerates the locales that have any data for the domain.
	Locales(ctx context.Context, domain string) ([]string, error)
}
