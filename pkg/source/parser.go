package source

import (
	"context"
	"fmt"
	"strings"
)

// Parser turns the raw content of one catalog file into a flat
// key-to-pattern map. Nested structures are flattened with dot-joined keys,
// so {"err": {"required": "..."}} yields "err.required".
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// Supports reports whether the parser handles files with the given
	// extension, with or without a leading dot.
	Supports(ext string) bool
}

// flatten converts a decoded document into a flat catalog. Scalar leaves are
// stringified; map values recurse with dot-joined keys. yaml.v3 decodes
// nested maps as map[string]any, so no map[any]any handling is needed.
func flatten(prefix string, value any, out map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			childKey := key
			if prefix != "" {
				childKey = prefix + "." + key
			}
			flatten(childKey, child, out)
		}
	case nil:
		// Explicit nulls carry no pattern; skip them.
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
