package source

import (
	"context"
	"encoding/json"
	"errors"
)

// JSONParser parses JSON catalog files.
type JSONParser struct{}

// NewJSONParser creates a JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes content and flattens it into a key-to-pattern catalog.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	out := make(map[string]string, len(data))
	flatten("", data, out)
	return out, nil
}

// Supports reports whether ext names a JSON file.
func (p *JSONParser) Supports(ext string) bool {
	return normalizeExt(ext) == "json"
}
