package source

import (
	"context"
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML catalog files.
type YAMLParser struct{}

// NewYAMLParser creates a YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content and flattens it into a key-to-pattern catalog.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	out := make(map[string]string, len(data))
	flatten("", data, out)
	return out, nil
}

// Supports reports whether ext names a YAML file.
func (p *YAMLParser) Supports(ext string) bool {
	ext = normalizeExt(ext)
	return ext == "yaml" || ext == "yml"
}
