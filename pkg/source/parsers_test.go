package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/source"
)

func TestJSONParser(t *testing.T) {
	p := source.NewJSONParser()

	content := []byte(`{
		"greet": "Hi {name}",
		"err": {
			"required": "The {field} field is required",
			"auth": {
				"denied": "Access denied"
			}
		}
	}`)

	catalog, err := p.Parse(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"greet":           "Hi {name}",
		"err.required":    "The {field} field is required",
		"err.auth.denied": "Access denied",
	}, catalog)
}

func TestJSONParserInvalidContent(t *testing.T) {
	p := source.NewJSONParser()

	_, err := p.Parse(context.Background(), []byte(`{not json`))
	assert.ErrorIs(t, err, source.ErrFailedToParseJSON)
}

func TestJSONParserSupports(t *testing.T) {
	p := source.NewJSONParser()

	assert.True(t, p.Supports("json"))
	assert.True(t, p.Supports(".json"))
	assert.True(t, p.Supports("JSON"))
	assert.False(t, p.Supports("yaml"))
}

func TestYAMLParser(t *testing.T) {
	p := source.NewYAMLParser()

	content := []byte(`
greet: "Hi {name}"
err:
  required: "The {field} field is required"
items: "{count, plural, one{# item} other{# items}}"
`)

	catalog, err := p.Parse(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"greet":        "Hi {name}",
		"err.required": "The {field} field is required",
		"items":        "{count, plural, one{# item} other{# items}}",
	}, catalog)
}

func TestYAMLParserInvalidContent(t *testing.T) {
	p := source.NewYAMLParser()

	_, err := p.Parse(context.Background(), []byte("greet: [unclosed"))
	assert.ErrorIs(t, err, source.ErrFailedToParseYAML)
}

func TestYAMLParserSupports(t *testing.T) {
	p := source.NewYAMLParser()

	assert.True(t, p.Supports("yaml"))
	assert.True(t, p.Supports("yml"))
	assert.True(t, p.Supports(".YML"))
	assert.False(t, p.Supports("json"))
}

func TestParserCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.NewJSONParser().Parse(ctx, []byte(`{}`))
	assert.ErrorIs(t, err, source.ErrParsingCancelled)

	_, err = source.NewYAMLParser().Parse(ctx, []byte(`greet: Hi`))
	assert.ErrorIs(t, err, source.ErrParsingCancelled)
}
