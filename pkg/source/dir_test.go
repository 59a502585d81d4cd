package source_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translatekit/translatekit/pkg/source"
)

func TestNewDirValidation(t *testing.T) {
	_, err := source.NewDir("")
	assert.ErrorIs(t, err, source.ErrEmptyPath)
}

func TestDirMessages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messages.en.yaml", "greet: Hi {name}\n")
	writeFile(t, dir, "messages.es.json", `{"greet": "Hola {name}"}`)
	writeFile(t, dir, "errors.en.yaml", "err:\n  required: Required\n")
	writeFile(t, dir, "README.md", "not a catalog")

	src, err := source.NewDir(dir)
	require.NoError(t, err)

	catalog, err := src.Messages(context.Background(), "en", "messages")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greet": "Hi {name}"}, catalog)

	catalog, err = src.Messages(context.Background(), "es", "messages")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greet": "Hola {name}"}, catalog)

	catalog, err = src.Messages(context.Background(), "en", "errors")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"err.required": "Required"}, catalog)

	// Absent pair: empty catalog, not an error.
	catalog, err = src.Messages(context.Background(), "de", "messages")
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestDirMessagesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messages.en.json", "{broken")

	src, err := source.NewDir(dir)
	require.NoError(t, err)

	_, err = src.Messages(context.Background(), "en", "messages")
	assert.ErrorIs(t, err, source.ErrFailedToParseJSON)
}

func TestDirMissingDirectory(t *testing.T) {
	src, err := source.NewDir("/definitely/not/here")
	require.NoError(t, err)

	_, err = src.Messages(context.Background(), "en", "messages")
	assert.ErrorIs(t, err, source.ErrFailedToReadDir)
}

func TestDirLocales(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messages.en.yaml", "greet: Hi\n")
	writeFile(t, dir, "messages.es.yaml", "greet: Hola\n")
	writeFile(t, dir, "messages.pt-BR.json", `{"greet": "Oi"}`)
	writeFile(t, dir, "errors.fr.yaml", "oops: Oups\n")

	src, err := source.NewDir(dir)
	require.NoError(t, err)

	locales, err := src.Locales(context.Background(), "messages")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es", "pt-BR"}, locales)
}

func TestFSMessages(t *testing.T) {
	fsys := fstest.MapFS{
		"translations/messages.en.yaml": {Data: []byte("greet: Hi {name}\n")},
		"translations/errors.en.json":   {Data: []byte(`{"oops": "Oops"}`)},
	}

	src, err := source.NewFS(fsys, "translations")
	require.NoError(t, err)

	catalog, err := src.Messages(context.Background(), "en", "messages")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greet": "Hi {name}"}, catalog)

	locales, err := src.Locales(context.Background(), "errors")
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, locales)
}

func TestNewFSValidation(t *testing.T) {
	_, err := source.NewFS(nil, "translations")
	assert.ErrorIs(t, err, source.ErrNilFS)
}
