package source

import (
	"context"
	"errors"
	"io/fs"
	"path"

	"github.com/translatekit/translatekit/pkg/translate"
)

// FS is a Source reading "<domain>.<locale>.<ext>" catalog files from an
// fs.FS, typically an embed.FS so translations ship inside the binary:
//
//	//go:embed translations
//	var translations embed.FS
//
//	src, err := source.NewFS(translations, "translations")
type FS struct {
	fsys    fs.FS
	dir     string
	parsers []Parser
}

var _ translate.Source = (*FS)(nil)

// NewFS creates an FS source reading from dir inside fsys. Without explicit
// parsers it handles JSON and YAML files.
func NewFS(fsys fs.FS, dir string, parsers ...Parser) (*FS, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	if dir == "" {
		dir = "."
	}
	if len(parsers) == 0 {
		parsers = []Parser{NewJSONParser(), NewYAMLParser()}
	}
	return &FS{fsys: fsys, dir: dir, parsers: parsers}, nil
}

// Messages parses and merges every file in the directory covering
// (locale, domain); no match yields an empty catalog.
func (f *FS) Messages(ctx context.Context, locale, domain string) (map[string]string, error) {
	entries, err := fs.ReadDir(f.fsys, f.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	return readCatalog(ctx, fsFS{f.fsys, f.dir}, entries, f.parsers, locale, domain)
}

// Locales lists the locales that have at least one catalog file for domain.
func (f *FS) Locales(_ context.Context, domain string) ([]string, error) {
	entries, err := fs.ReadDir(f.fsys, f.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	return listLocales(entries, f.parsers, domain), nil
}

// fsFS adapts an fs.FS subdirectory to the readFileFS shape shared with Dir.
type fsFS struct {
	fsys fs.FS
	dir  string
}

func (f fsFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, path.Join(f.dir, name))
}
