package source

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sort"

	"github.com/translatekit/translatekit/pkg/translate"
)

// Dir is a Source scanning a directory of catalog files named
// "<domain>.<locale>.<ext>". Files are read on demand, one (locale, domain)
// pair per lookup; several files for the same pair (say messages.en.yaml and
// messages.en.json) are merged, later files winning on key conflicts.
type Dir struct {
	path    string
	parsers []Parser
}

var _ translate.Source = (*Dir)(nil)

// NewDir creates a Dir source reading from path. Without explicit parsers it
// handles JSON and YAML files.
func NewDir(path string, parsers ...Parser) (*Dir, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if len(parsers) == 0 {
		parsers = []Parser{NewJSONParser(), NewYAMLParser()}
	}
	return &Dir{path: path, parsers: parsers}, nil
}

// Messages scans the directory for files covering (locale, domain), parses
// and merges them. No matching file yields an empty catalog; an unreadable
// directory or a file that fails to parse is a source failure.
func (d *Dir) Messages(ctx context.Context, locale, domain string) (map[string]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	return readCatalog(ctx, dirFS{d.path}, entries, d.parsers, locale, domain)
}

// Locales lists the locales that have at least one catalog file for domain.
func (d *Dir) Locales(_ context.Context, domain string) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	return listLocales(entries, d.parsers, domain), nil
}

// dirFS adapts a directory path to the readFileFS shape shared with FS.
type dirFS struct {
	path string
}

func (d dirFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.path, name))
}

type readFileFS interface {
	ReadFile(name string) ([]byte, error)
}

// readCatalog merges every entry matching (locale, domain) into one catalog.
func readCatalog(ctx context.Context, fsys readFileFS, entries []fs.DirEntry, parsers []Parser, locale, domain string) (map[string]string, error) {
	out := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileDomain, fileLocale, ext, ok := splitName(entry.Name())
		if !ok || fileDomain != domain || fileLocale != locale {
			continue
		}
		parser := parserFor(parsers, ext)
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		content, err := fsys.ReadFile(entry.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalog, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, err
		}
		maps.Copy(out, catalog)
	}
	return out, nil
}

// listLocales collects the locales of entries belonging to domain.
func listLocales(entries []fs.DirEntry, parsers []Parser, domain string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileDomain, locale, ext, ok := splitName(entry.Name())
		if !ok || fileDomain != domain || parserFor(parsers, ext) == nil {
			continue
		}
		if _, dup := seen[locale]; dup {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

func parserFor(parsers []Parser, ext string) Parser {
	for _, p := range parsers {
		if p.Supports(ext) {
			return p
		}
	}
	return nil
}
