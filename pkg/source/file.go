package source

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/translatekit/translatekit/pkg/translate"
)

// File is a Source reading a single catalog file that covers exactly one
// (locale, domain) pair. Lookups for any other pair return an empty catalog.
// The file is re-read on every lookup; callers that need caching wrap the
// source themselves.
type File struct {
	parser Parser
	path   string
	locale string
	domain string
}

var _ translate.Source = (*File)(nil)

// NewFile creates a File source serving the given (locale, domain) pair
// from path.
func NewFile(parser Parser, path, locale, domain string) (*File, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if path == "" {
		return nil, ErrEmptyPath
	}
	if locale == "" {
		return nil, ErrEmptyLocale
	}
	if domain == "" {
		domain = translate.DefaultDomain
	}
	return &File{parser: parser, path: path, locale: locale, domain: domain}, nil
}

// Messages returns the file's catalog when (locale, domain) matches the
// pair the source was created for, and an empty catalog otherwise.
func (f *File) Messages(ctx context.Context, locale, domain string) (map[string]string, error) {
	if locale != f.locale || domain != f.domain {
		return map[string]string{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return f.parser.Parse(ctx, content)
}

// Locales returns the source's single locale when domain matches.
func (f *File) Locales(_ context.Context, domain string) ([]string, error) {
	if domain != f.domain {
		return nil, nil
	}
	return []string{f.locale}, nil
}

// splitName parses a "<domain>.<locale>.<ext>" catalog filename, e.g.
// "messages.en.yaml" or "app.errors.pt-BR.json" (the domain may itself
// contain dots). ok is false for names that don't follow the convention.
func splitName(name string) (domain, locale, ext string, ok bool) {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return "", "", "", false
	}

	ext = parts[len(parts)-1]
	locale = parts[len(parts)-2]
	domain = strings.Join(parts[:len(parts)-2], ".")
	if domain == "" || locale == "" || ext == "" {
		return "", "", "", false
	}
	return domain, locale, ext, true
}
