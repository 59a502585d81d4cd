package redissource

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/translatekit/translatekit/pkg/translate"
)

// defaultKeyPrefix is the first segment of catalog keys when no prefix is
// configured.
const defaultKeyPrefix = "translations"

// Source reads message catalogs from Redis. Each (locale, domain) pair is
// one hash keyed "<prefix>:<domain>:<locale>" whose fields map message keys
// to patterns:
//
//	HSET translations:messages:en greet "Hi {name}"
//
// Every lookup fetches the hash fresh; Redis is fast enough that the
// translate.Source no-caching contract costs a single round trip.
type Source struct {
	client redis.UniversalClient
	prefix string
}

var _ translate.Source = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithKeyPrefix overrides the default "translations" key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Source) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a Source reading through client.
func New(client redis.UniversalClient, opts ...Option) (*Source, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	s := &Source{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Messages returns the catalog hash for (locale, domain). A missing hash is
// an empty catalog, not an error.
func (s *Source) Messages(ctx context.Context, locale, domain string) (map[string]string, error) {
	catalog, err := s.client.HGetAll(ctx, s.key(domain, locale)).Result()
	if err != nil {
		return nil, errors.Join(ErrRedisUnavailable, err)
	}
	return catalog, nil
}

// Locales scans for catalog hashes under the domain and returns their
// locales sorted.
func (s *Source) Locales(ctx context.Context, domain string) ([]string, error) {
	pattern := s.key(domain, "*")
	trim := s.key(domain, "")

	seen := map[string]struct{}{}
	var out []string

	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		locale := strings.TrimPrefix(iter.Val(), trim)
		if locale == "" || strings.Contains(locale, ":") {
			continue
		}
		if _, dup := seen[locale]; dup {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Join(ErrRedisUnavailable, err)
	}

	sort.Strings(out)
	return out, nil
}

func (s *Source) key(domain, locale string) string {
	return s.prefix + ":" + domain + ":" + locale
}
