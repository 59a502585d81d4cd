package pgsource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/translatekit/translatekit/pkg/translate"
)

// defaultTable is the catalog table used when none is configured.
const defaultTable = "translations"

// Querier is the narrow database surface the source needs. It is satisfied
// by *pgxpool.Pool, *pgx.Conn and pgx.Tx, which also makes the source easy
// to run inside an existing transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Source reads message catalogs from a PostgreSQL table with the shape
//
//	CREATE TABLE translations (
//	    locale  text NOT NULL,
//	    domain  text NOT NULL,
//	    key     text NOT NULL,
//	    pattern text NOT NULL,
//	    PRIMARY KEY (locale, domain, key)
//	);
//
// Each lookup issues one query for the (locale, domain) pair; an empty
// result set is an empty catalog, not an error.
type Source struct {
	db    Querier
	table string
}

var _ translate.Source = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithTable overrides the default "translations" table name.
func WithTable(table string) Option {
	return func(s *Source) {
		if table != "" {
			s.table = table
		}
	}
}

// New creates a Source reading through db.
func New(db Querier, opts ...Option) (*Source, error) {
	if db == nil {
		return nil, ErrNilQuerier
	}

	s := &Source{db: db, table: defaultTable}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Messages returns the catalog rows for (locale, domain).
func (s *Source) Messages(ctx context.Context, locale, domain string) (map[string]string, error) {
	query := fmt.Sprintf(
		"SELECT key, pattern FROM %s WHERE locale = $1 AND domain = $2",
		pgx.Identifier{s.table}.Sanitize(),
	)

	rows, err := s.db.Query(ctx, query, locale, domain)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	catalog := map[string]string{}
	for rows.Next() {
		var key, pattern string
		if err := rows.Scan(&key, &pattern); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		catalog[key] = pattern
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return catalog, nil
}

// Locales returns the distinct locales present for domain, sorted by the
// database.
func (s *Source) Locales(ctx context.Context, domain string) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT DISTINCT locale FROM %s WHERE domain = $1 ORDER BY locale",
		pgx.Identifier{s.table}.Sanitize(),
	)

	rows, err := s.db.Query(ctx, query, domain)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var locale string
		if err := rows.Scan(&locale); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		out = append(out, locale)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return out, nil
}
