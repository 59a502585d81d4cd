package pgsource

import "errors"

var (
	// ErrInvalidConnectionString indicates the connection string could not
	// be parsed.
	ErrInvalidConnectionString = errors.New("invalid postgres connection string")

	// ErrDatabaseNotReady indicates the database did not answer a ping
	// within the configured retry budget.
	ErrDatabaseNotReady = errors.New("postgres database is not ready")

	// ErrNilQuerier indicates a Source was constructed without a database
	// handle.
	ErrNilQuerier = errors.New("postgres querier is nil")

	// ErrQueryFailed wraps failures while reading catalog rows.
	ErrQueryFailed = errors.New("failed to query translations")
)
