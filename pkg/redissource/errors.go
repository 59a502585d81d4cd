package redissource

import "errors"

var (
	// ErrInvalidConnectionURL indicates the Redis connection URL could not
	// be parsed.
	ErrInvalidConnectionURL = errors.New("invalid redis connection URL")

	// ErrRedisNotReady indicates the server did not answer a ping within the
	// configured retry budget.
	ErrRedisNotReady = errors.New("redis server is not ready")

	// ErrNilClient indicates a Source was constructed without a client.
	ErrNilClient = errors.New("redis client is nil")

	// ErrRedisUnavailable wraps command failures during catalog reads.
	ErrRedisUnavailable = errors.New("redis unavailable")
)
