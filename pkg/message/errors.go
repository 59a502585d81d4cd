package message

import "errors"

var (
	// ErrEmptyMessage indicates a message or carrier was constructed without
	// a pattern.
	ErrEmptyMessage = errors.New("message pattern is empty")

	// ErrInvalidPattern indicates a carrier pattern of an unsupported type;
	// only strings and *Message values are accepted.
	ErrInvalidPattern = errors.New("message pattern must be a string or *Message")
)
