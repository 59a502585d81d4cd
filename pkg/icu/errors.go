package icu

import "errors"

var (
	// ErrMalformedPattern indicates the pattern is not valid ICU MessageFormat
	// syntax (unbalanced braces, a plural/select block without an "other"
	// branch, and so on).
	ErrMalformedPattern = errors.New("malformed ICU message pattern")

	// ErrFormatFailed indicates the pattern parsed but could not be rendered
	// with the supplied parameters.
	ErrFormatFailed = errors.New("failed to format ICU message")
)
