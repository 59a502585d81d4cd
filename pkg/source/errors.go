package source

import "errors"

// Sentinel errors use descriptive messages while avoiding backing-store
// details; the underlying cause is always joined in.
var (
	// Construction
	ErrNilParser   = errors.New("catalog parser is nil")
	ErrNilFS       = errors.New("catalog filesystem is nil")
	ErrEmptyPath   = errors.New("catalog path is empty")
	ErrEmptyLocale = errors.New("catalog locale is empty")

	// Parsing
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// Loading
	ErrLoadingCancelled = errors.New("catalog loading cancelled")
	ErrFailedToReadFile = errors.New("failed to read catalog file")
	ErrFailedToReadDir  = errors.New("failed to read catalog directory")
)
