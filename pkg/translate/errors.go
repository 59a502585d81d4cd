package translate

import "errors"

var (
	// ErrNilSource indicates a Translator was constructed without a Source.
	ErrNilSource = errors.New("translation source is nil")

	// ErrSourceFailure wraps errors returned by a Source during resolution.
	// It marks genuine storage failures; "no data for this locale" is not an
	// error and never produces it.
	ErrSourceFailure = errors.New("translation source failure")
)
