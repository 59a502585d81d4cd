package message

import "context"

// Kind tags an Error with a coarse category, replacing a subclass-per-kind
// error hierarchy. Code that needs distinct structured payloads should define
// its own error type embedding a Carrier instead of growing this list.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindPermission      Kind = "permission_denied"
	KindConflict        Kind = "conflict"
	KindInternal        Kind = "internal"
)

// Error is a translatable error: a Kind tag plus a Carrier. Its Error method
// returns the untranslated default text, so it reads sensibly in logs even
// when no translator ever touches it.
type Error struct {
	kind    Kind
	carrier *Carrier
}

var _ error = (*Error)(nil)
var _ Translatable = (*Error)(nil)

// NewError builds a translatable error. The pattern and params follow the
// NewCarrier contract.
func NewError(kind Kind, pattern any, params map[string]any, opts ...CarrierOption) (*Error, error) {
	carrier, err := NewCarrier(pattern, params, opts...)
	if err != nil {
		return nil, err
	}
	return &Error{kind: kind, carrier: carrier}, nil
}

// Error implements the error interface with the untranslated rendering.
func (e *Error) Error() string {
	return e.carrier.Default()
}

// Kind returns the error's category tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// Default returns the untranslated rendering fixed at construction.
func (e *Error) Default() string {
	return e.carrier.Default()
}

// Translate renders the error's message for locale through translator.
func (e *Error) Translate(ctx context.Context, translator Translator, locale string) (string, error) {
	return e.carrier.Translate(ctx, translator, locale)
}
