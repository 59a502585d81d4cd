package message

import "context"

// defaultDomain is the carrier domain when none is configured.
const defaultDomain = "messages"

// Translatable is the narrow surface error types expose to the rest of an
// application: an always-available default text plus deferred, localized
// rendering once a translator is at hand.
type Translatable interface {
	Default() string
	Translate(ctx context.Context, translator Translator, locale string) (string, error)
}

// Carrier packages a renderable message for embedding inside another object,
// typically an error. It renders the untranslated default exactly once at
// construction; translation later produces a new string and never mutates
// the carrier.
type Carrier struct {
	msg      *Message
	domain   string
	locale   string
	rendered string
}

// NewCarrier normalizes the accepted input shapes into one carried Message:
//
//   - a plain string: the pattern, with params as its parameters;
//   - a *Message: used directly, unmodified (params is ignored).
//
// A nil or empty pattern fails with ErrEmptyMessage; any other pattern type
// fails with ErrInvalidPattern. Both fail fast: a carrier is built at the
// point an error is raised, and a malformed one should surface there, not at
// render time.
func NewCarrier(pattern any, params map[string]any, opts ...CarrierOption) (*Carrier, error) {
	c := &Carrier{
		domain: defaultDomain,
		locale: defaultLocale,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch p := pattern.(type) {
	case nil:
		return nil, ErrEmptyMessage
	case string:
		msg, err := New(p, params, WithDomain(c.domain), WithLocale(c.locale))
		if err != nil {
			return nil, err
		}
		c.msg = msg
	case *Message:
		if p == nil {
			return nil, ErrEmptyMessage
		}
		c.msg = p
	default:
		return nil, ErrInvalidPattern
	}

	c.rendered = c.msg.Render()
	return c, nil
}

// Default returns the untranslated rendering computed at construction.
// It never changes, even after the carrier has been translated.
func (c *Carrier) Default() string {
	return c.rendered
}

// Message returns the carried message.
func (c *Carrier) Message() *Message {
	return c.msg
}

// Translate renders the carried message through translator. An empty locale
// means the carrier's default locale.
func (c *Carrier) Translate(ctx context.Context, translator Translator, locale string) (string, error) {
	if locale == "" {
		locale = c.locale
	}
	return c.msg.Translate(ctx, translator, locale)
}
