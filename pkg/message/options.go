package message

// defaultLocale is the render locale for messages built without one.
const defaultLocale = "en"

// Option configures a Message.
type Option func(*Message)

// WithDomain sets the message domain used during translation.
func WithDomain(domain string) Option {
	return func(m *Message) {
		m.domain = domain
	}
}

// WithLocale sets the default locale used by Render and as the fallback
// locale for Translate.
func WithLocale(locale string) Option {
	return func(m *Message) {
		if locale != "" {
			m.locale = locale
		}
	}
}

// WithFormatter replaces the default ICU formatter.
func WithFormatter(f Formatter) Option {
	return func(m *Message) {
		if f != nil {
			m.formatter = f
		}
	}
}

// CarrierOption configures a Carrier.
type CarrierOption func(*Carrier)

// WithDefaultDomain sets the domain applied to the carried message and used
// as the carrier's default.
func WithDefaultDomain(domain string) CarrierOption {
	return func(c *Carrier) {
		if domain != "" {
			c.domain = domain
		}
	}
}

// WithDefaultLocale sets the locale used for the untranslated rendering and
// as the fallback for Translate.
func WithDefaultLocale(locale string) CarrierOption {
	return func(c *Carrier) {
		if locale != "" {
			c.locale = locale
		}
	}
}
