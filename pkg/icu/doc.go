// Package icu adapts an ICU MessageFormat engine to a minimal formatting
// interface used across translatekit.
//
// ICU MessageFormat is a pattern mini-language covering named parameter
// substitution, locale-aware pluralisation and category selection:
//
//	Hello {name}!
//	{count, plural, =0{No messages} one{# message} other{# messages}}
//	{gender, select, female{She} male{He} other{They}}
//
// The package does not parse the grammar itself; it delegates to
// github.com/gotnospirit/messageformat and only adds locale handling,
// parser caching and error classification.
//
// # Usage
//
//	f := icu.New()
//	out, err := f.Format("en", "{count, plural, one{# item} other{# items}}",
//		map[string]any{"count": 2})
//	// out == "2 items"
//
// Formatting errors are classified as ErrMalformedPattern or ErrFormatFailed
// so callers can implement the raw-pattern fallback policy:
//
//	out, err := f.Format(locale, pattern, params)
//	if err != nil {
//		out = pattern // degrade to the unrendered pattern
//	}
//
// A Formatter is safe for concurrent use.
package icu
