// Package message provides immutable renderable messages and a carrier that
// lets error values hold a translatable message instead of a fixed string.
//
// A Message stores a pattern, parameters, an optional domain and a default
// locale. Rendered standalone, the pattern is a literal ICU template;
// handed a translator, the same string becomes a catalog lookup id:
//
//	m, _ := message.New("welcome", map[string]any{"name": "Ann"})
//	m.Render()                          // "welcome" (no translator, literal pattern)
//	m.Translate(ctx, translator, "en")  // "Welcome Ann!" (catalog lookup)
//
// A Carrier wraps a Message for embedding inside errors. It computes the
// untranslated rendering once at construction, so the default text is always
// available, and exposes Translate for deferred localized rendering, e.g. in
// an HTTP error handler:
//
//	err, _ := message.NewError(message.KindInvalidArgument,
//		"err.required", map[string]any{"field": "email"})
//	err.Error()                              // "err.required"
//	err.Translate(ctx, translator, "de")     // localized text
//
// Error types that need richer payloads implement Translatable directly or
// delegate to an embedded Carrier; composition replaces the deep
// exception-subclass hierarchies this pattern usually comes from.
package message
