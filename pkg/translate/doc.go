// Package translate resolves message ids to locale-specific text.
//
// A Translator looks an id up against a pluggable Source across a locale
// fallback chain and renders the matched ICU pattern for the winning locale.
// Resolution is best effort by design: a missing locale silently falls
// through to the next candidate, a missing id degrades to substituting
// parameters into the id itself, and a pattern the formatter rejects is
// returned unrendered. The only error a caller sees from Translate is a
// genuine source failure (unreachable storage, corrupt data), which is
// surfaced as-is because masking it would hide missing translation data
// from the operator.
//
// # Usage
//
//	src := source.NewMap(map[string]map[string]map[string]string{
//		"en": {"messages": {"greet": "Hi {name}"}},
//		"es": {"messages": {"greet": "Hola {name}"}},
//	})
//
//	translator, err := translate.New(src,
//		translate.WithDefaultLocale("es"),
//		translate.WithFallbacks("en"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, _ := translator.Translate(ctx, "greet",
//		map[string]any{"name": "Sam"}, "", "")
//	// out == "Hola Sam"
//
// # Fallback chain
//
// For a requested locale the candidate sequence is the locale itself, its
// parent tags ("pt-BR" walks up to "pt"), then the configured fallbacks in
// order, with duplicates skipped. Each candidate is queried sequentially and
// the first catalog containing the id wins.
//
// # Legacy plural messages
//
// Catalogs may mix ICU patterns with older "%count%"-style messages.
// Parameters keyed in "%name%" form select plain placeholder substitution
// (see Substitute) instead of ICU formatting, so both styles coexist under
// the same domain.
//
// # Concurrency
//
// Translate performs no internal locking; the translator's locale and
// fallback list are read-only during a call. SetLocale between operations is
// the caller's responsibility to synchronize; prefer WithLocale, which
// returns an independent copy.
package translate
