// Package source provides file- and memory-backed message catalog sources
// for the translate package.
//
// Catalog files follow the "<domain>.<locale>.<ext>" naming convention
// (messages.en.yaml, errors.pt-BR.json); their content is a flat or nested
// key-to-pattern document, nested keys being flattened with dots:
//
//	err:
//	  required: "The {field} field is required"
//
// becomes the key "err.required".
//
// Available sources:
//
//   - Map: in-memory, deep-copied at construction.
//   - File: a single file for one (locale, domain) pair.
//   - Dir: a directory scanned per lookup.
//   - FS: an fs.FS (typically embed.FS) scanned per lookup.
//
// File, Dir and FS re-read their backing store on every lookup, matching the
// translate.Source contract of fresh catalogs; wrap them if caching is
// needed. Parsers for JSON and YAML are included and custom formats plug in
// through the Parser interface.
package source
