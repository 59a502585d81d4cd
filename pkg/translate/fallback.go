package translate

import "golang.org/x/text/language"

// DefaultLocale is used when a Translator is built without an explicit one.
const DefaultLocale = "en"

// chain builds the candidate locale sequence for one resolution: the
// requested locale first, then its parent tags (pt-BR walks up to pt), then
// the configured fallbacks in order. A locale never appears twice.
func (t *Translator) chain(locale string) []string {
	out := make([]string, 0, len(t.fallbacks)+2)
	seen := make(map[string]struct{}, len(t.fallbacks)+2)

	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}

	add(locale)
	for _, parent := range parentLocales(locale) {
		add(parent)
	}
	for _, fallback := range t.fallbacks {
		add(fallback)
	}
	return out
}

// parentLocales returns the ancestor tags of locale from most to least
// specific, e.g. "zh-Hant-TW" yields ["zh-Hant", "zh"]. Unparseable input
// yields nothing, leaving only the literal locale and the fallbacks.
func parentLocales(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}

	var out []string
	for tag = tag.Parent(); tag != language.Und; tag = tag.Parent() {
		out = append(out, tag.String())
	}
	return out
}
