package translate

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds Accept-Language parsing. RFC 7231 sets no
// limit, but 4KB is generous for legitimate headers while preventing memory
// exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// MatchLocale negotiates the best supported locale for an RFC 7231
// Accept-Language header. Quality values are honored and region-specific
// preferences match their base language (en-US matches a supported "en").
// It returns fallback when the header is empty, unparseable, or matches
// nothing.
func MatchLocale(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(supported))
	locales := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return locales[idx]
}
