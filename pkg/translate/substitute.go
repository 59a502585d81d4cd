package translate

import (
	"fmt"
	"sort"
	"strings"
)

// CountParam is the conventional parameter key for legacy plural messages.
// Parameters keyed in "%name%" form (CountParam included) mark a message as
// using plain placeholder substitution instead of ICU formatting.
const CountParam = "%count%"

// Substitute replaces "%name%" placeholders in text with parameter values.
// A parameter key already wrapped in percent signs is matched verbatim;
// a bare key matches its "%key%" form. Placeholders without a matching
// parameter are left untouched, so Substitute(id, nil) returns id unchanged.
func Substitute(text string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(text, "%") {
		return text
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(params)*2)
	for _, k := range keys {
		placeholder := k
		if !strings.HasPrefix(k, "%") {
			placeholder = "%" + k + "%"
		}
		pairs = append(pairs, placeholder, fmt.Sprint(params[k]))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// hasPercentParams reports whether any parameter uses the "%name%" key
// convention that selects the simple substitution path.
func hasPercentParams(params map[string]any) bool {
	for k := range params {
		if strings.HasPrefix(k, "%") && strings.HasSuffix(k, "%") && len(k) > 2 {
			return true
		}
	}
	return false
}
