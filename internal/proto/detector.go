package proto

import (
	"regexp"
	"strings"
)

// IsImplemented reports whether haystack already contains a body-bearing
// definition for the function. className may be empty for free functions.
//
// This is a textual heuristic: a definition is a signature followed by an
// optional qualifier run and an opening brace. It can match text inside
// comments or string literals and misses multi-line signatures; that trade
// is accepted for the same reasons the recognizer is line-oriented.
func IsImplemented(name, className, haystack string) bool {
	if name == "" {
		return false
	}
	n := regexp.QuoteMeta(name)
	var pattern string
	if className != "" {
		// Strip template arguments from a class name recovered from a
		// Foo<T>:: qualifier; the definition may use any argument list.
		base := className
		if idx := strings.IndexByte(base, '<'); idx >= 0 {
			base = base[:idx]
		}
		c := regexp.QuoteMeta(base)
		pattern = c + `\s*(?:<[^<>]*>)?\s*::\s*` + n + `\s*\([^)]*\)[\w\s]*\{`
	} else {
		pattern = `\b` + n + `\s*\([^)]*\)[\w\s]*\{`
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(haystack)
}
