package header

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var includeLine = regexp.MustCompile(`^\s*#include\s+[<"]([^>"]+)[>"]`)

// HasInclude reports whether text includes the given basename, in either
// the quoted or angle-bracket form, directly or via a longer path.
func HasInclude(text, base string) bool {
	for _, line := range strings.Split(text, "\n") {
		m := includeLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[1] == base || filepath.Base(m[1]) == base {
			return true
		}
	}
	return false
}

// EnsureInclude returns text with `#include "base"` present. When absent it
// is inserted after the last existing include line, or at the top of the
// file when there are none.
func EnsureInclude(text, base string) string {
	if HasInclude(text, base) {
		return text
	}
	inc := fmt.Sprintf("#include %q", base)
	lines := strings.Split(text, "\n")

	last := -1
	for i, line := range lines {
		if includeLine.MatchString(line) {
			last = i
		}
	}
	if last >= 0 {
		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:last+1]...)
		out = append(out, inc)
		out = append(out, lines[last+1:]...)
		return strings.Join(out, "\n")
	}
	if text == "" {
		return inc + "\n"
	}
	return inc + "\n" + text
}
