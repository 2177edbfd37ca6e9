package proto

import (
	"regexp"
	"strings"

	"github.com/abdallahsaber065/cpp-helper/internal/document"
)

// DefaultScanWindow bounds how many preceding lines the class and template
// backward scans may walk. Scans that exhaust the window degrade to "no
// context found"; they never error.
const DefaultScanWindow = 100

var (
	classDecl    = regexp.MustCompile(`\b(?:class|struct)\s+([A-Za-z_]\w*)`)
	templateDecl = regexp.MustCompile(`^\s*template\s*<(.+)>\s*$`)
)

// FindEnclosingClass walks preceding lines in reverse, tracking brace
// balance, and returns the nearest class/struct whose scope is still open at
// line. This recovers member intent for prototypes declared inside a class
// body without a Class:: prefix.
func FindEnclosingClass(doc *document.Document, line, window int) (string, bool) {
	if window <= 0 {
		window = DefaultScanWindow
	}
	balance := 0
	for i := line - 1; i >= 0 && line-i <= window; i-- {
		text := doc.Line(i)
		balance += strings.Count(text, "}") - strings.Count(text, "{")
		if balance >= 0 {
			continue
		}
		// This line opens a scope that is still open at the prototype.
		if m := classDecl.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
		// Some other scope (namespace, enum, function). Keep walking outward.
		balance = 0
	}
	return "", false
}

// FindClassTemplate walks preceding lines in reverse looking for the
// enclosing class declaration and, immediately above it, a template<...>
// header. Returns the full header line and its raw parameter list.
func FindClassTemplate(doc *document.Document, line, window int) (header, params string, ok bool) {
	if window <= 0 {
		window = DefaultScanWindow
	}
	balance := 0
	for i := line - 1; i >= 0 && line-i <= window; i-- {
		text := doc.Line(i)
		opens := strings.Count(text, "{")
		closes := strings.Count(text, "}")
		if balance == 0 && opens > closes && classDecl.MatchString(text) {
			// Class found; the template header is the nearest preceding
			// non-blank, non-comment line.
			for j := i - 1; j >= 0 && line-j <= window; j-- {
				prev := strings.TrimSpace(doc.Line(j))
				if prev == "" || strings.HasPrefix(prev, "//") {
					continue
				}
				if m := templateDecl.FindStringSubmatch(prev); m != nil {
					return prev, strings.TrimSpace(m[1]), true
				}
				break
			}
			return "", "", false
		}
		balance += closes - opens
	}
	return "", "", false
}

// TemplateArgNames reduces a template parameter list to the bare argument
// names used in the specialized scope-resolution form Class<Args>::. Default
// values are stripped first, then each parameter's leading type keywords,
// keeping only the final identifier.
func TemplateArgNames(params string) []string {
	var names []string
	for _, part := range splitTopLevel(params, ',') {
		part = strings.TrimSpace(part)
		if idx := strings.IndexByte(part, '='); idx >= 0 {
			part = strings.TrimSpace(part[:idx])
		}
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		name := strings.TrimLeft(fields[len(fields)-1], ".&*")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// splitTopLevel splits on sep, ignoring separators nested inside <>, () or
// [] groups.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, s[last:])
}
