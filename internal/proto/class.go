package proto

import (
	"regexp"
	"strings"

	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

// MethodPrototype pairs a recognized prototype with the line it was found on.
type MethodPrototype struct {
	Line  int
	Proto *types.Prototype
}

// ClassMethods collects every method prototype declared directly in the body
// of the named class. Nested scopes (method bodies, inner classes) are
// skipped, as are members that already carry an inline body.
func ClassMethods(doc *document.Document, className string) []MethodPrototype {
	classRe := regexp.MustCompile(`\b(?:class|struct)\s+` + regexp.QuoteMeta(className) + `\b`)
	start := -1
	for i := 0; i < doc.LineCount(); i++ {
		if classRe.MatchString(doc.Line(i)) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	// Template header directly above the class applies to every member.
	var templateHeader, templateParams string
	if start > 0 {
		if m := templateDecl.FindStringSubmatch(strings.TrimSpace(doc.Line(start - 1))); m != nil {
			templateHeader = strings.TrimSpace(doc.Line(start - 1))
			templateParams = strings.TrimSpace(m[1])
		}
	}

	var out []MethodPrototype
	depth := 0
	entered := false
	for i := start; i < doc.LineCount(); i++ {
		text := doc.Line(i)
		if entered && depth == 1 {
			if p := ParseSignature(text); p != nil {
				if p.ClassName == "" {
					p.ClassName = className
				}
				if templateParams != "" {
					p.ClassTemplate = templateHeader
					p.TemplateParams = templateParams
					p.TemplateArgs = TemplateArgNames(templateParams)
				}
				out = append(out, MethodPrototype{Line: i, Proto: p})
			}
		}
		depth += strings.Count(text, "{") - strings.Count(text, "}")
		if depth > 0 {
			entered = true
		}
		if entered && depth <= 0 {
			break
		}
	}
	return out
}

// Definition is a body-bearing function signature found in a source file.
type Definition struct {
	ClassName string
	Name      string
	Signature string
	Line      int
}

// ScanDefinitions walks a document and collects the function definitions it
// declares at file scope. Used by the project scan to index what is already
// implemented.
func ScanDefinitions(doc *document.Document) []Definition {
	var out []Definition
	depth := 0
	for i := 0; i < doc.LineCount(); i++ {
		text := doc.Line(i)
		if depth == 0 {
			if def, ok := parseDefinitionLine(doc, i); ok {
				out = append(out, def)
			}
		}
		depth += strings.Count(text, "{") - strings.Count(text, "}")
		if depth < 0 {
			depth = 0
		}
	}
	return out
}

// parseDefinitionLine recognizes "signature {" on one line, or a signature
// line whose brace opens on the next non-blank line.
func parseDefinitionLine(doc *document.Document, i int) (Definition, bool) {
	trimmed := strings.TrimSpace(doc.Line(i))
	if trimmed == "" || strings.HasSuffix(trimmed, ";") || strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "*") {
		return Definition{}, false
	}

	body := trimmed
	if idx := strings.IndexByte(body, '{'); idx >= 0 {
		body = strings.TrimSpace(body[:idx])
	} else {
		// Brace must open the next non-blank line.
		j := i + 1
		for j < doc.LineCount() && strings.TrimSpace(doc.Line(j)) == "" {
			j++
		}
		if j >= doc.LineCount() || !strings.HasPrefix(strings.TrimSpace(doc.Line(j)), "{") {
			return Definition{}, false
		}
	}
	d, ok := splitDeclaration(body)
	if !ok {
		return Definition{}, false
	}
	def := Definition{Name: d.name, Signature: body, Line: i}
	if idx := strings.LastIndex(d.name, "::"); idx >= 0 {
		def.ClassName = d.name[:idx]
		def.Name = d.name[idx+2:]
		if bidx := strings.IndexByte(def.ClassName, '<'); bidx >= 0 {
			def.ClassName = def.ClassName[:bidx]
		}
	}
	if def.Name == "" {
		return Definition{}, false
	}
	return def, true
}
