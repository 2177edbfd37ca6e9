// Package proto recognizes single-line C/C++ function prototypes and
// synthesizes the matching definitions.
//
// Recognition is deliberately best-effort: one line of context, a trailing
// ';' as the sole declaration heuristic, and bounded backward scans for the
// enclosing class and template headers. Deeply nested template argument
// lists inside parameter types can still shift the parse; that is a known
// limitation of the line-oriented approach, not something this package tries
// to fix with full grammar parsing.
package proto

import (
	"regexp"
	"strings"

	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

var specifierWords = map[string]bool{
	"inline":   true,
	"static":   true,
	"virtual":  true,
	"explicit": true,
	"const":    true,
}

var postQualifierWords = map[string]bool{
	"const":    true,
	"noexcept": true,
	"override": true,
	"final":    true,
}

// Statement keywords that rule a line out as a declaration even though it
// parses like one ("return foo(x);", "delete ptr;", ...).
var statementKeywords = map[string]bool{
	"return":  true,
	"throw":   true,
	"delete":  true,
	"new":     true,
	"if":      true,
	"else":    true,
	"while":   true,
	"for":     true,
	"do":      true,
	"switch":  true,
	"case":    true,
	"goto":    true,
	"using":   true,
	"typedef": true,
	"sizeof":  true,
}

var (
	initializerSuffix = regexp.MustCompile(`\s*=\s*(?:0|default|delete)$`)
	returnTypeShape   = regexp.MustCompile(`^[\w:<>,*&\s]+$`)
	nameShape         = regexp.MustCompile(`^~?[A-Za-z_]`)
)

// declaration is the raw split of a signature, before the class qualifier is
// separated from the name.
type declaration struct {
	name           string // may still contain "::"
	returnType     string
	params         string
	preQualifiers  []string
	postQualifiers string
}

// Recognize parses the prototype at pos, recovering class and template
// context from up to DefaultScanWindow preceding lines. Returns nil when the
// line is not a recognizable prototype.
func Recognize(doc *document.Document, pos document.Position) *types.Prototype {
	return RecognizeWindow(doc, pos, DefaultScanWindow)
}

// RecognizeWindow is Recognize with an explicit backward-scan cap.
func RecognizeWindow(doc *document.Document, pos document.Position, window int) *types.Prototype {
	p := ParseSignature(doc.Line(pos.Line))
	if p == nil {
		return nil
	}
	if p.ClassName == "" {
		if name, ok := FindEnclosingClass(doc, pos.Line, window); ok {
			p.ClassName = name
		}
	}
	if header, params, ok := FindClassTemplate(doc, pos.Line, window); ok {
		p.ClassTemplate = header
		p.TemplateParams = params
		p.TemplateArgs = TemplateArgNames(params)
	}
	return p
}

// ParseSignature parses a prototype from the line text alone, without any
// surrounding context. Returns nil when the line is not a recognizable
// prototype.
func ParseSignature(line string) *types.Prototype {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ";") {
		return nil
	}
	d, ok := splitDeclaration(strings.TrimSuffix(trimmed, ";"))
	if !ok {
		return nil
	}

	p := &types.Prototype{
		FullSignature:  trimmed,
		ReturnType:     d.returnType,
		Parameters:     d.params,
		PreQualifiers:  d.preQualifiers,
		PostQualifiers: d.postQualifiers,
	}

	// The name never keeps a scope qualifier; split on the last "::" so
	// nested scopes stay with the class part.
	if idx := strings.LastIndex(d.name, "::"); idx >= 0 {
		p.ClassName = d.name[:idx]
		p.Name = d.name[idx+2:]
	} else {
		p.Name = d.name
	}
	if p.Name == "" || p.ClassName == "::" {
		return nil
	}

	p.IsTemplated = strings.Contains(p.Name, "<") || strings.Contains(p.ReturnType, "<")
	p.IsStatic = p.HasPreQualifier("static")
	p.IsInline = p.HasPreQualifier("inline")
	return p
}

// splitDeclaration tokenizes a signature whose trailing ';' has been removed.
// It works end-to-start: pure-virtual/defaulted suffix, qualifier tail,
// parameter parens, name token, leading specifiers, remainder is the return
// type.
func splitDeclaration(body string) (declaration, bool) {
	var d declaration

	body = strings.TrimSpace(body)
	body = initializerSuffix.ReplaceAllString(body, "")
	body, d.postQualifiers = trimPostQualifiers(body)

	if !strings.HasSuffix(body, ")") {
		return d, false
	}
	open := matchingParen(body)
	if open < 0 {
		return d, false
	}
	d.params = strings.TrimSpace(body[open+1 : len(body)-1])

	head := strings.TrimSpace(body[:open])
	name, rest := trimNameToken(head)
	if name == "" || !nameShape.MatchString(name) || statementKeywords[name] {
		return d, false
	}
	d.name = name

	words := strings.Fields(strings.TrimSpace(rest))
	i := 0
	for i < len(words) && specifierWords[words[i]] {
		d.preQualifiers = append(d.preQualifiers, words[i])
		i++
	}
	d.returnType = strings.Join(words[i:], " ")
	if d.returnType != "" {
		if !returnTypeShape.MatchString(d.returnType) {
			return d, false
		}
		if statementKeywords[words[i]] {
			return d, false
		}
	}
	return d, true
}

// trimPostQualifiers strips the trailing const/noexcept/override/final run,
// returning the remaining text and the qualifiers in source order.
func trimPostQualifiers(body string) (string, string) {
	var quals []string
	for {
		trimmed := strings.TrimRight(body, " \t")
		k := len(trimmed)
		for k > 0 && isWordChar(trimmed[k-1]) {
			k--
		}
		w := trimmed[k:]
		if w == "" || !postQualifierWords[w] {
			return trimmed, strings.Join(quals, " ")
		}
		quals = append([]string{w}, quals...)
		body = trimmed[:k]
	}
}

// matchingParen returns the index of the '(' balancing the final ')'.
func matchingParen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// trimNameToken takes the trailing name token off head: word characters,
// '~', "::" and balanced "<...>" groups.
func trimNameToken(head string) (name, rest string) {
	i := len(head)
scan:
	for i > 0 {
		c := head[i-1]
		switch {
		case isWordChar(c) || c == '~' || c == ':':
			i--
		case c == '>':
			depth := 0
			j := i - 1
			for ; j >= 0; j-- {
				if head[j] == '>' {
					depth++
				} else if head[j] == '<' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if j < 0 || depth != 0 {
				return "", head
			}
			i = j
		default:
			break scan
		}
	}
	return head[i:], head[:i]
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
