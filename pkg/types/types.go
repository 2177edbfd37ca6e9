package types

import (
	"strings"
	"time"
)

// =============================================================================
// CORE TYPES (cpp-helper)
// =============================================================================

// Prototype is a single-line C/C++ function declaration, split into the
// pieces needed to re-synthesize the matching definition.
type Prototype struct {
	FullSignature  string   `json:"full_signature"`            // trimmed source line, includes trailing ';'
	ReturnType     string   `json:"return_type,omitempty"`     // empty for constructors/destructors
	Name           string   `json:"name"`                      // bare identifier, never contains '::'
	Parameters     string   `json:"parameters,omitempty"`      // raw text inside the parentheses, unparsed
	PreQualifiers  []string `json:"pre_qualifiers,omitempty"`  // leading specifiers, order preserved
	PostQualifiers string   `json:"post_qualifiers,omitempty"` // const/noexcept/override/final tail
	IsTemplated    bool     `json:"is_templated,omitempty"`
	IsStatic       bool     `json:"is_static,omitempty"`
	IsInline       bool     `json:"is_inline,omitempty"`
	ClassName      string   `json:"class_name,omitempty"`
	ClassTemplate  string   `json:"class_template,omitempty"`  // full template header line of the enclosing class
	TemplateParams string   `json:"template_params,omitempty"` // raw parameter list of that header
	TemplateArgs   []string `json:"template_args,omitempty"`   // bare parameter names, types stripped
}

// Qualifiers is the legacy name for the trailing qualifier text.
func (p *Prototype) Qualifiers() string {
	return p.PostQualifiers
}

// IsMember reports whether the prototype belongs to a class or struct.
func (p *Prototype) IsMember() bool {
	return p.ClassName != ""
}

// HasPreQualifier reports whether the given specifier appears before the
// return type.
func (p *Prototype) HasPreQualifier(word string) bool {
	for _, q := range p.PreQualifiers {
		if q == word {
			return true
		}
	}
	return false
}

// ScopePrefix returns the scope-resolution text used when defining the
// function outside its class: "Class<Args>::" when template arguments are
// known, "Class::" for plain members, "" for free functions.
func (p *Prototype) ScopePrefix() string {
	if p.ClassName == "" {
		return ""
	}
	if len(p.TemplateArgs) > 0 {
		return p.ClassName + "<" + strings.Join(p.TemplateArgs, ", ") + ">::"
	}
	return p.ClassName + "::"
}

// SynthesizeOptions selects how a definition body is emitted.
type SynthesizeOptions struct {
	// EmitReturnStatement adds "return {};" for non-void return types.
	EmitReturnStatement bool
	// SuppressPreQualifiers drops leading specifiers for member functions,
	// which is required when the definition lands in a source file where
	// static/virtual/explicit are illegal on out-of-class definitions.
	SuppressPreQualifiers bool
	// AddTodo emits the "// TODO: Implement" marker line.
	AddTodo bool
}

// =============================================================================
// INDEX TYPES
// =============================================================================

// ImplRecord is a function definition discovered during a project scan.
type ImplRecord struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	ClassName string    `json:"class_name,omitempty"`
	Name      string    `json:"name"`
	Signature string    `json:"signature,omitempty"`
	Line      int       `json:"line,omitempty"`
	IndexedAt time.Time `json:"indexed_at"`
}

// FileRecord tracks a scanned file's content hash for staleness checks.
type FileRecord struct {
	Path        string    `json:"path"`
	ContentHash string    `json:"content_hash"`
	IndexedAt   time.Time `json:"indexed_at"`
}
