package proto

import (
	"strings"

	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

// TodoMarker is the placeholder body line emitted into every generated
// definition when SynthesizeOptions.AddTodo is set.
const TodoMarker = "// TODO: Implement"

// Synthesize builds the definition text for a recognized prototype. Pure
// string construction; the caller decides where the text lands.
func Synthesize(p *types.Prototype, opts types.SynthesizeOptions) string {
	var b strings.Builder

	if p.TemplateParams != "" {
		b.WriteString("template<")
		b.WriteString(p.TemplateParams)
		b.WriteString(">\n")
	}

	// static/virtual/explicit are illegal on out-of-class definitions, so
	// the caller suppresses them when a member lands in a source file.
	if len(p.PreQualifiers) > 0 && !(opts.SuppressPreQualifiers && p.IsMember()) {
		b.WriteString(strings.Join(p.PreQualifiers, " "))
		b.WriteString(" ")
	}

	if p.ReturnType != "" {
		b.WriteString(p.ReturnType)
		b.WriteString(" ")
	}

	b.WriteString(p.ScopePrefix())
	b.WriteString(p.Name)
	b.WriteString("(")
	b.WriteString(p.Parameters)
	b.WriteString(")")
	if p.PostQualifiers != "" {
		b.WriteString(" ")
		b.WriteString(p.PostQualifiers)
	}

	b.WriteString("\n{\n")
	if opts.AddTodo {
		b.WriteString("\t" + TodoMarker + "\n")
	}
	if opts.EmitReturnStatement && p.ReturnType != "" && p.ReturnType != "void" {
		b.WriteString("\treturn {};\n")
	}
	b.WriteString("}\n")
	return b.String()
}
