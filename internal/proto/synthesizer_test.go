package proto

import (
	"strings"
	"testing"

	"github.com/abdallahsaber065/cpp-helper/internal/document"
	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

func TestSynthesizeFreeFunction(t *testing.T) {
	p := ParseSignature("void foo(int a, int b);")
	if p == nil {
		t.Fatal("expected a prototype")
	}

	impl := Synthesize(p, types.SynthesizeOptions{AddTodo: true})

	if !strings.Contains(impl, "void foo(int a, int b)") {
		t.Errorf("Missing signature in:\n%s", impl)
	}
	if !strings.Contains(impl, TodoMarker) {
		t.Errorf("Missing TODO marker in:\n%s", impl)
	}
	if strings.Contains(impl, "return") {
		t.Errorf("Return statement not requested but present in:\n%s", impl)
	}
}

func TestSynthesizeMemberWithReturn(t *testing.T) {
	p := ParseSignature("int MyClass::getValue() const noexcept;")
	if p == nil {
		t.Fatal("expected a prototype")
	}

	impl := Synthesize(p, types.SynthesizeOptions{EmitReturnStatement: true, AddTodo: true})

	if !strings.Contains(impl, "int MyClass::getValue() const noexcept") {
		t.Errorf("Missing qualified signature in:\n%s", impl)
	}
	if !strings.Contains(impl, TodoMarker) {
		t.Errorf("Missing TODO marker in:\n%s", impl)
	}
	if !strings.Contains(impl, "return {};") {
		t.Errorf("Missing default return in:\n%s", impl)
	}
}

func TestSynthesizeVoidNeverReturns(t *testing.T) {
	p := ParseSignature("void run();")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	impl := Synthesize(p, types.SynthesizeOptions{EmitReturnStatement: true, AddTodo: true})
	if strings.Contains(impl, "return") {
		t.Errorf("void must not get a return statement:\n%s", impl)
	}
}

func TestSynthesizeTemplateMember(t *testing.T) {
	doc := docFromLines(
		"template<typename T>",
		"class Box {",
		"    T value() const;",
		"};",
	)
	p := Recognize(doc, document.Position{Line: 2})
	if p == nil {
		t.Fatal("expected a prototype")
	}

	impl := Synthesize(p, types.SynthesizeOptions{EmitReturnStatement: true, AddTodo: true})

	if !strings.HasPrefix(impl, "template<typename T>\n") {
		t.Errorf("Missing template header in:\n%s", impl)
	}
	if !strings.Contains(impl, "T Box<T>::value() const") {
		t.Errorf("Missing specialized scope resolution in:\n%s", impl)
	}
}

func TestSynthesizePlainScopeWithoutTemplateArgs(t *testing.T) {
	p := ParseSignature("int MyClass::getValue();")
	impl := Synthesize(p, types.SynthesizeOptions{})
	if !strings.Contains(impl, "MyClass::getValue()") {
		t.Errorf("Expected plain Class:: form in:\n%s", impl)
	}
	if strings.Contains(impl, "MyClass<") {
		t.Errorf("Template args absent, must not emit Class<...>:: in:\n%s", impl)
	}
}

func TestSuppressPreQualifiersForMembers(t *testing.T) {
	doc := docFromLines(
		"class Widget {",
		"    static void helper();",
		"};",
	)
	p := Recognize(doc, document.Position{Line: 1})
	if p == nil {
		t.Fatal("expected a prototype")
	}

	kept := Synthesize(p, types.SynthesizeOptions{AddTodo: true})
	if !strings.Contains(kept, "static void Widget::helper()") {
		t.Errorf("Pre-qualifiers should be kept by default:\n%s", kept)
	}

	suppressed := Synthesize(p, types.SynthesizeOptions{AddTodo: true, SuppressPreQualifiers: true})
	if strings.Contains(suppressed, "static") {
		t.Errorf("Pre-qualifiers should be suppressed for members:\n%s", suppressed)
	}

	// Free functions keep their specifiers either way.
	free := ParseSignature("static int counter();")
	impl := Synthesize(free, types.SynthesizeOptions{SuppressPreQualifiers: true})
	if !strings.Contains(impl, "static int counter()") {
		t.Errorf("Free function specifiers must survive suppression:\n%s", impl)
	}
}

func TestRoundTripSignature(t *testing.T) {
	p := ParseSignature("int add(int a, int b);")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	impl := Synthesize(p, types.SynthesizeOptions{})
	first := strings.SplitN(impl, "\n", 2)[0]
	if first != "int add(int a, int b)" {
		t.Errorf("Round-trip signature mismatch: '%s'", first)
	}
}
