package proto

import (
	"strings"
	"testing"
)

func TestRecognizeFreeFunction(t *testing.T) {
	p := ParseSignature("void foo(int a, int b);")
	if p == nil {
		t.Fatal("expected a prototype")
	}

	if p.ReturnType != "void" {
		t.Errorf("Expected return type 'void', got '%s'", p.ReturnType)
	}
	if p.Name != "foo" {
		t.Errorf("Expected name 'foo', got '%s'", p.Name)
	}
	if p.Parameters != "int a, int b" {
		t.Errorf("Expected parameters 'int a, int b', got '%s'", p.Parameters)
	}
	if p.PostQualifiers != "" {
		t.Errorf("Expected no post qualifiers, got '%s'", p.PostQualifiers)
	}
	if p.ClassName != "" {
		t.Errorf("Expected no class name, got '%s'", p.ClassName)
	}
	if p.IsTemplated {
		t.Error("Should not be templated")
	}
	if p.FullSignature != "void foo(int a, int b);" {
		t.Errorf("Full signature should keep the line verbatim, got '%s'", p.FullSignature)
	}
}

func TestRecognizeMemberWithQualifiers(t *testing.T) {
	p := ParseSignature("int MyClass::getValue() const noexcept;")
	if p == nil {
		t.Fatal("expected a prototype")
	}

	if p.ReturnType != "int" {
		t.Errorf("Expected return type 'int', got '%s'", p.ReturnType)
	}
	if p.Name != "getValue" {
		t.Errorf("Expected name 'getValue', got '%s'", p.Name)
	}
	if p.ClassName != "MyClass" {
		t.Errorf("Expected class 'MyClass', got '%s'", p.ClassName)
	}
	if p.Parameters != "" {
		t.Errorf("Expected empty parameters, got '%s'", p.Parameters)
	}
	if p.PostQualifiers != "const noexcept" {
		t.Errorf("Expected 'const noexcept', got '%s'", p.PostQualifiers)
	}
	if p.Qualifiers() != p.PostQualifiers {
		t.Error("Qualifiers() should alias PostQualifiers")
	}
}

func TestRejectWithoutSemicolon(t *testing.T) {
	lines := []string{
		"void foo(int a, int b)",
		"int getValue() const",
		"class Widget {",
		"",
		"   ",
	}
	for _, line := range lines {
		if p := ParseSignature(line); p != nil {
			t.Errorf("Expected no match for '%s', got %+v", line, p)
		}
	}
}

func TestRejectStatements(t *testing.T) {
	lines := []string{
		"return foo(x);",
		"delete ptr(x);",
		"int x = foo();",
		"if (ready);",
		"while (next());",
	}
	for _, line := range lines {
		if p := ParseSignature(line); p != nil {
			t.Errorf("Expected no match for '%s', got name '%s'", line, p.Name)
		}
	}
}

func TestConstructorAndDestructor(t *testing.T) {
	ctor := ParseSignature("explicit MyClass(int x);")
	if ctor == nil {
		t.Fatal("expected constructor prototype")
	}
	if ctor.ReturnType != "" {
		t.Errorf("Constructor return type should be empty, got '%s'", ctor.ReturnType)
	}
	if ctor.Name != "MyClass" {
		t.Errorf("Expected name 'MyClass', got '%s'", ctor.Name)
	}
	if !ctor.HasPreQualifier("explicit") {
		t.Error("Expected 'explicit' pre-qualifier")
	}

	dtor := ParseSignature("virtual ~MyClass();")
	if dtor == nil {
		t.Fatal("expected destructor prototype")
	}
	if dtor.Name != "~MyClass" {
		t.Errorf("Expected name '~MyClass', got '%s'", dtor.Name)
	}
	if dtor.ReturnType != "" {
		t.Errorf("Destructor return type should be empty, got '%s'", dtor.ReturnType)
	}
}

func TestPreQualifierOrderAndFlags(t *testing.T) {
	p := ParseSignature("inline static void tick();")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if len(p.PreQualifiers) != 2 || p.PreQualifiers[0] != "inline" || p.PreQualifiers[1] != "static" {
		t.Errorf("Pre-qualifier order not preserved: %v", p.PreQualifiers)
	}
	if !p.IsInline || !p.IsStatic {
		t.Errorf("Derived flags wrong: inline=%v static=%v", p.IsInline, p.IsStatic)
	}
}

func TestPureVirtualSuffixStripped(t *testing.T) {
	p := ParseSignature("virtual void render() = 0;")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if p.Name != "render" || p.ReturnType != "void" {
		t.Errorf("Got name '%s' return '%s'", p.Name, p.ReturnType)
	}
	if p.PostQualifiers != "" {
		t.Errorf("'= 0' should not leak into qualifiers, got '%s'", p.PostQualifiers)
	}
}

func TestTemplatedReturnType(t *testing.T) {
	p := ParseSignature("std::vector<int> items() const;")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if p.ReturnType != "std::vector<int>" {
		t.Errorf("Expected 'std::vector<int>', got '%s'", p.ReturnType)
	}
	if !p.IsTemplated {
		t.Error("Templated return type should set IsTemplated")
	}
}

func TestClassSplitsOnLastSeparator(t *testing.T) {
	p := ParseSignature("void Outer::Inner::reset();")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if p.ClassName != "Outer::Inner" {
		t.Errorf("Expected class 'Outer::Inner', got '%s'", p.ClassName)
	}
	if p.Name != "reset" {
		t.Errorf("Expected name 'reset', got '%s'", p.Name)
	}
	if strings.Contains(p.Name, "::") {
		t.Error("Name must never contain '::'")
	}

	// "::" inside template arguments must not confuse the split.
	p = ParseSignature("int Foo<std::string>::bar();")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if p.ClassName != "Foo<std::string>" || p.Name != "bar" {
		t.Errorf("Got class '%s' name '%s'", p.ClassName, p.Name)
	}
}

func TestNestedParameterParens(t *testing.T) {
	p := ParseSignature("void set(callback_t (*cb)(int));")
	if p == nil {
		t.Fatal("expected a prototype")
	}
	if p.Name != "set" {
		t.Errorf("Expected name 'set', got '%s'", p.Name)
	}
	if p.Parameters != "callback_t (*cb)(int)" {
		t.Errorf("Expected the raw parameter blob, got '%s'", p.Parameters)
	}
}
