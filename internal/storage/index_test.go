package storage

import (
	"testing"

	"github.com/abdallahsaber065/cpp-helper/pkg/types"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestReplaceFileAndLookup(t *testing.T) {
	idx := openTestIndex(t)

	impls := []types.ImplRecord{
		{ClassName: "Widget", Name: "draw", Signature: "void Widget::draw() const", Line: 3},
		{ClassName: "", Name: "helper", Signature: "int helper(int x)", Line: 8},
	}
	if err := idx.ReplaceFile("src/widget.cpp", "hash-1", impls); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	found, err := idx.HasImplementation("Widget", "draw")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !found {
		t.Error("Member definition should be found")
	}

	found, err = idx.HasImplementation("", "helper")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !found {
		t.Error("Free definition should be found")
	}

	// A free lookup must not match the member, and vice versa.
	if found, _ := idx.HasImplementation("", "draw"); found {
		t.Error("Free lookup should not match a member definition")
	}
	if found, _ := idx.HasImplementation("Widget", "helper"); found {
		t.Error("Member lookup should not match a free definition")
	}
	if found, _ := idx.HasImplementation("Widget", "missing"); found {
		t.Error("Unknown function should not be found")
	}
}

func TestReplaceFileDropsOldRecords(t *testing.T) {
	idx := openTestIndex(t)

	first := []types.ImplRecord{{ClassName: "Widget", Name: "draw", Line: 3}}
	if err := idx.ReplaceFile("src/widget.cpp", "hash-1", first); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	second := []types.ImplRecord{{ClassName: "Widget", Name: "resize", Line: 3}}
	if err := idx.ReplaceFile("src/widget.cpp", "hash-2", second); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	if found, _ := idx.HasImplementation("Widget", "draw"); found {
		t.Error("Old record should be dropped on re-scan")
	}
	if found, _ := idx.HasImplementation("Widget", "resize"); !found {
		t.Error("New record should be present")
	}

	files, impls, err := idx.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if files != 1 || impls != 1 {
		t.Errorf("Expected 1 file / 1 implementation, got %d / %d", files, impls)
	}
}

func TestFileHashStaleness(t *testing.T) {
	idx := openTestIndex(t)

	if _, known, err := idx.FileHash("src/widget.cpp"); err != nil || known {
		t.Fatalf("Unscanned file should be unknown (known=%v, err=%v)", known, err)
	}

	content := []byte("void Widget::draw() {}\n")
	hash := HashContent(content)
	if err := idx.ReplaceFile("src/widget.cpp", hash, nil); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	stored, known, err := idx.FileHash("src/widget.cpp")
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}
	if !known || stored != hash {
		t.Errorf("Stored hash mismatch: known=%v stored=%s", known, stored)
	}

	if HashContent([]byte("changed")) == hash {
		t.Error("Different content must hash differently")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	idx, err := Open(dir)
	if err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	if err := idx.ReplaceFile("a.cpp", "h", []types.ImplRecord{{Name: "f", Line: 0}}); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}
	idx.Close()

	idx, err = Open(dir)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer idx.Close()

	if found, _ := idx.HasImplementation("", "f"); !found {
		t.Error("Records should survive a reopen")
	}
}
