package persist

import (
	"os"
	"path/filepath"
	"testing"
)

func testFile(t *testing.T) *File {
	t.Helper()
	return OpenFile(filepath.Join(t.TempDir(), "state.yaml"))
}

func TestFileReadMissingFile(t *testing.T) {
	f := testFile(t)

	if got := f.ReadString("MRU Files", "1", "none"); got != "none" {
		t.Errorf("ReadString = %q, want none", got)
	}
}

func TestFileWriteRead(t *testing.T) {
	f := testFile(t)

	if err := f.WriteString("MRU Files", "1", "/tmp/a.txt"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.WriteString("MRU Files", "2", "/tmp/b.txt"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	if got := f.ReadString("MRU Files", "1", ""); got != "/tmp/a.txt" {
		t.Errorf("key 1 = %q, want /tmp/a.txt", got)
	}
	if got := f.ReadString("MRU Files", "2", ""); got != "/tmp/b.txt" {
		t.Errorf("key 2 = %q, want /tmp/b.txt", got)
	}
}

func TestFileEraseSection(t *testing.T) {
	f := testFile(t)

	if err := f.WriteString("MRU Files", "1", "/tmp/a.txt"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.WriteString("State", "Last Opened", "/tmp/a.txt"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	if err := f.EraseSection("MRU Files"); err != nil {
		t.Fatalf("EraseSection: %v", err)
	}

	if got := f.ReadString("MRU Files", "1", ""); got != "" {
		t.Errorf("erased key = %q, want empty", got)
	}
	if got := f.ReadString("State", "Last Opened", ""); got != "/tmp/a.txt" {
		t.Errorf("State section = %q, want /tmp/a.txt", got)
	}
}

func TestFileEraseMissingSection(t *testing.T) {
	f := testFile(t)

	if err := f.EraseSection("MRU Files"); err != nil {
		t.Fatalf("EraseSection on empty store: %v", err)
	}
	// No file should have been created for a no-op erase.
	if _, err := os.Stat(f.Path); !os.IsNotExist(err) {
		t.Errorf("state file created by no-op erase (stat err = %v)", err)
	}
}

func TestFileCorruptStateFile(t *testing.T) {
	f := testFile(t)

	if err := os.WriteFile(f.Path, []byte("not: [valid: yaml"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	// Corrupt state reads as absence, not an error.
	if got := f.ReadString("MRU Files", "1", "fallback"); got != "fallback" {
		t.Errorf("ReadString = %q, want fallback", got)
	}
}

func TestOpenFactory(t *testing.T) {
	dir := t.TempDir()

	a, err := Open("file", filepath.Join(dir, "state.yaml"), testLocation())
	if err != nil {
		t.Fatalf("Open file backend: %v", err)
	}
	defer a.Close()
	if _, ok := a.(*File); !ok {
		t.Errorf("Open(file) = %T, want *File", a)
	}

	b, err := Open("sqlite", filepath.Join(dir, "kv.db"), testLocation())
	if err != nil {
		t.Fatalf("Open sqlite backend: %v", err)
	}
	defer b.Close()
	if _, ok := b.(*SQLite); !ok {
		t.Errorf("Open(sqlite) = %T, want *SQLite", b)
	}

	if _, err := Open("registry", "", testLocation()); err == nil {
		t.Error("Open(registry) succeeded, want error for unknown backend")
	}
}
