package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestOS(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var fsys FileSystem = OS{}

	info, err := fsys.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.txt" {
		t.Errorf("unexpected entries: %v", entries)
	}

	data, err := fsys.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := fsys.Stat(filepath.Join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMem(t *testing.T) {
	denied := errors.New("denied")
	m := Mem{
		FS: fstest.MapFS{
			"root/a.rs":     {Data: []byte("x\n")},
			"root/sub/b.rs": {Data: []byte("")},
		},
		Fail: map[string]error{"root/sub": denied},
	}

	if info, err := m.Stat("root"); err != nil || !info.IsDir() {
		t.Fatalf("Stat(root) = %v, %v", info, err)
	}
	if _, err := m.Stat("/root/a.rs"); err != nil {
		t.Errorf("leading slash should be tolerated: %v", err)
	}
	if data, err := m.ReadFile("root/./a.rs"); err != nil || string(data) != "x\n" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if _, err := m.ReadDir("root/sub"); !errors.Is(err, denied) {
		t.Errorf("expected injected failure, got %v", err)
	}
	if _, err := m.ReadFile("root/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
