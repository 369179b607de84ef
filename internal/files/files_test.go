package files

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestAtomicWrite_WritesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collage.jpg")

	if err := AtomicWrite(path, []byte("payload"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("content = %q, want %q", data, "payload")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWrite_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collage.jpg")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("seed write: %v", err)
	}

	if err := AtomicWrite(path, []byte("new"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("content = %q, want %q", data, "new")
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "collage.jpg")
	if err := AtomicWrite(path, []byte("x"), 0644); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestRejectSymlinkPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := RejectSymlinkPath(filepath.Join(link, "collage.jpg")); err == nil {
		t.Fatalf("expected rejection for symlinked parent")
	}
	if err := RejectSymlinkPath(filepath.Join(target, "collage.jpg")); err != nil {
		t.Fatalf("unexpected rejection for plain path: %v", err)
	}
	if err := RejectSymlinkPath(" "); err == nil {
		t.Fatalf("expected rejection for empty path")
	}
}
