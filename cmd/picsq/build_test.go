package main

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildCommand_EndToEnd(t *testing.T) {
	folder := seedImageFolder(t, 4)
	out := filepath.Join(t.TempDir(), "collage.jpg")

	_, err := executeCommand(t, "build", folder, out, "--tile-size", "100", "-y")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("output bounds = %v, want 200x200", b)
	}
}

func TestBuildCommand_RootShortcut(t *testing.T) {
	folder := seedImageFolder(t, 4)
	out := filepath.Join(t.TempDir(), "collage.jpg")

	if _, err := executeCommand(t, folder, out, "--tile-size", "100"); err != nil {
		t.Fatalf("root build failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestBuildCommand_RejectsBadOutputExtension(t *testing.T) {
	folder := seedImageFolder(t, 4)

	_, err := executeCommand(t, "build", folder, filepath.Join(t.TempDir(), "collage.tiff"))
	if err == nil {
		t.Fatalf("expected extension error")
	}
	if !strings.Contains(err.Error(), "unsupported output extension") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildCommand_NotSquareFolder(t *testing.T) {
	folder := seedImageFolder(t, 6)

	_, err := executeCommand(t, "build", folder, filepath.Join(t.TempDir(), "collage.jpg"))
	if err == nil {
		t.Fatalf("expected error for 6 images")
	}
	if !strings.Contains(err.Error(), "not a perfect square") {
		t.Fatalf("expected perfect square message, got: %v", err)
	}
}
