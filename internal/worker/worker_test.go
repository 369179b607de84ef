package worker

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oukeidos/picsq/internal/collage"
	"github.com/oukeidos/picsq/internal/pipeline"
)

func seedFolder(t *testing.T, count int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < count; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(60 * i), G: 120, B: 200, A: 255})
			}
		}
		f, err := os.Create(filepath.Join(dir, string(rune('a'+i))+".png"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		f.Close()
	}
	return dir
}

func TestRunner_StartDeliversResult(t *testing.T) {
	folder := seedFolder(t, 4)
	out := filepath.Join(t.TempDir(), "collage.jpg")

	var r Runner
	results, err := r.Start(context.Background(), pipeline.Config{
		FolderPath:  folder,
		OutputPath:  out,
		TileSize:    100,
		Concurrency: 2,
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	select {
	case res := <-results:
		if res.Err != nil {
			t.Fatalf("build error: %v", res.Err)
		}
		if res.Build.Status != pipeline.BuildStatusSuccess {
			t.Fatalf("status = %q, want %q", res.Build.Status, pipeline.BuildStatusSuccess)
		}
	case <-time.After(30 * time.Second):
		t.Fatalf("timed out waiting for build result")
	}

	if r.Busy() {
		t.Fatalf("runner still busy after result delivery")
	}
}

func TestRunner_RejectsConcurrentStart(t *testing.T) {
	folder := seedFolder(t, 4)
	out := filepath.Join(t.TempDir(), "collage.jpg")

	release := make(chan struct{})
	var r Runner
	results, err := r.Start(context.Background(), pipeline.Config{
		FolderPath:  folder,
		OutputPath:  out,
		TileSize:    100,
		Concurrency: 1,
		OnProgress:  func(collage.Progress) { <-release },
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if !r.Busy() {
		t.Fatalf("runner should be busy while build is blocked")
	}
	if _, err := r.Start(context.Background(), pipeline.Config{}); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Start() = %v, want ErrBusy", err)
	}

	close(release)
	<-results
}

func TestRunner_ErrorStillFreesRunner(t *testing.T) {
	var r Runner
	results, err := r.Start(context.Background(), pipeline.Config{
		FolderPath:  filepath.Join(t.TempDir(), "missing"),
		OutputPath:  filepath.Join(t.TempDir(), "collage.jpg"),
		TileSize:    100,
		Concurrency: 1,
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	res := <-results
	if res.Err == nil {
		t.Fatalf("expected error for missing folder")
	}
	if res.Build.Status != pipeline.BuildStatusFailure {
		t.Fatalf("status = %q, want %q", res.Build.Status, pipeline.BuildStatusFailure)
	}
	if r.Busy() {
		t.Fatalf("runner must be free after a failed build")
	}
}
