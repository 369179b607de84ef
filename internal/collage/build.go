// Package collage composes a square grid of resized source images into
// one output image.
package collage

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"sync"

	"github.com/nfnt/resize"

	"github.com/oukeidos/picsq/internal/apperrors"
	"github.com/oukeidos/picsq/internal/gallery"
)

// Progress reports one placed tile.
type Progress struct {
	Index int
	Total int
	File  string
}

// Params describes one collage build.
type Params struct {
	// Dir is the source folder; it must contain exactly Dimension^2
	// recognized images.
	Dir string
	// TileSize is the pixel edge length each source image is stretched to.
	TileSize int
	// Dimension is the grid side length in tiles.
	Dimension int
	// Concurrency bounds the tile decode/resize worker pool. Values
	// below 1 run sequentially.
	Concurrency int
	// OnProgress, if set, is called once per placed tile. It may be
	// called from multiple goroutines.
	OnProgress func(Progress)
}

// Build loads every image in p.Dir, stretches each to a
// TileSize×TileSize square and composites them row-major by filename
// order onto a (Dimension*TileSize)^2 canvas. Tiles land in disjoint
// canvas regions, so workers write without a lock; the first failure
// cancels the remaining tiles and no partial canvas is ever returned.
func Build(ctx context.Context, p Params) (*image.RGBA, error) {
	if p.TileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", p.TileSize)
	}
	if p.Dimension <= 0 {
		return nil, fmt.Errorf("grid dimension must be positive, got %d", p.Dimension)
	}

	paths, err := gallery.Scan(p.Dir)
	if err != nil {
		return nil, err
	}
	want := p.Dimension * p.Dimension
	if len(paths) != want {
		return nil, apperrors.CountMismatch(want, len(paths))
	}

	edge := p.Dimension * p.TileSize
	canvas := image.NewRGBA(image.Rect(0, 0, edge, edge))

	workers := p.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	jobs := make(chan int, len(paths))
	for k := range paths {
		jobs <- k
	}
	close(jobs)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				img, err := loadImage(paths[k])
				if err != nil {
					fail(apperrors.Decode(filepath.Base(paths[k]), err))
					return
				}

				// Stretch, not crop: aspect ratio is intentionally ignored.
				tile := resize.Resize(uint(p.TileSize), uint(p.TileSize), img, resize.Lanczos3)

				row := k / p.Dimension
				col := k % p.Dimension
				dst := image.Rect(col*p.TileSize, row*p.TileSize, (col+1)*p.TileSize, (row+1)*p.TileSize)
				draw.Draw(canvas, dst, tile, tile.Bounds().Min, draw.Src)

				if p.OnProgress != nil {
					p.OnProgress(Progress{Index: k, Total: len(paths), File: filepath.Base(paths[k])})
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return canvas, nil
}
