package pipeline

import (
	"fmt"

	"github.com/oukeidos/picsq/internal/collage"
)

// Config holds all configuration required for one collage build session.
type Config struct {
	// IO Paths
	FolderPath  string
	OutputPath  string
	PreviewPath string // Optional: also write a bounded PNG preview

	// Build Parameters
	TileSize    int
	Concurrency int
	Quality     int

	// Flags
	Overwrite bool // If true, overwrite the output file without asking

	// Callbacks
	// OnProgress is called once per placed tile.
	OnProgress func(collage.Progress)

	// OnConfirmOverwrite is called when the output file exists.
	// It should return true if the file should be overwritten.
	OnConfirmOverwrite func(path string) bool
}

const (
	// Tile sizes are offered as a discrete set: 100..1000 in steps of 100.
	MinTileSize     = 100
	MaxTileSize     = 1000
	TileSizeStep    = 100
	DefaultTileSize = 400

	MinConcurrency     = 1
	MaxConcurrency     = 16
	DefaultConcurrency = 4

	// PreviewMaxEdge bounds the optional preview image.
	PreviewMaxEdge = 600
)

// ClampTileSize snaps value into the supported discrete set.
func ClampTileSize(value int) (int, bool) {
	if value <= 0 {
		return DefaultTileSize, true
	}
	if value < MinTileSize {
		return MinTileSize, true
	}
	if value > MaxTileSize {
		return MaxTileSize, true
	}
	snapped := ((value + TileSizeStep/2) / TileSizeStep) * TileSizeStep
	return snapped, snapped != value
}

func ClampConcurrency(value int) (int, bool) {
	if value < MinConcurrency {
		return MinConcurrency, true
	}
	if value > MaxConcurrency {
		return MaxConcurrency, true
	}
	return value, false
}

// Normalize applies safe bounds to config values and returns any adjustments.
func (c Config) Normalize() (Config, []string) {
	var notes []string
	if snapped, changed := ClampTileSize(c.TileSize); changed {
		notes = append(notes, fmt.Sprintf("tile-size adjusted from %d to %d (allowed: %d-%d in steps of %d)",
			c.TileSize, snapped, MinTileSize, MaxTileSize, TileSizeStep))
		c.TileSize = snapped
	}
	if clamped, changed := ClampConcurrency(c.Concurrency); changed {
		notes = append(notes, fmt.Sprintf("concurrency clamped from %d to %d (max %d)", c.Concurrency, clamped, MaxConcurrency))
		c.Concurrency = clamped
	}
	if c.Quality <= 0 || c.Quality > 100 {
		notes = append(notes, fmt.Sprintf("quality adjusted from %d to %d", c.Quality, 95))
		c.Quality = 95
	}
	return c, notes
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.FolderPath == "" {
		return fmt.Errorf("image folder path is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.TileSize < MinTileSize || c.TileSize > MaxTileSize {
		return fmt.Errorf("tile size must be between %d and %d, got %d", MinTileSize, MaxTileSize, c.TileSize)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be greater than 0, got %d", c.Concurrency)
	}
	return nil
}
