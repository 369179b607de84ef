// Package pipeline orchestrates a full collage build session: folder
// validation, grid composition, encoding and the atomic save.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oukeidos/picsq/internal/apperrors"
	"github.com/oukeidos/picsq/internal/collage"
	"github.com/oukeidos/picsq/internal/files"
	"github.com/oukeidos/picsq/internal/gallery"
	"github.com/oukeidos/picsq/internal/jpegx"
	"github.com/oukeidos/picsq/internal/logger"
)

// RunBuild executes the full collage pipeline. Exactly one result is
// produced per call; a failed build never leaves a partial output file.
func RunBuild(ctx context.Context, cfg Config) (BuildResult, error) {
	sessionID := uuid.NewString()

	var notes []string
	cfg, notes = cfg.Normalize()
	for _, note := range notes {
		logger.Warn("Config normalized", "session_id", sessionID, "detail", note)
	}
	if err := cfg.Validate(); err != nil {
		return failure(sessionID), fmt.Errorf("invalid configuration: %w", err)
	}

	// 1. Path validation
	absFolder, err := filepath.Abs(cfg.FolderPath)
	if err != nil {
		return failure(sessionID), fmt.Errorf("failed to resolve folder path: %w", err)
	}
	absOut, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		return failure(sessionID), fmt.Errorf("failed to resolve output path: %w", err)
	}
	info, err := os.Stat(absFolder)
	if err != nil {
		return failure(sessionID), fmt.Errorf("the selected folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return failure(sessionID), fmt.Errorf("%s is not a folder", absFolder)
	}
	if absOut == absFolder {
		return failure(sessionID), fmt.Errorf("output path and image folder are the same (%s)", absOut)
	}
	if err := files.RejectSymlinkPath(absOut); err != nil {
		return failure(sessionID), err
	}

	shouldOverwrite := cfg.Overwrite
	if _, err := os.Stat(absOut); err == nil {
		if cfg.OnConfirmOverwrite != nil {
			shouldOverwrite = cfg.OnConfirmOverwrite(absOut)
		}
		if !shouldOverwrite {
			logger.Info("Output file exists. Aborted by user.", "session_id", sessionID, "path", absOut)
			return BuildResult{Status: BuildStatusSkipped, SessionID: sessionID}, nil
		}
		logger.Info("Overwriting output file", "session_id", sessionID, "path", absOut)
	} else if !os.IsNotExist(err) {
		return failure(sessionID), fmt.Errorf("failed to stat output path: %w", err)
	}

	// 2. Validate the gallery and derive the grid dimension
	dimension, err := gallery.Validate(absFolder)
	if err != nil {
		return failure(sessionID), err
	}
	logger.Info("Folder validated",
		"session_id", sessionID,
		"folder", absFolder,
		"dimension", dimension,
		"images", dimension*dimension)

	// 3. Compose the collage
	canvas, err := collage.Build(ctx, collage.Params{
		Dir:         absFolder,
		TileSize:    cfg.TileSize,
		Dimension:   dimension,
		Concurrency: cfg.Concurrency,
		OnProgress:  cfg.OnProgress,
	})
	if err != nil {
		return failure(sessionID), err
	}
	edge := dimension * cfg.TileSize
	logger.Info("Collage composed", "session_id", sessionID, "size", fmt.Sprintf("%dx%d", edge, edge))

	// 4. Encode and save atomically
	data, err := jpegx.EncodeBytes(canvas, cfg.Quality, jpegx.DefaultDPI)
	if err != nil {
		return failure(sessionID), err
	}
	if err := files.AtomicWrite(absOut, data, 0644); err != nil {
		return failure(sessionID), apperrors.IO(absOut, err)
	}
	logger.Info("Collage saved", "session_id", sessionID, "path", absOut, "bytes", len(data))

	result := BuildResult{
		Status:     BuildStatusSuccess,
		SessionID:  sessionID,
		OutputPath: absOut,
		Dimension:  dimension,
		TileSize:   cfg.TileSize,
		EdgePixels: edge,
		TileCount:  dimension * dimension,
	}

	// 5. Optional bounded preview
	if cfg.PreviewPath != "" {
		previewPath, err := writePreview(canvas, cfg.PreviewPath)
		if err != nil {
			// The collage itself is saved; a preview failure is not terminal.
			logger.Warn("Preview write failed", "session_id", sessionID, "path", cfg.PreviewPath, "error", err)
		} else {
			result.PreviewPath = previewPath
			logger.Info("Preview saved", "session_id", sessionID, "path", previewPath)
		}
	}

	return result, nil
}

func writePreview(canvas *image.RGBA, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	small := collage.Preview(canvas, PreviewMaxEdge)
	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return "", err
	}
	if err := files.AtomicWrite(abs, buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return abs, nil
}

func failure(sessionID string) BuildResult {
	return BuildResult{Status: BuildStatusFailure, SessionID: sessionID}
}
