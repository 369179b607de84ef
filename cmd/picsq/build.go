package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oukeidos/picsq/internal/apperrors"
	"github.com/oukeidos/picsq/internal/cleanup"
	"github.com/oukeidos/picsq/internal/collage"
	"github.com/oukeidos/picsq/internal/files"
	"github.com/oukeidos/picsq/internal/logger"
	"github.com/oukeidos/picsq/internal/pictures"
	"github.com/oukeidos/picsq/internal/pipeline"
	"github.com/oukeidos/picsq/internal/prompt"
	"github.com/oukeidos/picsq/internal/worker"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	outputPath  string
	previewPath string
	tileSize    int
	concurrency int
	quality     int
	yes         bool
	logFilePath string
	debug       bool
}

func newBuildCmd() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build [folder] [output.jpg]",
		Short: "Build a square collage from a folder of images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, &opts)
		},
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addBuildFlags(cmd, &opts)
	return cmd
}

func addBuildFlags(cmd *cobra.Command, opts *buildOptions) {
	cmd.Flags().StringVarP(&opts.outputPath, "out", "o", pictures.DefaultOutput(), "Output JPEG path")
	cmd.Flags().StringVar(&opts.previewPath, "preview", "", "Also write a bounded PNG preview to this path")
	cmd.Flags().IntVar(&opts.tileSize, "tile-size", pipeline.DefaultTileSize, "Tile edge in pixels (100-1000, steps of 100)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", pipeline.DefaultConcurrency, "Number of concurrent tile workers (1-16)")
	cmd.Flags().IntVar(&opts.quality, "quality", 95, "JPEG quality (1-100)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func runBuild(cmd *cobra.Command, args []string, opts *buildOptions) error {
	folder := pictures.DefaultFolder()
	if len(args) > 0 {
		folder = args[0]
	}
	if len(args) > 1 && !cmd.Flags().Changed("out") {
		opts.outputPath = args[1]
	}
	if len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Warning: expected at most 2 arguments but got %d. Did you forget quotes around the paths?\n", len(args))
		fmt.Fprintf(os.Stderr, "  Using folder: %s\n", folder)
		fmt.Fprintf(os.Stderr, "  Using output: %s\n", opts.outputPath)
	}
	if err := validateOutputExtension(opts.outputPath); err != nil {
		return err
	}

	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	startTime := time.Now()

	cfg := pipeline.Config{
		FolderPath:  folder,
		OutputPath:  opts.outputPath,
		PreviewPath: opts.previewPath,
		TileSize:    opts.tileSize,
		Concurrency: opts.concurrency,
		Quality:     opts.quality,
		Overwrite:   opts.yes,
		OnProgress: func(p collage.Progress) {
			logger.Debug("Tile placed", "index", p.Index, "total", p.Total, "file", p.File)
		},
		OnConfirmOverwrite: func(path string) bool {
			confirmed, err := prompt.DefaultConfirmer().ConfirmOverwrite(path, opts.yes)
			if err != nil {
				logger.Error("Overwrite confirmation failed", "error", err)
				return false
			}
			return confirmed
		},
	}

	ctx, stop := signalContext()
	defer stop()

	var runner worker.Runner
	results, err := runner.Start(ctx, cfg)
	if err != nil {
		return err
	}
	res := <-results

	if res.Err != nil {
		if ctx.Err() != nil {
			logger.Warn("Build canceled", "error", res.Err)
			return nil
		}
		return fmt.Errorf("%s", apperrors.PublicMessage(res.Err))
	}

	printBuildStats(res.Build, time.Since(startTime))
	return nil
}

func printBuildStats(result pipeline.BuildResult, duration time.Duration) {
	if result.Status != pipeline.BuildStatusSuccess {
		return
	}
	fmt.Println("\n--- Collage Stats ---")
	fmt.Printf("Time: %s\n", duration)
	fmt.Printf("Grid: %dx%d (%d images)\n", result.Dimension, result.Dimension, result.TileCount)
	fmt.Printf("Size: %dx%d px (tile %d px)\n", result.EdgePixels, result.EdgePixels, result.TileSize)
	fmt.Printf("Output: %s\n", result.OutputPath)
	if result.PreviewPath != "" {
		fmt.Printf("Preview: %s\n", result.PreviewPath)
	}
}
