package main

import (
	"fmt"

	"github.com/oukeidos/picsq/internal/apperrors"
	"github.com/oukeidos/picsq/internal/gallery"
	"github.com/oukeidos/picsq/internal/pictures"
	"github.com/oukeidos/picsq/internal/pipeline"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var tileSize int
	cmd := &cobra.Command{
		Use:   "inspect [folder]",
		Short: "Check whether a folder can become a square collage",
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := pictures.DefaultFolder()
			if len(args) > 0 {
				folder = args[0]
			}
			return runInspect(cmd, folder, tileSize)
		},
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.Flags().IntVar(&tileSize, "tile-size", pipeline.DefaultTileSize, "Tile edge in pixels (100-1000, steps of 100)")
	return cmd
}

func runInspect(cmd *cobra.Command, folder string, tileSize int) error {
	out := cmd.OutOrStdout()

	dimension, err := gallery.Validate(folder)
	if err != nil {
		return fmt.Errorf("%s", apperrors.PublicMessage(err))
	}

	tileSize, _ = pipeline.ClampTileSize(tileSize)
	edge := dimension * tileSize

	fmt.Fprintf(out, "Folder: %s\n", folder)
	fmt.Fprintf(out, "Grid: %dx%d (%d images)\n", dimension, dimension, dimension*dimension)
	fmt.Fprintf(out, "Collage size at tile %d px: %dx%d px\n", tileSize, edge, edge)
	return nil
}
