package main

import (
	"fmt"
	"os"

	"github.com/oukeidos/picsq/internal/cleanup"
	"github.com/oukeidos/picsq/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	buildOpts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "picsq",
		Short: "Square photo collage builder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !hasAnyFlagSet(cmd) {
				return cmd.Help()
			}
			if len(args) > 0 && isSubcommand(cmd, args[0]) {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return runBuild(cmd, args, &buildOpts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	addBuildFlags(cmd, &buildOpts)

	cmd.AddCommand(
		newAboutCmd(),
		newBuildCmd(),
		newInspectCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.Short = "picsq — Square photo collage builder"
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
