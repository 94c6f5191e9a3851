package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the command. Cobra's flag parsing is disabled: every
// token goes to the resolver, which owns the option vocabulary.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "linecount [OPTIONS]... PATH",
		Short:              "Count lines of a file or of the files in a directory",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               runCount,
	}
}

var rootCmd = newRootCmd()

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
