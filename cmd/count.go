package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xschemadev/linecount/config"
	"github.com/xschemadev/linecount/counter"
	"github.com/xschemadev/linecount/fsys"
	"github.com/xschemadev/linecount/logger"
	"github.com/xschemadev/linecount/runner"
	"github.com/xschemadev/linecount/ui"
	"github.com/xschemadev/linecount/vocab"
)

func runCount(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	program := cmd.Name()

	files := fsys.OS{}
	v := vocab.Default()

	// The resolver expects the program name in front, like os.Args
	cfg, err := config.NewResolver(v, files).Resolve(append([]string{program}, args...))
	if err != nil {
		ui.ErrorMsg(stderr, "Invalid arguments", err, resolveHint(program, err))
		return err
	}

	logger.SetLogger(logger.New(stderr, cfg.Verbose))

	summary, err := runner.New(files, runOptions(program, v)).Run(cmd.Context(), cfg, stdout, stderr)
	if err != nil {
		var ue *counter.UnreadableError
		if errors.As(err, &ue) {
			ui.ErrorMsg(stderr, fmt.Sprintf("Failed to count lines of %s", ue.Path), ue.Err)
		} else {
			ui.ErrorMsg(stderr, "Failed to count lines", err)
		}
		return err
	}

	logger.Debug("run finished", "state", summary.State, "printed", summary.Printed, "warnings", len(summary.Warnings))
	return nil
}

func resolveHint(program string, err error) string {
	switch {
	case errors.Is(err, config.ErrPathNotFound):
		return "The last argument must be an existing file or directory"
	case errors.Is(err, config.ErrMissingExtensionList):
		return "Pass extensions after the filter flag, e.g. -f rs,toml"
	default:
		return fmt.Sprintf("Run %s --help to see the available options", program)
	}
}
