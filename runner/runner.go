package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/xschemadev/linecount/config"
	"github.com/xschemadev/linecount/counter"
	"github.com/xschemadev/linecount/enumerate"
	"github.com/xschemadev/linecount/filter"
	"github.com/xschemadev/linecount/format"
	"github.com/xschemadev/linecount/fsys"
	"github.com/xschemadev/linecount/logger"
	"github.com/xschemadev/linecount/ui"
	"github.com/xschemadev/linecount/vocab"
)

// State is a step of a run
type State int

const (
	Start State = iota
	ShowHelp
	ProcessFile
	ProcessDirectory
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case ShowHelp:
		return "show-help"
	case ProcessFile:
		return "process-file"
	case ProcessDirectory:
		return "process-directory"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures a Runner
type Options struct {
	Program    string
	Version    string            // printed for --version
	Vocabulary *vocab.Vocabulary // used to render help
	Workers    int               // files counted in parallel in directory mode
	Spinner    bool              // show a spinner while enumerating on a terminal
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Program:    "linecount",
		Version:    "dev",
		Vocabulary: vocab.Default(),
		Workers:    runtime.NumCPU(),
		Spinner:    true,
	}
}

// Summary describes a finished run
type Summary struct {
	State    State
	Printed  int     // result lines written
	Warnings []error // per-file and per-directory failures in directory mode
}

// Runner executes a resolved Config
type Runner struct {
	fs   fsys.FileSystem
	opts Options
}

func New(fs fsys.FileSystem, opts Options) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Vocabulary == nil {
		opts.Vocabulary = vocab.Default()
	}
	return &Runner{fs: fs, opts: opts}
}

// Run executes cfg, writing result lines to stdout and warnings to stderr.
// Help and version end in ShowHelp, completed runs in Done. Errors are only
// returned for fatal failures, with the summary in Failed.
func (r *Runner) Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (Summary, error) {
	switch {
	case cfg.ShowHelp:
		ui.Help(stdout, r.opts.Program, r.opts.Vocabulary)
		return Summary{State: ShowHelp}, nil
	case cfg.ShowVersion:
		ui.Line(stdout, r.opts.Program+" "+r.opts.Version)
		return Summary{State: ShowHelp}, nil
	case !cfg.PathIsDirectory:
		return r.processFile(cfg, stdout)
	default:
		return r.processDirectory(ctx, cfg, stdout, stderr)
	}
}

// processFile counts a single file. Any failure is fatal and the
// configured format is ignored.
func (r *Runner) processFile(cfg config.Config, stdout io.Writer) (Summary, error) {
	logger.Debug("processing file", "path", cfg.Path)

	count, err := counter.CountLinesOfFile(r.fs, cfg.Path)
	if err != nil {
		return Summary{State: Failed}, err
	}
	ui.Line(stdout, format.FormatLine(1, cfg.Path, count, format.Default))
	return Summary{State: Done, Printed: 1}, nil
}

// fileResult is the outcome for one candidate, stored by enumeration index
type fileResult struct {
	count int
	err   error
}

func (r *Runner) processDirectory(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (Summary, error) {
	logger.Debug("processing directory", "path", cfg.Path, "recursive", cfg.Recursive)

	var listing enumerate.Result
	enumerateFn := func() error {
		var err error
		listing, err = enumerate.Enumerate(r.fs, cfg.Path, cfg.Recursive)
		return err
	}

	var err error
	if r.opts.Spinner {
		err = ui.RunWithSpinner("Scanning "+cfg.Path+"...", enumerateFn)
	} else {
		err = enumerateFn()
	}
	if err != nil {
		return Summary{State: Failed}, err
	}

	summary := Summary{State: Done}
	for _, s := range listing.Skipped {
		warning := fmt.Errorf("skipped directory %s: %w", s.Path, s.Err)
		summary.Warnings = append(summary.Warnings, warning)
		ui.WarnMsg(stderr, warning.Error())
	}

	paths := filter.Filter(listing.Paths, cfg.Extensions, cfg.FilterPolicy)
	logger.Debug("filtered candidates", "before", len(listing.Paths), "after", len(paths), "extensions", cfg.Extensions)

	results, err := r.countAll(ctx, paths)
	if err != nil {
		return Summary{State: Failed, Warnings: summary.Warnings}, err
	}

	index := 1
	for i, p := range paths {
		res := results[i]
		if res.err != nil {
			summary.Warnings = append(summary.Warnings, res.err)
			ui.WarnMsg(stderr, res.err.Error())
			continue
		}
		ui.Line(stdout, format.FormatLine(index, p, res.count, cfg.Format))
		index++
		summary.Printed++
	}

	logger.Debug("directory done", "printed", summary.Printed, "warnings", len(summary.Warnings))
	return summary, nil
}

// countAll counts every path on a bounded pool. Per-file failures are kept
// in the result slot rather than stopping the group; only cancellation
// aborts.
func (r *Runner) countAll(ctx context.Context, paths []string) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			count, err := counter.CountLinesOfFile(r.fs, p)
			results[i] = fileResult{count: count, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
