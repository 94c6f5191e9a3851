package cmd

import (
	"github.com/xschemadev/linecount/runner"
	"github.com/xschemadev/linecount/vocab"
)

// runOptions holds the knobs that are not exposed as flags
func runOptions(program string, v *vocab.Vocabulary) runner.Options {
	opts := runner.DefaultOptions()
	opts.Program = program
	opts.Version = version + " (" + commit + ", " + date + ")"
	opts.Vocabulary = v
	return opts
}
