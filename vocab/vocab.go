package vocab

import (
	"strings"

	"github.com/xschemadev/linecount/format"
)

// Prefix marks a token as a flag rather than a positional value
const Prefix = "-"

// Kind is the effect an option has on the resolved configuration
type Kind int

const (
	Filter Kind = iota + 1
	Format
	Recursive
	Help
	Verbose
	Version
	DropExtensionless
)

// Option is one recognised flag token
type Option struct {
	Token  string
	Kind   Kind
	Format format.Format // only meaningful for Kind == Format
	Arg    string        // value placeholder shown in help, e.g. "<EXTENSIONS>"
	Usage  string
}

// Vocabulary is a closed, case-sensitive set of options
type Vocabulary struct {
	options []Option
	byToken map[string]int
}

// New builds a vocabulary from options. Later duplicates replace earlier ones.
func New(options ...Option) *Vocabulary {
	v := &Vocabulary{byToken: make(map[string]int, len(options))}
	for _, o := range options {
		if i, exists := v.byToken[o.Token]; exists {
			v.options[i] = o
			continue
		}
		v.byToken[o.Token] = len(v.options)
		v.options = append(v.options, o)
	}
	return v
}

// Default returns the vocabulary the CLI ships with
func Default() *Vocabulary {
	options := []Option{
		{Token: "-f", Kind: Filter, Arg: "<EXTENSIONS>", Usage: "Comma separated list of extensions, only files with these extensions are counted"},
		{Token: "--filter", Kind: Filter, Arg: "<EXTENSIONS>", Usage: "Same as -f"},
		{Token: "--filter-for-extensions", Kind: Filter, Arg: "<EXTENSIONS>", Usage: "Same as -f"},
	}
	for _, f := range format.Formats {
		options = append(options, Option{
			Token:  "--format=" + f.String(),
			Kind:   Format,
			Format: f,
			Usage:  "Print results as " + formatUsage[f],
		})
	}
	options = append(options,
		Option{Token: "-r", Kind: Recursive, Usage: "Search through subdirectories"},
		Option{Token: "--recursive", Kind: Recursive, Usage: "Same as -r"},
		Option{Token: "-v", Kind: Verbose, Usage: "Log debug information to stderr"},
		Option{Token: "--verbose", Kind: Verbose, Usage: "Same as -v"},
		Option{Token: "-h", Kind: Help, Usage: "Print help information"},
		Option{Token: "--help", Kind: Help, Usage: "Same as -h"},
		Option{Token: "--version", Kind: Version, Usage: "Print version information"},
	)
	return New(options...)
}

var formatUsage = map[format.Format]string{
	format.Default:  "\"path: N Lines\" (default)",
	format.Bullet:   "a \"*\" bullet list",
	format.Markdown: "a markdown \"-\" list",
	format.Numeric:  "a numbered list",
}

// Lookup finds the option for an exact token
func (v *Vocabulary) Lookup(token string) (Option, bool) {
	i, ok := v.byToken[token]
	if !ok {
		return Option{}, false
	}
	return v.options[i], true
}

// Options returns the options in registration order
func (v *Vocabulary) Options() []Option {
	out := make([]Option, len(v.options))
	copy(out, v.options)
	return out
}

// IsFlag reports whether token carries the flag prefix, known or not
func IsFlag(token string) bool {
	return strings.HasPrefix(token, Prefix)
}
