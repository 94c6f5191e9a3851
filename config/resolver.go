package config

import (
	"fmt"
	"strings"

	"github.com/xschemadev/linecount/filter"
	"github.com/xschemadev/linecount/fsys"
	"github.com/xschemadev/linecount/logger"
	"github.com/xschemadev/linecount/vocab"
)

// Resolver turns raw command-line tokens into a Config
type Resolver struct {
	vocab *vocab.Vocabulary
	fs    fsys.FileSystem
}

// NewResolver returns a resolver validating flags against v and paths
// against fs
func NewResolver(v *vocab.Vocabulary, fs fsys.FileSystem) *Resolver {
	return &Resolver{vocab: v, fs: fs}
}

// Resolve parses args, where args[0] is the program name and the last
// element is always the target path.
//
// Unknown flags are reported before anything else. Help and version then
// short-circuit without looking at the extension list or the path.
func (r *Resolver) Resolve(args []string) (Config, error) {
	if len(args) <= 1 {
		return Config{ShowHelp: true}, nil
	}

	var (
		cfg        Config
		help       bool
		version    bool
		filterFlag string
		filterRaw  *string
	)

	tokens := args[1:]
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if !vocab.IsFlag(token) {
			continue
		}

		opt, ok := r.vocab.Lookup(token)
		if !ok {
			return Config{}, fmt.Errorf("%w: unrecognized option %q", ErrInvalidArgument, token)
		}

		switch opt.Kind {
		case vocab.Filter:
			filterFlag = token
			filterRaw = nil
			if i+1 < len(tokens) {
				if _, known := r.vocab.Lookup(tokens[i+1]); !known {
					value := tokens[i+1]
					filterRaw = &value
					i++
				}
			}
		case vocab.Format:
			cfg.Format = opt.Format
		case vocab.Recursive:
			cfg.Recursive = true
		case vocab.Verbose:
			cfg.Verbose = true
		case vocab.DropExtensionless:
			cfg.FilterPolicy = filter.DropExtensionless
		case vocab.Help:
			help = true
		case vocab.Version:
			version = true
		}
	}

	if help {
		return Config{ShowHelp: true}, nil
	}
	if version {
		return Config{ShowVersion: true}, nil
	}

	if filterFlag != "" {
		if filterRaw == nil {
			return Config{}, fmt.Errorf("%w: %s expects a comma separated list of extensions", ErrMissingExtensionList, filterFlag)
		}
		cfg.Extensions = ParseExtensionList(*filterRaw)
		if len(cfg.Extensions) == 0 {
			return Config{}, fmt.Errorf("%w: %q contains no extensions", ErrMissingExtensionList, *filterRaw)
		}
	}

	path := args[len(args)-1]
	info, err := r.fs.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrPathNotFound, path, err)
	}
	cfg.Path = path
	cfg.PathIsDirectory = info.IsDir()

	logger.Debug("resolved config",
		"path", cfg.Path,
		"directory", cfg.PathIsDirectory,
		"extensions", cfg.Extensions,
		"format", cfg.Format,
		"recursive", cfg.Recursive)

	return cfg, nil
}

// ParseExtensionList splits raw on commas, keeps only ASCII letters of each
// segment, lower-cases them and drops empty and repeated entries. Order
// follows first occurrence.
func ParseExtensionList(raw string) []string {
	var exts []string
	seen := make(map[string]struct{})
	for _, segment := range strings.Split(raw, ",") {
		var b strings.Builder
		for i := 0; i < len(segment); i++ {
			c := segment[i]
			switch {
			case c >= 'a' && c <= 'z':
				b.WriteByte(c)
			case c >= 'A' && c <= 'Z':
				b.WriteByte(c + ('a' - 'A'))
			}
		}
		ext := b.String()
		if ext == "" {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	return exts
}
