package config

import (
	"errors"

	"github.com/xschemadev/linecount/filter"
	"github.com/xschemadev/linecount/format"
)

var (
	// ErrInvalidArgument is returned for a flag token outside the vocabulary
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingExtensionList is returned when a filter flag has no usable value
	ErrMissingExtensionList = errors.New("missing extension list")
	// ErrPathNotFound is returned when the target path does not exist
	ErrPathNotFound = errors.New("path not found")
)

// Config is the resolved plan for one invocation
type Config struct {
	Path            string
	PathIsDirectory bool

	// Filtering
	Extensions   []string // lower-case, ASCII letters only; empty means no filter
	FilterPolicy filter.Policy

	// Output behavior
	Format    format.Format
	Recursive bool
	Verbose   bool

	// Short-circuits; when either is set nothing else is acted upon
	ShowHelp    bool
	ShowVersion bool
}
