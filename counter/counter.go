package counter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xschemadev/linecount/fsys"
)

// ErrUnreadable is matched by every error CountLinesOfFile returns
var ErrUnreadable = errors.New("unreadable file")

// errInvalidUTF8 is the cause recorded for files that are not text
var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// UnreadableError names the file that could not be read or decoded
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("could not read contents of %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

func (e *UnreadableError) Is(target error) bool { return target == ErrUnreadable }

// CountLines returns the number of '\n' characters in text.
// A final line without a terminator is not counted.
func CountLines(text string) int {
	return strings.Count(text, "\n")
}

// CountLinesOfFile reads the whole file at path and counts its newlines
func CountLinesOfFile(fs fsys.FileSystem, path string) (int, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return 0, &UnreadableError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return 0, &UnreadableError{Path: path, Err: errInvalidUTF8}
	}
	return CountLines(string(data)), nil
}
