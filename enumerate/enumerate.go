package enumerate

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/xschemadev/linecount/fsys"
	"github.com/xschemadev/linecount/logger"
)

// SkippedDir is a subdirectory that could not be listed during a
// recursive walk
type SkippedDir struct {
	Path string
	Err  error
}

// Result holds the candidate files in visitation order
type Result struct {
	Paths   []string
	Skipped []SkippedDir
}

// frame is one directory on the walk stack
type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

// Enumerate lists the files under root. Without recursive only the direct
// children are considered. Directories are never returned.
//
// A root that is missing or not a directory yields an empty result. Failing
// to list root is returned as an error; failing to list a subdirectory is
// recorded in Result.Skipped and the walk carries on.
func Enumerate(files fsys.FileSystem, root string, recursive bool) (Result, error) {
	var res Result

	info, err := files.Stat(root)
	if err != nil || !info.IsDir() {
		logger.Debug("enumeration root is not a directory", "root", root, "error", err)
		return res, nil
	}

	entries, err := files.ReadDir(root)
	if err != nil {
		return res, fmt.Errorf("failed to list %s: %w", root, err)
	}

	// Frames keep their read position, so files come out in the same
	// pre-order a recursive walk would produce.
	stack := []*frame{{dir: root, entries: entries}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		full := filepath.Join(top.dir, entry.Name())
		isDir, descend := classify(files, full, entry)
		if !isDir {
			res.Paths = append(res.Paths, full)
			continue
		}
		if !recursive || !descend {
			continue
		}

		children, err := files.ReadDir(full)
		if err != nil {
			logger.Debug("skipping unreadable directory", "dir", full, "error", err)
			res.Skipped = append(res.Skipped, SkippedDir{Path: full, Err: err})
			continue
		}
		stack = append(stack, &frame{dir: full, entries: children})
	}

	logger.Debug("enumerated files", "root", root, "recursive", recursive, "files", len(res.Paths), "skipped_dirs", len(res.Skipped))
	return res, nil
}

// classify reports whether entry is a directory and whether the walk may
// descend into it. Symlinks are followed to decide the former but are never
// descended.
func classify(files fsys.FileSystem, full string, entry fs.DirEntry) (isDir, descend bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), entry.IsDir()
	}
	info, err := files.Stat(full)
	if err != nil {
		// dangling link: report it as a file and let counting fail on it
		return false, false
	}
	return info.IsDir(), false
}
