package fsys

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// Mem adapts an io/fs tree (typically a testing/fstest.MapFS) to
// FileSystem. Paths listed in Fail return that error from every method,
// which is how tests simulate unreadable files and directories.
type Mem struct {
	FS   fs.FS
	Fail map[string]error
}

func (m Mem) name(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

func (m Mem) failure(p string) error {
	if m.Fail == nil {
		return nil
	}
	return m.Fail[m.name(p)]
}

func (m Mem) Stat(name string) (fs.FileInfo, error) {
	if err := m.failure(name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fs.Stat(m.FS, m.name(name))
}

func (m Mem) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := m.failure(name); err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return fs.ReadDir(m.FS, m.name(name))
}

func (m Mem) ReadFile(name string) ([]byte, error) {
	if err := m.failure(name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return fs.ReadFile(m.FS, m.name(name))
}
