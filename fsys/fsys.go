package fsys

import (
	"io/fs"
	"os"
)

// FileSystem is the read-only slice of the filesystem the tool needs.
// Paths are native OS paths, not io/fs slash paths.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}

// OS is the FileSystem backed by the os package
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
