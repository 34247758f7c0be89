// Package atomicfile writes a file to a temporary location and moves it into
// place on close, so readers never observe partially written files.
package atomicfile

import (
	"os"
	"path/filepath"
)

// File behaves like an os.File, but the data only appears under the target
// path after a successful Close.
type File struct {
	f    *os.File
	path string
}

// New creates a temporary file next to the target path.
func New(path string) (*File, error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".wip-")
	if err != nil {
		return nil, err
	}
	return &File{f: f, path: path}, nil
}

func (f *File) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// Close flushes the temporary file and renames it to the target path.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return err
	}
	return os.Rename(f.f.Name(), f.path)
}

// Abort discards the temporary file.
func (f *File) Abort() error {
	if err := f.f.Close(); err != nil {
		return err
	}
	return os.Remove(f.f.Name())
}
