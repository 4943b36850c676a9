// Package debug provides the append-only file sink behind tautui's debug log.
//
// Nothing is opened until Open is called; importing the package has no effect
// on the filesystem.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultPath is used when Open is given an empty path.
const DefaultPath = "tautui-debug.log"

// File is a debug log file. Every write is synced so a crashing program
// still leaves its last lines on disk.
type File struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// Open opens path for appending, creating it and its parent directories.
func Open(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	return &File{f: f, path: path}, nil
}

// Path returns the file's path.
func (d *File) Path() string {
	return d.path
}

// Write implements io.Writer.
func (d *File) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.f == nil {
		return 0, os.ErrClosed
	}
	n, err := d.f.Write(p)
	if err != nil {
		return n, err
	}
	return n, d.f.Sync()
}

// Close closes the file. Closing twice is a no-op.
func (d *File) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.f == nil {
		return nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}
