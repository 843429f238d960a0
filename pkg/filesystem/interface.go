package filesystem

import (
	"os"
	"path/filepath"
)

// FileSystem defines the filesystem operations carb performs, so discovery
// and the config store can be exercised against mocks.
//
//go:generate go run go.uber.org/mock/mockgen@latest -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type FileSystem interface {
	// ReadFile reads a whole file.
	ReadFile(name string) ([]byte, error)

	// Stat returns file info, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// EvalSymlinks returns the path with all symbolic links resolved.
	EvalSymlinks(path string) (string, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to a file atomically.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// RemoveAll removes a path and any children.
	RemoveAll(path string) error

	// Walk walks the file tree rooted at root.
	Walk(root string, fn filepath.WalkFunc) error
}

// GlobMatcher expands glob patterns against a directory.
//
//go:generate go run go.uber.org/mock/mockgen@latest -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type GlobMatcher interface {
	// Glob returns the entries below dir matching pattern, as slash-separated
	// paths relative to dir. Invalid patterns return doublestar.ErrBadPattern.
	Glob(dir, pattern string) ([]string, error)
}
