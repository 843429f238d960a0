package filesystem

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// OSFileSystem implements FileSystem with the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns the OS-backed FileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return WriteFileAtomic(name, data, perm)
}

func (OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (OSFileSystem) Walk(root string, fn filepath.WalkFunc) error {
	return filepath.Walk(root, fn)
}

// DoublestarGlobMatcher implements GlobMatcher with bmatcuk/doublestar,
// which adds ** and {a,b} alternation on top of path.Match syntax.
type DoublestarGlobMatcher struct{}

// NewGlobMatcher returns the doublestar-backed GlobMatcher.
func NewGlobMatcher() *DoublestarGlobMatcher {
	return &DoublestarGlobMatcher{}
}

func (DoublestarGlobMatcher) Glob(dir, pattern string) ([]string, error) {
	return doublestar.Glob(os.DirFS(dir), pattern)
}
