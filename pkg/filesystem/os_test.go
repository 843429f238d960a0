package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_WriteAndRead(t *testing.T) {
	fs := NewOSFileSystem()
	dir := filepath.Join(t.TempDir(), "nested")
	require.NoError(t, fs.MkdirAll(dir, 0o755))

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, fs.WriteFile(path, []byte("version: prerelease\n"), 0o644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version: prerelease\n", string(data))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestOSFileSystem_WriteFileReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, WriteFileAtomic(path, []byte("one"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("two"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestOSFileSystem_RemoveAllAndWalk(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "f"), nil, 0o644))

	var seen int
	require.NoError(t, fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		seen++
		return err
	}))
	assert.Equal(t, 4, seen)

	require.NoError(t, fs.RemoveAll(filepath.Join(root, "a")))
	_, err := os.Stat(filepath.Join(root, "a"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSFileSystem_EvalSymlinks(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}

func TestDoublestarGlobMatcher_Glob(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"packages/ui", "packages/core", "tools/lint/nested"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "single star", pattern: "packages/*", want: []string{"packages/core", "packages/ui"}},
		{name: "alternation", pattern: "{packages,tools}/*", want: []string{"packages/core", "packages/ui", "tools/lint"}},
		{name: "literal", pattern: "tools/lint", want: []string{"tools/lint"}},
		{name: "no match", pattern: "apps/*", want: nil},
	}

	g := NewGlobMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Glob(root, tt.pattern)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDoublestarGlobMatcher_BadPattern(t *testing.T) {
	_, err := NewGlobMatcher().Glob(t.TempDir(), "packages/[")
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}
