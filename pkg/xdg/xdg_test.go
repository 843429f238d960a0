package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGCacheDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tempHome, ".cache"))
	t.Setenv("CARB_XDG_CACHE_HOME", "")

	dir, err := GetXDGCacheDir("test", 0o755)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, ".cache", "carb", "test"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetXDGCacheDir_CarbOverride(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tempHome, ".cache"))
	t.Setenv("CARB_XDG_CACHE_HOME", filepath.Join(tempHome, "custom-cache"))

	dir, err := GetXDGCacheDir("test", 0o755)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, "custom-cache", "carb", "test"), dir)
}

func TestGetXDGDir_EmptySubpath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tempHome, ".cache"))
	t.Setenv("CARB_XDG_CACHE_HOME", "")

	dir, err := GetXDGCacheDir("", 0o755)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempHome, ".cache", "carb"), dir)
}

func TestGetXDGDir_MkdirError(t *testing.T) {
	tempHome := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempHome, "carb"), []byte("blocking"), 0o644))
	t.Setenv("XDG_CACHE_HOME", tempHome)
	t.Setenv("CARB_XDG_CACHE_HOME", "")

	_, err := GetXDGCacheDir("test", 0o755)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}
