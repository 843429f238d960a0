// Package xdg resolves carb's per-user cache directory.
//
// CARB_XDG_CACHE_HOME takes precedence over the standard XDG_CACHE_HOME
// variable, which takes precedence over the platform
// defaults from github.com/adrg/xdg.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const appName = "carb"

// GetXDGCacheDir returns (and creates) <cache home>/carb/<subpath>.
func GetXDGCacheDir(subpath string, perm os.FileMode) (string, error) {
	return getXDGDir("XDG_CACHE_HOME", "CARB_XDG_CACHE_HOME", adrg.CacheHome, subpath, perm)
}

func getXDGDir(xdgVar, carbVar, fallback, subpath string, perm os.FileMode) (string, error) {
	base, err := baseDir(xdgVar, carbVar, fallback)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, appName)
	if subpath != "" {
		dir = filepath.Join(dir, subpath)
	}

	if err := os.MkdirAll(dir, perm); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}

func baseDir(xdgVar, carbVar, fallback string) (string, error) {
	v := viper.New()
	if err := v.BindEnv(xdgVar, carbVar, xdgVar); err != nil {
		return "", fmt.Errorf("error binding %s environment variables: %w", xdgVar, err)
	}
	if custom := v.GetString(xdgVar); custom != "" {
		return custom, nil
	}
	return fallback, nil
}
