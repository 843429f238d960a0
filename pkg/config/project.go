package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/filesystem"
	log "github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/schema"
)

// ProjectConfigPath returns the path of the project configuration for the
// workspace rooted at dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// LoadProject reads the project configuration of the workspace rooted at
// dir. A missing file wraps errUtils.ErrConfigNotFound.
func LoadProject(dir string) (*schema.ProjectConfig, error) {
	path := ProjectConfigPath(dir)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errUtils.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrConfigDeserialize, path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrConfigDeserialize, path, err)
	}

	var cfg schema.ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrConfigDeserialize, path, err)
	}
	if cfg.Version != schema.ConfigVersionPrerelease {
		return nil, fmt.Errorf("%w: %q in %s (expected %q)", errUtils.ErrUnsupportedConfigVersion, cfg.Version, path, schema.ConfigVersionPrerelease)
	}

	log.Trace("Loaded project configuration", "path", path, "version", cfg.Version)
	return &cfg, nil
}

// SaveProject writes cfg to the project configuration of the workspace
// rooted at dir, creating the configuration directory when needed. The
// file is replaced atomically.
func SaveProject(dir string, cfg schema.ProjectConfig) error {
	return saveProject(filesystem.NewOSFileSystem(), dir, cfg)
}

func saveProject(fs filesystem.FileSystem, dir string, cfg schema.ProjectConfig) error {
	path := ProjectConfigPath(dir)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrConfigSerialize, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrConfigSerialize, err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrConfigWrite, filepath.Dir(path), err)
	}
	if err := fs.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrConfigWrite, path, err)
	}

	log.Debug("Wrote project configuration", "path", path)
	return nil
}
