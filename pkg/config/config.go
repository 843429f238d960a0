package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/schema"
)

// settingKeys maps viper keys to the flag that sets them. Each key is also
// read from CARB_<KEY> with dots and dashes turned into underscores.
var settingKeys = map[string]string{
	"chdir":      ChdirFlag,
	"logs.level": LogsLevelFlag,
	"logs.file":  LogsFileFlag,
}

// InitCliConfig resolves the CLI settings for one invocation. Flags that
// were set explicitly win over CARB_* environment variables, which win over
// the defaults. flags may be nil or lack any of the carb flags.
func InitCliConfig(flags *pflag.FlagSet) (schema.CliConfiguration, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetDefault("logs.level", DefaultLogsLevel)
	v.SetDefault("logs.file", DefaultLogsFile)

	for key, flag := range settingKeys {
		if err := v.BindEnv(key); err != nil {
			return schema.CliConfiguration{}, fmt.Errorf("error binding %s environment variable: %w", key, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return schema.CliConfiguration{}, fmt.Errorf("error binding --%s flag: %w", flag, err)
			}
		}
	}

	var cfg schema.CliConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return schema.CliConfiguration{}, fmt.Errorf("%w: %w", errUtils.ErrConfigDeserialize, err)
	}

	dir, err := resolveWorkingDir(cfg.ChDir)
	if err != nil {
		return schema.CliConfiguration{}, err
	}
	cfg.WorkingDir = dir
	return cfg, nil
}

func resolveWorkingDir(chdir string) (string, error) {
	if chdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %w", errUtils.ErrInvalidChdir, err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(chdir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errUtils.ErrInvalidChdir, chdir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errUtils.ErrInvalidChdir, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", errUtils.ErrInvalidChdir, abs)
	}
	return abs, nil
}
