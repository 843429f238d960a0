package exec

import (
	"errors"
	"fmt"
	"io"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/config"
	log "github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/schema"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// ExecuteInit writes the default project configuration at the workspace
// root, or in the working directory when it is not inside a workspace. An
// existing valid configuration is kept unless force is set.
func ExecuteInit(cfg *schema.CliConfiguration, force bool, out io.Writer) error {
	dir, err := workspace.FindRoot(cfg.WorkingDir)
	if err != nil {
		if !errors.Is(err, errUtils.ErrNoManifestFound) {
			return err
		}
		log.Debug("No package.json found, initializing in the working directory", "dir", cfg.WorkingDir)
		dir = cfg.WorkingDir
	}

	path := config.ProjectConfigPath(dir)
	if !force {
		if _, err := config.LoadProject(dir); err == nil {
			return writeString(out, fmt.Sprintf("%s carb is already initialized: %s\n", checkMark, path))
		}
	}

	if err := config.SaveProject(dir, schema.DefaultProjectConfig()); err != nil {
		return errUtils.Build(err).
			WithHintf("Check that %s is writable", dir).
			WithContext("path", path).
			Err()
	}
	return writeString(out, fmt.Sprintf("%s Wrote %s\n", checkMark, path))
}
