package exec

import (
	"errors"
	"io"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/config"
	log "github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/manifest"
	"github.com/carbon-design-system/carb/pkg/schema"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// discoverWorkspace finds the workspace root above the working directory,
// attaches the project configuration to cfg when present and loads the
// workspace tree.
func discoverWorkspace(cfg *schema.CliConfiguration) (*workspace.Node, error) {
	root, err := workspace.FindRoot(cfg.WorkingDir)
	if err != nil {
		return nil, errUtils.Build(err).
			WithHint("Run carb from inside a JavaScript workspace, or pass --chdir <dir>").
			WithContext("dir", cfg.WorkingDir).
			Err()
	}

	if err := attachProjectConfig(cfg, root); err != nil {
		return nil, err
	}

	tree, err := workspace.Load(root)
	if err != nil {
		return nil, enrichDiscoveryError(err, root)
	}
	return tree, nil
}

func attachProjectConfig(cfg *schema.CliConfiguration, root string) error {
	project, err := config.LoadProject(root)
	switch {
	case err == nil:
		cfg.ProjectConfig = project
		return nil
	case errors.Is(err, errUtils.ErrConfigNotFound):
		log.Warn("carb is not initialized for this workspace, run `carb init`", "path", config.ProjectConfigPath(root))
		return nil
	default:
		return errUtils.Build(err).
			WithHintf("Fix or remove %s, then run `carb init`", config.ProjectConfigPath(root)).
			Err()
	}
}

func enrichDiscoveryError(err error, root string) error {
	b := errUtils.Build(err).WithContext("root", root)

	var parseErr *manifest.ParseError
	switch {
	case errors.As(err, &parseErr):
		b = b.WithHintf("Fix the JSON syntax in %s", parseErr.Path).WithContext("file", parseErr.Path)
	case errors.Is(err, errUtils.ErrWorkspaceRecursion):
		b = b.WithHint("A workspace pattern matches one of its own ancestors; narrow the pattern or remove the symlink")
	case errors.Is(err, errUtils.ErrInvalidWorkspacePattern):
		b = b.WithHint("Workspace patterns must be relative globs that stay inside the package directory")
	}
	return b.Err()
}

// enrichResolveError adds hints for errors from the resolver.
func enrichResolveError(err error) error {
	switch {
	case errors.Is(err, errUtils.ErrContainsCycle):
		return errUtils.Build(err).
			WithHint("Remove one of the dependencies on the cycle so the packages can be ordered").
			Err()
	case errors.Is(err, errUtils.ErrDuplicatePackageName):
		return errUtils.Build(err).
			WithHint("Every workspace package needs a unique \"name\" in package.json").
			Err()
	default:
		return err
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
