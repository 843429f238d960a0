package workspace

import (
	"fmt"
	"path/filepath"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/manifest"
)

// FindRoot returns the outermost directory among start and its ancestors
// that contains a package.json. Running from a nested package therefore
// still resolves the whole workspace.
func (l *Loader) FindRoot(start string) (string, error) {
	fs := l.fileSystem()
	log := l.logger()

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", errUtils.ErrNoManifestFound, start, err)
	}

	var root string
	for dir := abs; ; {
		if manifest.Exists(fs, dir) {
			log.Trace("Found manifest", "dir", dir)
			root = dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if root == "" {
		return "", fmt.Errorf("%w: searched %s", errUtils.ErrNoManifestFound, abs)
	}
	log.Debug("Resolved workspace root", "start", abs, "root", root)
	return root, nil
}

// FindRoot runs Loader.FindRoot with the OS filesystem and default logger.
func FindRoot(start string) (string, error) {
	return (&Loader{}).FindRoot(start)
}
