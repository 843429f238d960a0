package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/filesystem"
)

// Path returns the manifest path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether dir contains a manifest file.
func Exists(fs filesystem.FileSystem, dir string) bool {
	info, err := fs.Stat(Path(dir))
	return err == nil && !info.IsDir()
}

// Load reads and parses the manifest in dir. Read failures wrap
// errUtils.ErrManifestRead; decode failures are *ParseError.
func Load(fs filesystem.FileSystem, dir string) (*Manifest, error) {
	path := Path(dir)

	contents, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist", errUtils.ErrManifestRead, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrManifestRead, path, err)
	}

	m, err := Parse(contents)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return m, nil
}
