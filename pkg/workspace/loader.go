// Package workspace discovers the packages of a monorepo by walking
// package.json "workspaces" globs from the workspace root.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/filesystem"
	"github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/manifest"
)

// Loader loads workspace trees. The zero value uses the OS filesystem,
// doublestar globbing and the default logger. A Loader holds no state
// between calls.
type Loader struct {
	FS     filesystem.FileSystem
	Glob   filesystem.GlobMatcher
	Logger *logger.Logger
}

// Load reads the package at dir and, recursively, every package matched by
// its workspace patterns. Any failure aborts the whole load; no partial
// tree is returned.
func (l *Loader) Load(dir string) (*Node, error) {
	log := l.logger()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrManifestRead, dir, err)
	}
	canonical, err := l.fileSystem().EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrManifestRead, abs, err)
	}

	log.Debug("Workspace discovery started", "root", canonical)
	s := &loadState{
		loaded: make(map[string]bool),
		onPath: make(map[string]bool),
	}
	root, err := l.load(s, canonical)
	if err != nil {
		log.Debug("Workspace discovery failed", "root", canonical, "err", err)
		return nil, err
	}
	log.Debug("Workspace discovery finished", "root", canonical, "packages", len(s.loaded))
	return root, nil
}

// Load runs Loader.Load with the OS filesystem and default logger.
func Load(dir string) (*Node, error) {
	return (&Loader{}).Load(dir)
}

type loadState struct {
	// loaded holds every canonical directory already in the tree.
	loaded map[string]bool
	// onPath holds the canonical directories of the current descent.
	onPath map[string]bool
}

func (l *Loader) load(s *loadState, dir string) (*Node, error) {
	log := l.logger()

	m, err := manifest.Load(l.fileSystem(), dir)
	if err != nil {
		return nil, err
	}
	log.Trace("Loaded package", "package", m.Name, "dir", dir)

	s.loaded[dir] = true
	s.onPath[dir] = true
	defer delete(s.onPath, dir)

	node := &Node{Dir: dir, Manifest: m}

	matches, err := l.expand(dir, m.Workspaces)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		switch {
		case s.onPath[match]:
			return nil, fmt.Errorf("%w: %s matched by workspaces of %s", errUtils.ErrWorkspaceRecursion, match, manifest.Path(dir))
		case s.loaded[match]:
			log.Debug("Skipping workspace already loaded", "dir", match)
			continue
		case !manifest.Exists(l.fileSystem(), match):
			log.Debug("Skipping workspace match without package.json", "dir", match)
			continue
		}

		child, err := l.load(s, match)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// expand resolves patterns against dir and returns the matched directories
// as canonical paths, in first-match order with duplicates removed. A
// pattern starting with "!" removes directories matched so far.
func (l *Loader) expand(dir string, patterns []string) ([]string, error) {
	fs := l.fileSystem()
	var out []string
	seen := make(map[string]bool)

	for _, raw := range patterns {
		pattern, exclude := strings.CutPrefix(raw, "!")
		clean, err := cleanPattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %s: %w", errUtils.ErrInvalidWorkspacePattern, raw, manifest.Path(dir), err)
		}

		matches, err := l.glob().Glob(dir, clean)
		if err != nil {
			if errors.Is(err, doublestar.ErrBadPattern) {
				return nil, fmt.Errorf("%w: %q in %s", errUtils.ErrInvalidWorkspacePattern, raw, manifest.Path(dir))
			}
			return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrWorkspaceDirectoryListed, dir, err)
		}
		slices.Sort(matches)

		for _, rel := range matches {
			if inNodeModules(rel) {
				continue
			}
			full := filepath.Join(dir, filepath.FromSlash(rel))
			info, err := fs.Stat(full)
			if err != nil {
				// Dangling symlinks are not workspaces.
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrWorkspaceDirectoryListed, full, err)
			}
			if !info.IsDir() {
				continue
			}
			canonical, err := fs.EvalSymlinks(full)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrWorkspaceDirectoryListed, full, err)
			}

			if exclude {
				if seen[canonical] {
					delete(seen, canonical)
					out = lo.Without(out, canonical)
				}
				continue
			}
			if seen[canonical] {
				continue
			}
			seen[canonical] = true
			out = append(out, canonical)
		}
	}

	return out, nil
}

var errEscapesDirectory = errors.New("pattern must stay inside the package directory")

func cleanPattern(pattern string) (string, error) {
	if pattern == "" {
		return "", errors.New("empty pattern")
	}
	if filepath.IsAbs(pattern) || path.IsAbs(filepath.ToSlash(pattern)) {
		return "", errEscapesDirectory
	}
	clean := path.Clean(filepath.ToSlash(pattern))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errEscapesDirectory
	}
	if !doublestar.ValidatePattern(clean) {
		return "", doublestar.ErrBadPattern
	}
	return clean, nil
}

func inNodeModules(rel string) bool {
	return slices.Contains(strings.Split(rel, "/"), "node_modules")
}

func (l *Loader) fileSystem() filesystem.FileSystem {
	if l.FS == nil {
		return filesystem.NewOSFileSystem()
	}
	return l.FS
}

func (l *Loader) glob() filesystem.GlobMatcher {
	if l.Glob == nil {
		return filesystem.NewGlobMatcher()
	}
	return l.Glob
}

func (l *Loader) logger() *logger.Logger {
	return logger.OrDefault(l.Logger)
}
