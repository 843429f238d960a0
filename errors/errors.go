package errors

import (
	"github.com/cockroachdb/errors"
)

// Discovery errors.
var (
	ErrNoManifestFound          = errors.New("no package.json found in the directory or any of its ancestors")
	ErrManifestRead             = errors.New("failed to read package.json")
	ErrManifestParse            = errors.New("failed to parse package.json")
	ErrWorkspaceRecursion       = errors.New("workspace pattern matches a directory that is already being loaded")
	ErrInvalidWorkspacePattern  = errors.New("invalid workspace pattern")
	ErrWorkspaceDirectoryListed = errors.New("failed to list workspace directory")
)

// Graph and resolution errors.
var (
	ErrInvalidHandle        = errors.New("invalid node handle")
	ErrContainsCycle        = errors.New("dependency graph contains a cycle")
	ErrDuplicatePackageName = errors.New("duplicate package name in workspace")
	ErrRangeMismatch        = errors.New("workspace dependency range is not satisfied by the local package version")
)

// Config and cache errors.
var (
	ErrConfigNotFound           = errors.New("carb configuration not found")
	ErrConfigDeserialize        = errors.New("unable to deserialize carb configuration")
	ErrConfigSerialize          = errors.New("unable to serialize carb configuration")
	ErrConfigWrite              = errors.New("unable to write carb configuration")
	ErrUnsupportedConfigVersion = errors.New("unsupported carb configuration version")
	ErrCacheDir                 = errors.New("cache directory error")
	ErrCacheLocked              = errors.New("cache is locked by another process")
	ErrCacheClean               = errors.New("failed to clean cache")
)

// CLI errors.
var (
	ErrInvalidFilter       = errors.New("invalid package filter")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrMissingTaskName     = errors.New("task name is required")
	ErrInvalidChdir        = errors.New("invalid --chdir directory")
)
