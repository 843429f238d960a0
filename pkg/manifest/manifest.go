// Package manifest models the package.json descriptor of a workspace package.
package manifest

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/carbon-design-system/carb/errors"
)

// FileName is the manifest file looked up in every package directory.
const FileName = "package.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Manifest is the subset of package.json carb understands. Unknown fields
// are ignored.
type Manifest struct {
	Name             string            `json:"name,omitempty"`
	Version          string            `json:"version,omitempty"`
	Private          bool              `json:"private,omitempty"`
	Scripts          map[string]string `json:"scripts,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
	Workspaces       Workspaces        `json:"workspaces,omitempty"`
}

// Workspaces holds the workspace glob patterns. It accepts both the array
// form and the yarn object form {"packages": [...]}.
type Workspaces []string

// UnmarshalJSON implements json.Unmarshaler.
func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var patterns []string
	if err := json.Unmarshal(data, &patterns); err == nil {
		*w = patterns
		return nil
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("workspaces must be an array of patterns or an object with a packages array: %w", err)
	}
	*w = object.Packages
	return nil
}

// DependencyGroup names one of the dependency maps.
type DependencyGroup string

const (
	GroupDependencies     DependencyGroup = "dependencies"
	GroupDevDependencies  DependencyGroup = "devDependencies"
	GroupPeerDependencies DependencyGroup = "peerDependencies"
)

// DependencyGroups lists the maps in the order carb reads them.
var DependencyGroups = []DependencyGroup{GroupDependencies, GroupDevDependencies, GroupPeerDependencies}

// Group returns the dependency map for g.
func (m *Manifest) Group(g DependencyGroup) map[string]string {
	switch g {
	case GroupDependencies:
		return m.Dependencies
	case GroupDevDependencies:
		return m.DevDependencies
	case GroupPeerDependencies:
		return m.PeerDependencies
	default:
		return nil
	}
}

// Script returns the command registered for task, if any.
func (m *Manifest) Script(task string) (string, bool) {
	cmd, ok := m.Scripts[task]
	return cmd, ok
}

// Parse decodes package.json contents.
func Parse(contents []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(contents, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseError reports a manifest that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", errUtils.ErrManifestParse, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports true for errUtils.ErrManifestParse.
func (e *ParseError) Is(target error) bool {
	return target == errUtils.ErrManifestParse
}
