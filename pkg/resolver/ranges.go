package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"

	"github.com/carbon-design-system/carb/pkg/dependency"
	"github.com/carbon-design-system/carb/pkg/manifest"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

const workspaceProtocol = "workspace:"

// Protocols that reference a location rather than a version.
var locationProtocols = []string{"file:", "link:", "portal:"}

// RangeMismatch is a workspace dependency whose declared range does not
// accept the version of the local package.
type RangeMismatch struct {
	Package    PackageID                `json:"package"`
	Dependency string                   `json:"dependency"`
	Group      manifest.DependencyGroup `json:"group"`
	Range      string                   `json:"range"`
	Version    string                   `json:"version"`
	Reason     string                   `json:"reason"`
}

func (m RangeMismatch) String() string {
	return fmt.Sprintf("%s: %s %q in %s: %s", m.Package.Name, m.Dependency, m.Range, m.Group, m.Reason)
}

// CheckRanges compares every range a package declares for another
// workspace package against that package's version.
func (r *Resolver) CheckRanges(root *workspace.Node) ([]RangeMismatch, error) {
	idx, err := r.build(root)
	if err != nil {
		return nil, err
	}

	var mismatches []RangeMismatch
	for i, node := range idx.nodes {
		id, _ := idx.graph.Get(dependency.NodeHandle(i))
		for _, group := range manifest.DependencyGroups {
			deps := node.Manifest.Group(group)
			names := lo.Keys(deps)
			slices.Sort(names)
			for _, name := range names {
				h, ok := idx.handles[name]
				if !ok {
					continue
				}
				version := idx.nodes[h].Manifest.Version
				if reason := checkRange(deps[name], version); reason != "" {
					mismatches = append(mismatches, RangeMismatch{
						Package:    id,
						Dependency: name,
						Group:      group,
						Range:      deps[name],
						Version:    version,
						Reason:     reason,
					})
				}
			}
		}
	}
	return mismatches, nil
}

// CheckRanges runs Resolver.CheckRanges with the default logger.
func CheckRanges(root *workspace.Node) ([]RangeMismatch, error) {
	return (&Resolver{}).CheckRanges(root)
}

// checkRange returns why version does not satisfy declared, or "" when it
// does.
func checkRange(declared, version string) string {
	rng := strings.TrimSpace(strings.TrimPrefix(declared, workspaceProtocol))
	switch {
	case rng == "" || rng == "*" || rng == "^" || rng == "~":
		return ""
	case lo.SomeBy(locationProtocols, func(p string) bool { return strings.HasPrefix(rng, p) }):
		return ""
	}

	if version == "" {
		return "package has no version"
	}
	constraint, err := semver.NewConstraint(rng)
	if err != nil {
		return fmt.Sprintf("invalid range: %v", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Sprintf("invalid version %q: %v", version, err)
	}
	if !constraint.Check(v) {
		return fmt.Sprintf("version %s does not satisfy %s", version, rng)
	}
	return ""
}
