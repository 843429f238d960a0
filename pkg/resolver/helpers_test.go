package resolver

import (
	"path/filepath"

	"github.com/carbon-design-system/carb/pkg/manifest"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

type pkgOption func(*manifest.Manifest)

func deps(m map[string]string) pkgOption {
	return func(mf *manifest.Manifest) { mf.Dependencies = m }
}

func devDeps(m map[string]string) pkgOption {
	return func(mf *manifest.Manifest) { mf.DevDependencies = m }
}

func peerDeps(m map[string]string) pkgOption {
	return func(mf *manifest.Manifest) { mf.PeerDependencies = m }
}

func version(v string) pkgOption {
	return func(mf *manifest.Manifest) { mf.Version = v }
}

func scripts(m map[string]string) pkgOption {
	return func(mf *manifest.Manifest) { mf.Scripts = m }
}

func pkg(name string, opts ...pkgOption) *workspace.Node {
	m := &manifest.Manifest{Name: name}
	for _, opt := range opts {
		opt(m)
	}
	dir := filepath.Join("/repo", "packages", name)
	if name == "" {
		dir = "/repo"
	}
	return &workspace.Node{Dir: dir, Manifest: m}
}

func tree(root *workspace.Node, children ...*workspace.Node) *workspace.Node {
	root.Children = children
	return root
}

func ids(in []PackageID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.Name
	}
	return out
}
