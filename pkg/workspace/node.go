package workspace

import (
	"github.com/carbon-design-system/carb/pkg/manifest"
)

// Node is one package directory in the workspace tree.
type Node struct {
	// Dir is the absolute, symlink-free package directory.
	Dir string
	// Manifest is the parsed package.json in Dir.
	Manifest *manifest.Manifest
	// Children are the packages matched by Manifest.Workspaces, in match order.
	Children []*Node
}

// Name returns the package name, which may be empty for a private root.
func (n *Node) Name() string {
	if n.Manifest == nil {
		return ""
	}
	return n.Manifest.Name
}

// Walk calls fn for n and every descendant in pre-order, stopping at the
// first error.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Packages flattens the tree in pre-order.
func (n *Node) Packages() []*Node {
	var out []*Node
	_ = n.Walk(func(node *Node) error {
		out = append(out, node)
		return nil
	})
	return out
}

// Find returns the first package named name, or nil.
func (n *Node) Find(name string) *Node {
	for _, p := range n.Packages() {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
