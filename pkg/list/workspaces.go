package list

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/carbon-design-system/carb/pkg/workspace"
)

const unnamed = "(unnamed)"

// WorkspacePackage is the JSON view of one discovered package.
type WorkspacePackage struct {
	Name       string   `json:"name"`
	Version    string   `json:"version,omitempty"`
	Private    bool     `json:"private,omitempty"`
	Dir        string   `json:"dir"`
	Path       string   `json:"path"`
	Workspaces []string `json:"workspaces,omitempty"`
}

// RenderWorkspaceTree draws the workspace tree. With a non-empty filter,
// branches holding no matching package are pruned.
func RenderWorkspaceTree(root *workspace.Node, filter *workspace.Filter) string {
	t := buildTree(root, root, filter)
	if t == nil {
		return warnStyle.Render("No packages match the filter.") + newline
	}
	return t.String() + newline
}

func buildTree(base, node *workspace.Node, filter *workspace.Filter) *tree.Tree {
	var children []any
	for _, child := range node.Children {
		if sub := buildTree(base, child, filter); sub != nil {
			children = append(children, sub)
		}
	}
	if len(children) == 0 && !filter.Match(node.Name()) {
		return nil
	}

	return tree.New().
		Root(packageLabel(base, node)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(mutedStyle).
		Child(children...)
}

func packageLabel(base, node *workspace.Node) string {
	name := node.Name()
	if name == "" {
		name = unnamed
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(name))
	if v := node.Manifest.Version; v != "" {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(v))
	}
	if rel := relPath(base.Dir, node.Dir); rel != "." {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(rel))
	}
	return b.String()
}

// RenderWorkspaceList prints one matching package name per line in
// discovery order.
func RenderWorkspaceList(root *workspace.Node, filter *workspace.Filter) string {
	var b strings.Builder
	for _, n := range filter.Select(root.Packages()) {
		name := n.Name()
		if name == "" {
			name = unnamed
		}
		b.WriteString(name)
		b.WriteString(newline)
	}
	return b.String()
}

// RenderWorkspacesJSON prints the matching packages as a JSON array.
func RenderWorkspacesJSON(root *workspace.Node, filter *workspace.Filter) (string, error) {
	packages := make([]WorkspacePackage, 0)
	for _, n := range filter.Select(root.Packages()) {
		packages = append(packages, WorkspacePackage{
			Name:       n.Name(),
			Version:    n.Manifest.Version,
			Private:    n.Manifest.Private,
			Dir:        n.Dir,
			Path:       relPath(root.Dir, n.Dir),
			Workspaces: n.Manifest.Workspaces,
		})
	}
	return marshalJSON(packages)
}

func relPath(base, dir string) string {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return dir
	}
	return filepath.ToSlash(rel)
}
