// Package resolver turns a discovered workspace tree into a dependency
// graph and derives build orders and task plans from it.
package resolver

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/dependency"
	"github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/manifest"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

// PackageID identifies a workspace package.
type PackageID struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

func (id PackageID) String() string {
	return id.Name
}

// Resolver builds graphs from workspace trees. The zero value logs to the
// default logger.
type Resolver struct {
	Logger *logger.Logger
}

// index is a built graph together with the lookups derived alongside it.
type index struct {
	graph   *dependency.Graph[PackageID]
	handles map[string]dependency.NodeHandle
	nodes   []*workspace.Node
}

// BuildGraph adds one node per named package in pre-order, then one edge
// from each package to every workspace package it lists in dependencies,
// devDependencies or peerDependencies. Dependencies that are not part of
// the workspace are ignored.
func (r *Resolver) BuildGraph(root *workspace.Node) (*dependency.Graph[PackageID], map[string]dependency.NodeHandle, error) {
	idx, err := r.build(root)
	if err != nil {
		return nil, nil, err
	}
	return idx.graph, idx.handles, nil
}

func (r *Resolver) build(root *workspace.Node) (*index, error) {
	log := logger.OrDefault(r.Logger)

	idx := &index{
		graph:   dependency.New[PackageID](),
		handles: make(map[string]dependency.NodeHandle),
	}

	for _, node := range root.Packages() {
		name := node.Name()
		if name == "" {
			log.Warn("Skipping package without a name", "dir", node.Dir)
			continue
		}
		if h, ok := idx.handles[name]; ok {
			first, _ := idx.graph.Get(h)
			return nil, fmt.Errorf("%w: %q in %s and %s", errUtils.ErrDuplicatePackageName, name, first.Dir, node.Dir)
		}
		h := idx.graph.AddNode(PackageID{Name: name, Dir: node.Dir})
		idx.handles[name] = h
		idx.nodes = append(idx.nodes, node)
		log.Trace("Added package to graph", "package", name, "handle", int(h))
	}

	for i, node := range idx.nodes {
		source := dependency.NodeHandle(i)
		for _, dep := range workspaceDependencies(node.Manifest, idx.handles) {
			if err := idx.graph.AddDependency(source, idx.handles[dep]); err != nil {
				return nil, err
			}
			log.Trace("Added dependency edge", "package", node.Name(), "dependency", dep)
		}
	}

	log.Debug("Built dependency graph", "packages", idx.graph.Len(), "edges", idx.graph.EdgeCount())
	return idx, nil
}

// workspaceDependencies lists the names m depends on that are present in
// handles, group by group with each group's names sorted, without repeats.
func workspaceDependencies(m *manifest.Manifest, handles map[string]dependency.NodeHandle) []string {
	var out []string
	for _, group := range manifest.DependencyGroups {
		names := lo.Keys(m.Group(group))
		slices.Sort(names)
		for _, name := range names {
			if _, ok := handles[name]; ok && !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
	}
	return out
}

// BuildGraph runs Resolver.BuildGraph with the default logger.
func BuildGraph(root *workspace.Node) (*dependency.Graph[PackageID], map[string]dependency.NodeHandle, error) {
	return (&Resolver{}).BuildGraph(root)
}
