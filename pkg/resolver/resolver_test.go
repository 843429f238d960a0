package resolver

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/dependency"
	"github.com/carbon-design-system/carb/pkg/workspace"
)

func TestBuildGraph_NodesAndEdges(t *testing.T) {
	root := tree(pkg("root", devDeps(map[string]string{"eslint": "^9.0.0"})),
		pkg("core"),
		pkg("ui",
			deps(map[string]string{"core": "^1.0.0", "react": "^18.0.0"}),
			devDeps(map[string]string{"icons": "*"}),
			peerDeps(map[string]string{"core": "^1.0.0"}),
		),
		pkg("icons", deps(map[string]string{"core": "*"})),
	)

	graph, handles, err := BuildGraph(root)
	require.NoError(t, err)

	assert.Equal(t, 4, graph.Len())
	assert.Equal(t, map[string]dependency.NodeHandle{"root": 0, "core": 1, "ui": 2, "icons": 3}, handles)
	assert.Equal(t, 3, graph.EdgeCount(), "external deps ignored and core counted once for ui")

	id, ok := graph.Get(handles["ui"])
	require.True(t, ok)
	assert.Equal(t, PackageID{Name: "ui", Dir: "/repo/packages/ui"}, id)

	uiDeps := slices.Collect(graph.Dependencies(handles["ui"]))
	assert.Equal(t, []dependency.NodeHandle{handles["icons"], handles["core"]}, uiDeps)
	assert.Empty(t, slices.Collect(graph.Dependencies(handles["root"])))
}

func TestBuildGraph_SkipsNamelessPackages(t *testing.T) {
	root := tree(pkg(""), pkg("a"), pkg("b", deps(map[string]string{"a": "*"})))

	graph, handles, err := BuildGraph(root)
	require.NoError(t, err)
	assert.Equal(t, 2, graph.Len())
	assert.Equal(t, map[string]dependency.NodeHandle{"a": 0, "b": 1}, handles)
}

func TestBuildGraph_DuplicateName(t *testing.T) {
	a1 := pkg("a")
	a2 := pkg("a")
	a2.Dir = "/repo/apps/a"
	root := tree(pkg(""), a1, a2)

	graph, handles, err := BuildGraph(root)
	assert.Nil(t, graph)
	assert.Nil(t, handles)
	require.ErrorIs(t, err, errUtils.ErrDuplicatePackageName)
	assert.Contains(t, err.Error(), "/repo/apps/a")
}

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name string
		root *workspace.Node
		want []string
	}{
		{
			name: "single package",
			root: pkg("solo"),
			want: []string{"solo"},
		},
		{
			name: "dependency before dependent",
			root: tree(pkg("root"), pkg("ui", deps(map[string]string{"core": "^1.0.0"})), pkg("core")),
			want: []string{"root", "core", "ui"},
		},
		{
			name: "root depending on its workspaces",
			root: tree(pkg("site", deps(map[string]string{"ui": "*"})), pkg("core"), pkg("ui", deps(map[string]string{"core": "*"}))),
			want: []string{"core", "ui", "site"},
		},
		{
			name: "chain declared in reverse",
			root: tree(pkg(""),
				pkg("a", deps(map[string]string{"b": "*"})),
				pkg("b", devDeps(map[string]string{"c": "*"})),
				pkg("c"),
			),
			want: []string{"c", "b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := ResolveOrder(tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(order))
		})
	}
}

func TestResolveOrder_FromDisk(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	write := func(dir, contents string) {
		full := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(full, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(full, "package.json"), []byte(contents), 0o644))
	}
	write(".", `{"name": "root", "workspaces": ["packages/*"]}`)
	write("packages/ui", `{"name": "ui", "dependencies": {"core": "workspace:*"}}`)
	write("packages/core", `{"name": "core"}`)

	node, err := workspace.Load(root)
	require.NoError(t, err)

	order, err := ResolveOrder(node)
	require.NoError(t, err)
	assert.Equal(t, []PackageID{
		{Name: "root", Dir: root},
		{Name: "core", Dir: filepath.Join(root, "packages", "core")},
		{Name: "ui", Dir: filepath.Join(root, "packages", "ui")},
	}, order)
}

func TestResolveOrder_Deterministic(t *testing.T) {
	build := func() *workspace.Node {
		return tree(pkg("root"),
			pkg("a", deps(map[string]string{"d": "*", "c": "*", "b": "*"})),
			pkg("b", deps(map[string]string{"d": "*"})),
			pkg("c", peerDeps(map[string]string{"b": "*"})),
			pkg("d"),
		)
	}

	first, err := ResolveOrder(build())
	require.NoError(t, err)
	for range 10 {
		again, err := ResolveOrder(build())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveOrder_Cycle(t *testing.T) {
	root := tree(pkg(""),
		pkg("a", deps(map[string]string{"b": "*"})),
		pkg("b", devDeps(map[string]string{"a": "*"})),
	)

	order, err := ResolveOrder(root)
	assert.Nil(t, order)
	require.ErrorIs(t, err, errUtils.ErrContainsCycle)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b", "a"}, ids(cycleErr.Packages))
	assert.Contains(t, err.Error(), "a -> b -> a")

	var graphErr *dependency.CycleError
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, []dependency.NodeHandle{0, 1, 0}, graphErr.Cycle)
}

func TestResolveOrder_SelfDependency(t *testing.T) {
	_, err := ResolveOrder(pkg("a", devDeps(map[string]string{"a": "*"})))

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "a"}, ids(cycleErr.Packages))
}

func TestResolveOrder_DuplicateName(t *testing.T) {
	_, err := ResolveOrder(tree(pkg("a"), pkg("a")))
	assert.ErrorIs(t, err, errUtils.ErrDuplicatePackageName)
}
