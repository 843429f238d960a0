package dependency

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/carbon-design-system/carb/errors"
)

func TestGraph_AddNode(t *testing.T) {
	g := New[int]()

	for i := range 5 {
		h := g.AddNode(i * 10)
		assert.Equal(t, NodeHandle(i), h, "handles are dense and start at zero")
		assert.Equal(t, i+1, g.Len())
	}

	v, ok := g.Get(3)
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestGraph_GetOutOfRange(t *testing.T) {
	g := New[string]()
	g.AddNode("a")

	for _, h := range []NodeHandle{-1, 1, 100} {
		v, ok := g.Get(h)
		assert.False(t, ok)
		assert.Empty(t, v)
	}
}

func TestGraph_AddDependency(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	require.NoError(t, g.AddDependency(a, b))

	assert.Equal(t, []NodeHandle{b}, slices.Collect(g.Dependencies(a)))
	assert.Empty(t, slices.Collect(g.Dependencies(b)))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddDependencyInvalidHandle(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")

	tests := []struct {
		name           string
		source, target NodeHandle
	}{
		{name: "bad source", source: 5, target: a},
		{name: "bad target", source: a, target: 5},
		{name: "negative", source: -1, target: a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddDependency(tt.source, tt.target)
			assert.ErrorIs(t, err, errUtils.ErrInvalidHandle)
		})
	}
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges are not stored")
}

func TestGraph_DependenciesMostRecentFirst(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")

	require.NoError(t, g.AddDependency(a, b))
	require.NoError(t, g.AddDependency(a, c))
	require.NoError(t, g.AddDependency(a, d))

	assert.Equal(t, []NodeHandle{d, c, b}, slices.Collect(g.Dependencies(a)))
}

func TestGraph_DependenciesRestartable(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	require.NoError(t, g.AddDependency(a, b))

	seq := g.Dependencies(a)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestGraph_DependenciesEarlyBreak(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	for range 3 {
		require.NoError(t, g.AddDependency(a, g.AddNode("x")))
	}

	var n int
	for range g.Dependencies(a) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestGraph_DependenciesInvalidHandle(t *testing.T) {
	g := New[string]()
	assert.Empty(t, slices.Collect(g.Dependencies(7)))
}

func TestGraph_Edges(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	require.NoError(t, g.AddDependency(b, c))
	require.NoError(t, g.AddDependency(a, b))
	require.NoError(t, g.AddDependency(a, c))

	var got [][2]NodeHandle
	for s, d := range g.Edges() {
		got = append(got, [2]NodeHandle{s, d})
	}
	assert.Equal(t, [][2]NodeHandle{{a, c}, {a, b}, {b, c}}, got)
}
