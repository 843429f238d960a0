package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/carbon-design-system/carb/errors"
	"github.com/carbon-design-system/carb/pkg/manifest"
)

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		input    string
		want     bool
	}{
		{name: "empty filter matches all", patterns: nil, input: "anything", want: true},
		{name: "exact", patterns: []string{"core"}, input: "core", want: true},
		{name: "exact miss", patterns: []string{"core"}, input: "ui", want: false},
		{name: "scope wildcard", patterns: []string{"@carbon/*"}, input: "@carbon/react", want: true},
		{name: "scope wildcard stops at separator", patterns: []string{"@carbon/*"}, input: "@carbon/react/icons", want: false},
		{name: "prefix", patterns: []string{"icons-*"}, input: "icons-vue", want: true},
		{name: "any of several", patterns: []string{"core", "ui"}, input: "ui", want: true},
		{name: "alternation", patterns: []string{"{core,ui}"}, input: "core", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.patterns...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(tt.input))
		})
	}
}

func TestFilter_Invalid(t *testing.T) {
	_, err := NewFilter("[")
	assert.ErrorIs(t, err, errUtils.ErrInvalidFilter)
}

func TestFilter_NilMatchesAll(t *testing.T) {
	var f *Filter
	assert.True(t, f.Empty())
	assert.True(t, f.Match("x"))
}

func TestFilter_Select(t *testing.T) {
	nodes := []*Node{
		{Manifest: &manifest.Manifest{Name: "@carbon/react"}},
		{Manifest: &manifest.Manifest{Name: "docs"}},
		{Manifest: &manifest.Manifest{Name: "@carbon/styles"}},
	}

	f, err := NewFilter("@carbon/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"@carbon/react", "@carbon/styles"}, names(f.Select(nodes)))
}

func TestNode_WalkAndFind(t *testing.T) {
	tree := &Node{
		Manifest: &manifest.Manifest{Name: "root"},
		Children: []*Node{
			{Manifest: &manifest.Manifest{Name: "a"}, Children: []*Node{{Manifest: &manifest.Manifest{Name: "a1"}}}},
			{Manifest: &manifest.Manifest{Name: "b"}},
		},
	}

	assert.Equal(t, []string{"root", "a", "a1", "b"}, names(tree.Packages()))
	assert.Equal(t, "a1", tree.Find("a1").Name())
	assert.Nil(t, tree.Find("zzz"))

	stop := assert.AnError
	var visited []string
	err := tree.Walk(func(n *Node) error {
		visited = append(visited, n.Name())
		if n.Name() == "a" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"root", "a"}, visited)

	assert.Equal(t, "", (&Node{}).Name())
}
