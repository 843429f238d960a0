package workspace

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	errUtils "github.com/carbon-design-system/carb/errors"
)

// Filter selects packages by name. Patterns use glob syntax with "/" as
// the separator, so "@carbon/*" matches "@carbon/react" but not
// "@carbon/react/icons". A Filter with no patterns matches everything.
type Filter struct {
	patterns []glob.Glob
}

// NewFilter compiles the given name patterns.
func NewFilter(patterns ...string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errUtils.ErrInvalidFilter, p, err)
		}
		f.patterns = append(f.patterns, g)
	}
	return f, nil
}

// Empty reports whether the filter has no patterns.
func (f *Filter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}

// Match reports whether name matches any pattern.
func (f *Filter) Match(name string) bool {
	if f.Empty() {
		return true
	}
	return lo.SomeBy(f.patterns, func(g glob.Glob) bool {
		return g.Match(name)
	})
}

// Select returns the nodes whose package name matches, preserving order.
func (f *Filter) Select(nodes []*Node) []*Node {
	return lo.Filter(nodes, func(n *Node, _ int) bool {
		return f.Match(n.Name())
	})
}
