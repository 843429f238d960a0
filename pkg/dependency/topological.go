package dependency

import (
	"fmt"
	"strings"

	errUtils "github.com/carbon-design-system/carb/errors"
)

// CycleError is returned by Topological when the graph has no valid order.
// Cycle lists the handles on the offending path; the first handle is
// repeated at the end.
type CycleError struct {
	Cycle []NodeHandle
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, h := range e.Cycle {
		parts[i] = fmt.Sprint(int(h))
	}
	return fmt.Sprintf("%s: %s", errUtils.ErrContainsCycle, strings.Join(parts, " -> "))
}

// Is reports true for errUtils.ErrContainsCycle.
func (e *CycleError) Is(target error) bool {
	return target == errUtils.ErrContainsCycle
}

// Topological orders the graph so every node comes after all of its
// dependencies.
//
// The search is depth first with three colours. Roots are taken in
// ascending handle order and dependencies in Dependencies order, so the
// result is fully determined by the graph. Reaching a node that is still on
// the current path aborts the whole search with a *CycleError.
func (g *Graph[T]) Topological() ([]NodeHandle, error) {
	s := &topoState[T]{
		graph:    g,
		visited:  make([]bool, len(g.nodes)),
		visiting: make([]bool, len(g.nodes)),
		ordered:  make([]NodeHandle, 0, len(g.nodes)),
	}

	for i := range g.nodes {
		if err := s.visit(NodeHandle(i)); err != nil {
			return nil, err
		}
	}
	return s.ordered, nil
}

type topoState[T any] struct {
	graph    *Graph[T]
	visited  []bool
	visiting []bool
	path     []NodeHandle
	ordered  []NodeHandle
}

func (s *topoState[T]) visit(h NodeHandle) error {
	if s.visited[h] {
		return nil
	}
	if s.visiting[h] {
		return &CycleError{Cycle: s.cycleFrom(h)}
	}

	s.visiting[h] = true
	s.path = append(s.path, h)

	for dep := range s.graph.Dependencies(h) {
		if err := s.visit(dep); err != nil {
			return err
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visiting[h] = false
	s.visited[h] = true
	s.ordered = append(s.ordered, h)
	return nil
}

// cycleFrom returns the part of the current path starting at h, closed by h.
func (s *topoState[T]) cycleFrom(h NodeHandle) []NodeHandle {
	for i, p := range s.path {
		if p == h {
			cycle := make([]NodeHandle, 0, len(s.path)-i+1)
			cycle = append(cycle, s.path[i:]...)
			return append(cycle, h)
		}
	}
	return []NodeHandle{h, h}
}

// Reachable returns the given roots and everything they depend on,
// transitively, in ascending handle order. Invalid roots are ignored.
func (g *Graph[T]) Reachable(roots ...NodeHandle) []NodeHandle {
	seen := make([]bool, len(g.nodes))
	stack := make([]NodeHandle, 0, len(roots))
	for _, r := range roots {
		if g.valid(r) && !seen[r] {
			seen[r] = true
			stack = append(stack, r)
		}
	}

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dep := range g.Dependencies(h) {
			if !seen[dep] {
				seen[dep] = true
				stack = append(stack, dep)
			}
		}
	}

	var out []NodeHandle
	for i, ok := range seen {
		if ok {
			out = append(out, NodeHandle(i))
		}
	}
	return out
}
