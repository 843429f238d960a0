// Package dependency implements an append-only directed graph with
// topological ordering.
//
// Nodes and edges live in two slices. Each node stores the index of its most
// recently added outgoing edge and each edge stores the index of the edge
// added before it, so a node's outgoing edges form a singly linked list
// addressed by integer offsets. Nodes are only ever referenced through the
// NodeHandle returned by AddNode; handles are dense, start at zero and stay
// valid for the lifetime of the graph because nothing is ever removed.
package dependency

import (
	"fmt"
	"iter"

	errUtils "github.com/carbon-design-system/carb/errors"
)

// NodeHandle identifies a node within one Graph.
type NodeHandle int

// noEdge terminates an outgoing edge list.
const noEdge = -1

type nodeData[T any] struct {
	payload   T
	firstEdge int
}

type edgeData struct {
	target   NodeHandle
	nextEdge int
}

// Graph is a directed graph whose nodes carry a payload of type T.
// A Graph is not safe for concurrent mutation.
type Graph[T any] struct {
	nodes []nodeData[T]
	edges []edgeData
}

// New returns an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{}
}

// AddNode appends a node and returns its handle, which equals the number of
// nodes in the graph before the call.
func (g *Graph[T]) AddNode(payload T) NodeHandle {
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, nodeData[T]{payload: payload, firstEdge: noEdge})
	return h
}

// Get returns the payload stored at h. The boolean is false when h does not
// belong to the graph.
func (g *Graph[T]) Get(h NodeHandle) (T, bool) {
	if !g.valid(h) {
		var zero T
		return zero, false
	}
	return g.nodes[h].payload, true
}

// AddDependency records that source depends on target. Both handles must
// belong to the graph; otherwise nothing is added and the returned error
// wraps errUtils.ErrInvalidHandle.
func (g *Graph[T]) AddDependency(source, target NodeHandle) error {
	if !g.valid(source) {
		return fmt.Errorf("%w: source %d (graph has %d nodes)", errUtils.ErrInvalidHandle, source, len(g.nodes))
	}
	if !g.valid(target) {
		return fmt.Errorf("%w: target %d (graph has %d nodes)", errUtils.ErrInvalidHandle, target, len(g.nodes))
	}

	idx := len(g.edges)
	g.edges = append(g.edges, edgeData{target: target, nextEdge: g.nodes[source].firstEdge})
	g.nodes[source].firstEdge = idx
	return nil
}

// Dependencies yields the direct dependencies of h, most recently added
// first. The sequence is empty for an invalid handle and may be ranged over
// any number of times.
func (g *Graph[T]) Dependencies(h NodeHandle) iter.Seq[NodeHandle] {
	return func(yield func(NodeHandle) bool) {
		if !g.valid(h) {
			return
		}
		for e := g.nodes[h].firstEdge; e != noEdge; e = g.edges[e].nextEdge {
			if !yield(g.edges[e].target) {
				return
			}
		}
	}
}

// Edges yields every edge as (source, target), sources in ascending handle
// order and each source's edges in Dependencies order.
func (g *Graph[T]) Edges() iter.Seq2[NodeHandle, NodeHandle] {
	return func(yield func(NodeHandle, NodeHandle) bool) {
		for i := range g.nodes {
			source := NodeHandle(i)
			for target := range g.Dependencies(source) {
				if !yield(source, target) {
					return
				}
			}
		}
	}
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

func (g *Graph[T]) valid(h NodeHandle) bool {
	return h >= 0 && int(h) < len(g.nodes)
}
