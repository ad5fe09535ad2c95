// SPDX-License-Identifier: MIT

package graph

import "errors"

var (
	// ErrCycleDetected indicates a cycle reachable from the start vertex.
	ErrCycleDetected = errors.New("graph: cycle detected")

	// ErrTooManyWaypoints indicates more waypoints than the bitmask holds.
	ErrTooManyWaypoints = errors.New("graph: at most 64 waypoints supported")
)

// Digraph is a directed graph over comparable vertex keys.
// The zero value is not usable; call New.
type Digraph[K comparable] struct {
	succ  map[K][]K
	order []K // insertion order of vertices
}

// New returns an empty graph.
func New[K comparable]() *Digraph[K] {
	return &Digraph[K]{succ: make(map[K][]K)}
}

// AddVertex adds v if absent.
func (g *Digraph[K]) AddVertex(v K) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.succ[v] = nil
	g.order = append(g.order, v)
}

// AddEdge adds the edge from→to, creating missing vertices.
func (g *Digraph[K]) AddEdge(from, to K) {
	g.AddVertex(from)
	g.AddVertex(to)
	g.succ[from] = append(g.succ[from], to)
}

// HasVertex reports whether v exists.
func (g *Digraph[K]) HasVertex(v K) bool {
	_, ok := g.succ[v]
	return ok
}

// Successors returns the targets of v's outgoing edges in insertion order.
// The returned slice must not be modified.
func (g *Digraph[K]) Successors(v K) []K {
	return g.succ[v]
}

// Vertices returns all vertices in insertion order.
func (g *Digraph[K]) Vertices() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of vertices.
func (g *Digraph[K]) Len() int { return len(g.order) }
