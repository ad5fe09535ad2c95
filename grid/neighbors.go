// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/aoc2025/point"

// Connectivity selects which neighbors count as adjacent.
type Connectivity int

const (
	// Conn4 uses the orthogonal neighbors: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals (king moves).
	Conn8
)

// offsets returns the neighbor offsets for c.
func (c Connectivity) offsets() []point.Point {
	if c == Conn8 {
		return point.Adjacent[:]
	}

	return point.Orthogonal[:]
}

// Neighbors returns the in-bounds neighbors of p under conn, in the
// order of point.Adjacent or point.Orthogonal.
func (g *Grid[T]) Neighbors(p point.Point, conn Connectivity) []point.Point {
	offs := conn.offsets()
	out := make([]point.Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// CountNeighbors counts the neighbors of p under conn whose value
// satisfies pred. Cells outside the grid are never counted.
func (g *Grid[T]) CountNeighbors(p point.Point, conn Connectivity, pred func(T) bool) int {
	n := 0
	for _, d := range conn.offsets() {
		if v, ok := g.Get(p.Add(d)); ok && pred(v) {
			n++
		}
	}

	return n
}
