// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/point"
)

// Contains reports whether 0 <= p.X < Width and 0 <= p.Y < Height.
func (g *Grid[T]) Contains(p point.Point) bool {
	return p.X >= 0 && p.X < int64(g.width) && p.Y >= 0 && p.Y < int64(g.height)
}

// Get returns the cell at p, or the zero T and false when p is outside
// the grid. Stepping off the edge is an ordinary event, not an error.
func (g *Grid[T]) Get(p point.Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}

	return g.cells[g.index(p)], true
}

// At returns the cell at p or ErrOutOfBounds.
func (g *Grid[T]) At(p point.Point) (T, error) {
	if !g.Contains(p) {
		var zero T
		return zero, fmt.Errorf("Grid.At%v: %w", p, ErrOutOfBounds)
	}

	return g.cells[g.index(p)], nil
}

// Set stores v at p or returns ErrOutOfBounds.
func (g *Grid[T]) Set(p point.Point, v T) error {
	if !g.Contains(p) {
		return fmt.Errorf("Grid.Set%v: %w", p, ErrOutOfBounds)
	}
	g.cells[g.index(p)] = v

	return nil
}

// Find returns the first cell equal to needle in row-major order.
func Find[T comparable](g *Grid[T], needle T) (point.Point, bool) {
	for i, v := range g.cells {
		if v == needle {
			return g.coordinate(i), true
		}
	}

	return point.Origin, false
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}

	return n
}
