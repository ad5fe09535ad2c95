// SPDX-License-Identifier: MIT

package grid

import (
	"iter"

	"github.com/katalvlaran/aoc2025/point"
)

// All yields every (point, value) pair in row-major order. The sequence
// is lazy and may be ranged over any number of times.
func (g *Grid[T]) All() iter.Seq2[point.Point, T] {
	return func(yield func(point.Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.coordinate(i), v) {
				return
			}
		}
	}
}

// Cells yields a pointer to each cell in row-major order so callers can
// update the grid in place during a single pass. Only the current cell's
// pointer is handed out per step; it addresses the backing slice by index.
func (g *Grid[T]) Cells() iter.Seq2[point.Point, *T] {
	return func(yield func(point.Point, *T) bool) {
		for i := range g.cells {
			if !yield(g.coordinate(i), &g.cells[i]) {
				return
			}
		}
	}
}

// Apply replaces every cell with f(p, v), row by row.
func (g *Grid[T]) Apply(f func(p point.Point, v T) T) {
	for i, v := range g.cells {
		g.cells[i] = f(g.coordinate(i), v)
	}
}
