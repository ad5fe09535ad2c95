// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2025/point"
)

// Grid is a dense width×height array of T addressed by point.Point.
// The zero value is not usable; build grids with New or Parse.
type Grid[T any] struct {
	width, height int
	cells         []T // row-major, len == width*height
}

// New returns a width×height grid with every cell set to fill.
// Returns ErrBadShape if either dimension is not positive.
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadShape, width, height)
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Parse builds a byte grid from lines. The first line fixes the width;
// every other line must match it. Lines are taken verbatim, so
// Lines(Parse(lines)) reproduces the input.
func Parse(lines []string) (*Grid[byte], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(lines[0]), len(lines)
	cells := make([]byte, 0, w*h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(line), w)
		}
		cells = append(cells, line...)
	}

	return &Grid[byte]{width: w, height: h, cells: cells}, nil
}

// ParseString splits s into lines, drops trailing whitespace on each line
// and a trailing empty line, then calls Parse.
func ParseString(s string) (*Grid[byte], error) {
	raw := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	return Parse(lines)
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.cells))
	copy(cp, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cp}
}

// index maps p to its row-major offset. The caller checks bounds.
func (g *Grid[T]) index(p point.Point) int {
	return int(p.Y)*g.width + int(p.X)
}

// coordinate converts a row-major offset back to a point.
func (g *Grid[T]) coordinate(i int) point.Point {
	return point.New(int64(i%g.width), int64(i/g.width))
}

// Lines renders a byte grid back into one string per row.
func Lines(g *Grid[byte]) []string {
	out := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = string(g.cells[y*g.width : (y+1)*g.width])
	}

	return out
}

// Format renders a byte grid as newline-terminated rows.
func Format(g *Grid[byte]) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.height)
	for _, l := range Lines(g) {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	return sb.String()
}
