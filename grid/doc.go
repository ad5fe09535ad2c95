// SPDX-License-Identifier: MIT

// Package grid provides Grid, a dense rectangular array of cells addressed
// by point.Point, used by the grid-shaped puzzles.
//
// What:
//
//   - Parse builds a Grid[byte] from equal-length text lines, one cell per byte.
//   - New fills a width×height grid with a constant value.
//   - Get/Contains are total: out-of-range lookups report absence.
//   - At/Set are checked: out-of-range access returns ErrOutOfBounds.
//   - All, Cells and Apply visit every cell exactly once in row-major order.
//   - Neighbors clips Conn4/Conn8 neighborhoods to the grid bounds.
//
// Storage is a flat row-major slice; cell (x, y) lives at y*width + x.
// A Grid never changes shape after construction.
//
// Complexity:
//
//   - Get, Contains, At, Set: O(1).
//   - Find, All, Cells, Apply, Count: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no lines, or an empty first line.
//   - ErrNonRectangular: a line differs in length from the first.
//   - ErrBadShape: non-positive width or height passed to New.
//   - ErrOutOfBounds: At/Set outside the grid.
package grid
