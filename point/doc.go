// SPDX-License-Identifier: MIT

// Package point provides the 2-D integer coordinate shared by every grid
// based puzzle: vector arithmetic, rotations, neighbor enumeration and
// parsing of single-character direction symbols.
//
// Coordinates use screen orientation: X grows to the right, Y grows
// downward, so Up is (0,-1) and Down is (0,1).
//
// What:
//
//   - Point is a comparable value type; it can be used as a map key.
//   - Arithmetic: Add, Sub, Neg, Mul.
//   - Metrics: Manhattan.
//   - Rotation: Clockwise, CounterClockwise (four turns are the identity).
//   - Neighborhoods: Neighbors (8, row-major), OrthogonalNeighbors (4).
//   - Parsing: FromSymbol for '>', '<', '^', 'v', 'R', 'L', 'U', 'D'.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
//
// Errors:
//
//   - ErrInvalidDirection: FromSymbol received an unknown symbol.
package point
