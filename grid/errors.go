// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadShape indicates a non-positive width or height.
	ErrBadShape = errors.New("grid: width and height must be > 0")
	// ErrOutOfBounds indicates a checked access outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)
