// SPDX-License-Identifier: MIT

package point

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDirection indicates a byte that does not name a direction.
var ErrInvalidDirection = errors.New("point: invalid direction")

// Point is an immutable pair of signed coordinates.
type Point struct {
	X, Y int64
}

// Unit offsets.
var (
	Origin = Point{0, 0}
	Up     = Point{0, -1}
	Down   = Point{0, 1}
	Left   = Point{-1, 0}
	Right  = Point{1, 0}

	UpperLeft  = Point{-1, -1}
	UpperRight = Point{1, -1}
	LowerLeft  = Point{-1, 1}
	LowerRight = Point{1, 1}
)

// Orthogonal lists the four axis-aligned unit offsets: up, down, left, right.
var Orthogonal = [4]Point{Up, Down, Left, Right}

// Adjacent lists the eight king-move offsets, left to right, top to bottom.
var Adjacent = [8]Point{
	UpperLeft, Up, UpperRight,
	Left, Right,
	LowerLeft, Down, LowerRight,
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
