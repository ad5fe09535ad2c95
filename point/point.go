// SPDX-License-Identifier: MIT

package point

import "fmt"

// New returns the point (x, y). Coordinates are unconstrained.
func New(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Mul scales p by k.
func (p Point) Mul(k int64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Point) Manhattan(q Point) int64 {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Clockwise rotates p by 90° clockwise around the origin: (x,y) -> (-y,x).
func (p Point) Clockwise() Point {
	return Point{X: -p.Y, Y: p.X}
}

// CounterClockwise rotates p by 90° counter-clockwise: (x,y) -> (y,-x).
func (p Point) CounterClockwise() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Neighbors returns the eight surrounding points in Adjacent order.
func (p Point) Neighbors() [8]Point {
	var out [8]Point
	for i, d := range Adjacent {
		out[i] = p.Add(d)
	}

	return out
}

// OrthogonalNeighbors returns the four points one axis step away, in
// Orthogonal order.
func (p Point) OrthogonalNeighbors() [4]Point {
	var out [4]Point
	for i, d := range Orthogonal {
		out[i] = p.Add(d)
	}

	return out
}

// Up moves p n steps up.
func (p Point) Up(n int64) Point { return p.Add(Up.Mul(n)) }

// Down moves p n steps down.
func (p Point) Down(n int64) Point { return p.Add(Down.Mul(n)) }

// Left moves p n steps left.
func (p Point) Left(n int64) Point { return p.Add(Left.Mul(n)) }

// Right moves p n steps right.
func (p Point) Right(n int64) Point { return p.Add(Right.Mul(n)) }

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
