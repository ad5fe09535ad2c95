// SPDX-License-Identifier: MIT

package days

import (
	"github.com/katalvlaran/aoc2025/point"
	"github.com/katalvlaran/aoc2025/solution"
)

type segment struct{ a, b point.Point }

// crosses reports whether s and t intersect at a point strictly inside
// both. Parallel segments and contacts at an endpoint do not count.
// The parametric positions tn/den and un/den along each segment must both
// fall in the open interval (0, 1); the test stays in integers.
func (s segment) crosses(o segment) bool {
	x1, y1, x2, y2 := s.a.X, s.a.Y, s.b.X, s.b.Y
	x3, y3, x4, y4 := o.a.X, o.a.Y, o.b.X, o.b.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return false
	}
	tn := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	un := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	if den < 0 {
		den, tn, un = -den, -tn, -un
	}

	return tn > 0 && tn < den && un > 0 && un < den
}

// tileArea is the number of tiles in the rectangle with opposite corners p, q.
func tileArea(p, q point.Point) int64 {
	return (point.Abs(p.X-q.X) + 1) * (point.Abs(p.Y-q.Y) + 1)
}

// enclosed reports whether no polygon edge cuts through the rectangle with
// opposite corners p and q. Both diagonals are tested along with the four
// sides, which catches edges that pass through the interior.
func enclosed(p, q point.Point, edges []segment) bool {
	pq, qp := point.New(q.X, p.Y), point.New(p.X, q.Y)
	probes := [6]segment{
		{p, q}, {qp, pq},
		{p, pq}, {pq, q}, {q, qp}, {qp, p},
	}
	for _, r := range probes {
		for _, e := range edges {
			if r.crosses(e) {
				return false
			}
		}
	}

	return true
}

// solveMovieTheater finds the largest rectangle spanned by two red tiles
// (part 1) and the largest one that stays inside the red/green loop (part 2).
func solveMovieTheater(ctx *solution.Context) error {
	var tiles []point.Point
	for i, line := range ctx.Input() {
		v, err := parseInts(line, ",")
		if err != nil || len(v) != 2 {
			return malformed(i, line, "want x,y")
		}
		tiles = append(tiles, point.New(v[0], v[1]))
	}

	edges := make([]segment, len(tiles))
	for i, p := range tiles {
		edges[i] = segment{p, tiles[(i+1)%len(tiles)]}
	}

	var widest, inside int64
	for i, p := range tiles {
		for _, q := range tiles[i+1:] {
			area := tileArea(p, q)
			widest = max(widest, area)
			// Degenerate rectangles are never taken as the inner answer.
			if p.X == q.X || p.Y == q.Y || area <= inside {
				continue
			}
			if enclosed(p, q, edges) {
				inside = area
			}
		}
	}

	ctx.SetPart1(solution.Of(widest))
	ctx.SetPart2(solution.Of(inside))

	return nil
}
