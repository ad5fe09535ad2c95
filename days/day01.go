// SPDX-License-Identifier: MIT

package days

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/solution"
)

const (
	dialSize  = 100
	dialStart = 50
)

// dial is a circular 0..99 counter that tracks how often it touches zero.
type dial struct {
	pos    int64
	clicks int64 // times the pointer passed or landed on zero
}

// right turns the dial clockwise by n clicks.
func (d *dial) right(n int64) {
	d.clicks += (d.pos + n) / dialSize
	d.pos = (d.pos + n) % dialSize
}

// left turns the dial counter-clockwise by n clicks.
func (d *dial) left(n int64) {
	switch {
	case d.pos == 0:
		d.clicks += n / dialSize
	case n >= d.pos:
		d.clicks += (n-d.pos)/dialSize + 1
	}
	d.pos = ((d.pos-n)%dialSize + dialSize) % dialSize
}

// solveDial counts how often the dial rests on zero after a turn (part 1)
// and how often any click lands on zero (part 2).
func solveDial(ctx *solution.Context) error {
	d := dial{pos: dialStart}
	var rests int64
	for i, line := range ctx.Input() {
		if len(line) < 2 {
			return malformed(i, line, "want L<n> or R<n>")
		}
		n, err := strconv.ParseInt(line[1:], 10, 64)
		if err != nil || n < 0 {
			return malformed(i, line, "bad click count")
		}
		switch line[0] {
		case 'R':
			d.right(n)
		case 'L':
			d.left(n)
		default:
			return malformed(i, line, "direction %q", line[0])
		}
		if d.pos == 0 {
			rests++
		}
	}
	ctx.Logger().Debug("dial settled", zap.Int64("position", d.pos))

	ctx.SetPart1(solution.Of(rests))
	ctx.SetPart2(solution.Of(d.clicks))

	return nil
}
