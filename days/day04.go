// SPDX-License-Identifier: MIT

package days

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/point"
	"github.com/katalvlaran/aoc2025/solution"
)

const (
	paperRoll  = '@'
	emptyFloor = '.'
)

func isRoll(b byte) bool { return b == paperRoll }

// removeRolls clears, in one simultaneous pass, every roll with fewer than
// four rolls among its eight neighbors, and returns how many it cleared.
func removeRolls(g *grid.Grid[byte]) int {
	marked := make(map[point.Point]bool)
	for p, v := range g.All() {
		if v == paperRoll && g.CountNeighbors(p, grid.Conn8, isRoll) < 4 {
			marked[p] = true
		}
	}
	if len(marked) == 0 {
		return 0
	}
	g.Apply(func(p point.Point, v byte) byte {
		if marked[p] {
			return emptyFloor
		}
		return v
	})

	return len(marked)
}

func solvePrinting(ctx *solution.Context) error {
	g, err := grid.Parse(ctx.Input())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	first := removeRolls(g)
	ctx.SetPart1(solution.Of(first))

	total, rounds := first, 1
	for n := first; n > 0; rounds++ {
		n = removeRolls(g)
		total += n
	}
	ctx.Logger().Debug("rolls removed", zap.Int("rounds", rounds), zap.Int("total", total))
	ctx.SetPart2(solution.Of(total))

	return nil
}
