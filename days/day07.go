// SPDX-License-Identifier: MIT

package days

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/graph"
	"github.com/katalvlaran/aoc2025/grid"
	"github.com/katalvlaran/aoc2025/point"
	"github.com/katalvlaran/aoc2025/search"
	"github.com/katalvlaran/aoc2025/solution"
)

const (
	beamStart = 'S'
	splitter  = '^'
)

// manifoldExit stands for every cell outside the manifold.
var manifoldExit = point.New(-1, -1)

// beamSteps returns where a beam at p goes next: a splitter sends it left
// and right, anything else lets it fall one row.
func beamSteps(g *grid.Grid[byte], p point.Point) []point.Point {
	if v, _ := g.Get(p); v == splitter {
		return []point.Point{p.Left(1), p.Right(1)}
	}

	return []point.Point{p.Down(1)}
}

// solveLaboratories counts the splitters a beam reaches (part 1) and the
// number of distinct timelines a single particle can take (part 2).
func solveLaboratories(ctx *solution.Context) error {
	g, err := grid.Parse(ctx.Input())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	start, ok := grid.Find(g, beamStart)
	if !ok {
		return fmt.Errorf("%w: no beam start %q", ErrMalformedInput, beamStart)
	}

	res, err := search.BFS([]point.Point{start}, func(p point.Point) []point.Point {
		var out []point.Point
		for _, q := range beamSteps(g, p) {
			if g.Contains(q) {
				out = append(out, q)
			}
		}
		return out
	})
	if err != nil {
		return err
	}

	splits := 0
	for _, p := range res.Order {
		if v, _ := g.Get(p); v == splitter {
			splits++
		}
	}
	ctx.SetPart1(solution.Of(splits))

	// Every reached cell becomes a vertex; leaving the grid ends a timeline.
	timelines := graph.New[point.Point]()
	for _, p := range res.Order {
		for _, q := range beamSteps(g, p) {
			if !g.Contains(q) {
				q = manifoldExit
			}
			timelines.AddEdge(p, q)
		}
	}
	ctx.Logger().Debug("manifold mapped", zap.Int("cells", timelines.Len()))

	n, err := timelines.CountPaths(start, manifoldExit)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	ctx.SetPart2(solution.Of(n))

	return nil
}
