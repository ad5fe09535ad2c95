// SPDX-License-Identifier: MIT

package days

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/solution"
	"github.com/katalvlaran/aoc2025/unionfind"
)

const (
	examplePairs = 10
	inputPairs   = 1000
)

type junctionBox struct{ x, y, z int64 }

func (a junctionBox) dist2(b junctionBox) int64 {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	return dx*dx + dy*dy + dz*dz
}

// solvePlayground links junction boxes closest pair first. Part 1 multiplies
// the three largest circuits after the first N links; part 2 multiplies the
// X coordinates of the pair whose link joins everything into one circuit.
func solvePlayground(ctx *solution.Context) error {
	var boxes []junctionBox
	for i, line := range ctx.Input() {
		v, err := parseInts(line, ",")
		if err != nil || len(v) != 3 {
			return malformed(i, line, "want x,y,z")
		}
		boxes = append(boxes, junctionBox{v[0], v[1], v[2]})
	}
	if len(boxes) < 2 {
		return fmt.Errorf("%w: need at least two junction boxes", ErrMalformedInput)
	}

	edges := make([]unionfind.Edge, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			edges = append(edges, unionfind.Edge{U: i, V: j, Weight: boxes[i].dist2(boxes[j])})
		}
	}
	unionfind.SortEdges(edges)

	pairs := inputPairs
	if ctx.IsExample() {
		pairs = examplePairs
	}
	pairs = min(pairs, len(edges))

	var (
		largest, lastX int64
		done1, done2   bool
	)
	circuits := unionfind.New(len(boxes))
	_, err := circuits.Sweep(edges, func(i int, e unionfind.Edge, merged bool) bool {
		if i == pairs-1 {
			largest = 1
			sizes := circuits.Sizes()
			for _, s := range sizes[:min(3, len(sizes))] {
				largest *= int64(s)
			}
			done1 = true
		}
		if merged && circuits.Sets() == 1 {
			lastX = boxes[e.U].x * boxes[e.V].x
			done2 = true
		}
		return !done1 || !done2
	})
	if err != nil {
		return err
	}
	ctx.Logger().Debug("circuits linked", zap.Int("boxes", len(boxes)), zap.Int("pairs", pairs))

	ctx.SetPart1(solution.Of(largest))
	ctx.SetPart2(solution.Of(lastX))

	return nil
}
