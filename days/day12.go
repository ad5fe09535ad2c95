// SPDX-License-Identifier: MIT

package days

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/solution"
)

// treeRegion is a "WxH: n0 n1 ..." line: an area under a tree and how many
// presents of each shape must fit in it.
type treeRegion struct {
	width, height uint64
	counts        []uint64
}

// parseTreeFarm reads present shapes ("N:" followed by rows of '#' and '.')
// and regions. Shapes must be numbered 0, 1, 2 ... in order since region
// counts refer to them by position. Only the cell count of each shape is kept.
func parseTreeFarm(lines []string) (areas []uint64, regions []treeRegion, err error) {
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		head, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, nil, malformed(i, line, "want N: or WxH:")
		}

		if w, h, isRegion := strings.Cut(head, "x"); isRegion {
			r := treeRegion{}
			if r.width, err = strconv.ParseUint(w, 10, 64); err != nil {
				return nil, nil, malformed(i, line, "bad width")
			}
			if r.height, err = strconv.ParseUint(h, 10, 64); err != nil {
				return nil, nil, malformed(i, line, "bad height")
			}
			for _, f := range strings.Fields(rest) {
				n, perr := strconv.ParseUint(f, 10, 64)
				if perr != nil {
					return nil, nil, malformed(i, line, "bad count %q", f)
				}
				r.counts = append(r.counts, n)
			}
			regions = append(regions, r)
			continue
		}

		idx, perr := strconv.Atoi(strings.TrimSpace(head))
		if perr != nil {
			return nil, nil, malformed(i, line, "bad shape index")
		}
		if idx != len(areas) {
			return nil, nil, malformed(i, line, "shape %d out of order, want %d", idx, len(areas))
		}
		var cells uint64
		for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" && !strings.Contains(lines[i+1], ":") {
			i++
			cells += uint64(strings.Count(lines[i], "#"))
		}
		areas = append(areas, cells)
	}

	for _, r := range regions {
		if len(r.counts) > len(areas) {
			return nil, nil, fmt.Errorf("%w: region %dx%d lists %d shapes, only %d defined",
				ErrMalformedInput, r.width, r.height, len(r.counts), len(areas))
		}
	}

	return areas, regions, nil
}

// solveTreeFarm counts the regions whose area can hold the total area of
// their presents. There is no second part.
func solveTreeFarm(ctx *solution.Context) error {
	areas, regions, err := parseTreeFarm(ctx.Input())
	if err != nil {
		return err
	}

	fits := 0
	for _, r := range regions {
		var need uint64
		for k, n := range r.counts {
			need += n * areas[k]
		}
		if need <= r.width*r.height {
			fits++
		}
	}
	ctx.Logger().Debug("tree farm", zap.Int("shapes", len(areas)), zap.Int("regions", len(regions)))
	ctx.SetPart1(solution.Of(fits))

	return nil
}
