// SPDX-License-Identifier: MIT

package days

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/search"
	"github.com/katalvlaran/aoc2025/solution"
)

var digitSeeds = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// repeatedIDs sums the IDs in [lo, hi] made of one digit block repeated.
// twice counts blocks repeated exactly two times, many any count ≥ 2.
//
// Blocks are grown by BFS, one leading digit per level, up to half the
// digit count of hi. Each visited block is repeated while the result still
// fits in that many digits.
func repeatedIDs(lo, hi uint64) (twice, many uint64, err error) {
	width := len(strconv.FormatUint(hi, 10))
	setTwice := make(map[uint64]struct{})
	setMany := make(map[uint64]struct{})

	grow := func(block string) []string {
		if len(block) >= width/2 {
			return nil
		}
		out := make([]string, len(digitSeeds))
		for i, d := range digitSeeds {
			out[i] = d + block
		}
		return out
	}
	collect := func(block string, _ int) error {
		if block[0] == '0' {
			return nil
		}
		k := 2
		for id := block + block; len(id) <= width; id += block {
			v, perr := strconv.ParseUint(id, 10, 64)
			if perr == nil && v >= lo && v <= hi {
				if k == 2 {
					setTwice[v] = struct{}{}
				}
				setMany[v] = struct{}{}
			}
			k++
		}
		return nil
	}
	if _, err = search.BFS(digitSeeds, grow, search.WithOnVisit(collect)); err != nil {
		return 0, 0, err
	}

	for v := range setTwice {
		twice += v
	}
	for v := range setMany {
		many += v
	}

	return twice, many, nil
}

// solveGiftShop sums the invalid product IDs inside comma-separated ranges.
func solveGiftShop(ctx *solution.Context) error {
	lines := ctx.Input()
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return malformed(0, "", "want a line of ranges")
	}

	var sumTwice, sumMany uint64
	for _, r := range strings.Split(strings.TrimSpace(lines[0]), ",") {
		if r == "" {
			continue
		}
		lo, hi, err := parseRange(r)
		if err != nil {
			return malformed(0, lines[0], "%v", err)
		}
		twice, many, err := repeatedIDs(lo, hi)
		if err != nil {
			return err
		}
		sumTwice += twice
		sumMany += many
	}

	ctx.SetPart1(solution.Of(sumTwice))
	ctx.SetPart2(solution.Of(sumMany))

	return nil
}
