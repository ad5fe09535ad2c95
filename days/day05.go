// SPDX-License-Identifier: MIT

package days

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/solution"
)

type idRange struct{ lo, hi uint64 }

func (r idRange) contains(id uint64) bool { return id >= r.lo && id <= r.hi }

// mergeRanges sorts ranges by start and folds overlapping ones together.
func mergeRanges(ranges []idRange) []idRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b idRange) int { return cmp.Compare(a.lo, b.lo) })

	out := []idRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.lo <= last.hi {
			last.hi = max(last.hi, r.hi)
			continue
		}
		out = append(out, r)
	}

	return out
}

// solveCafeteria reads fresh-ingredient ranges and ingredient IDs. Lines
// with a '-' are ranges and the rest are IDs; blank lines are ignored.
func solveCafeteria(ctx *solution.Context) error {
	var (
		ranges []idRange
		ids    []uint64
	)
	for i, line := range ctx.Input() {
		switch {
		case line == "":
			continue
		case strings.Contains(line, "-"):
			lo, hi, err := parseRange(line)
			if err != nil {
				return malformed(i, line, "%v", err)
			}
			ranges = append(ranges, idRange{lo, hi})
		default:
			id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return malformed(i, line, "bad ingredient ID")
			}
			ids = append(ids, id)
		}
	}

	var fresh int
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r idRange) bool { return r.contains(id) }) {
			fresh++
		}
	}
	ctx.SetPart1(solution.Of(fresh))

	var total uint64
	for _, r := range mergeRanges(ranges) {
		total += r.hi - r.lo + 1
	}
	ctx.SetPart2(solution.Of(total))

	return nil
}
