// SPDX-License-Identifier: MIT

package days

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/solution"
)

// maxJoltage picks k digits of bank in order to form the largest number.
// Digit i is the largest in the window that still leaves room for the
// remaining k-i-1 picks; ties go to the leftmost position.
func maxJoltage(bank string, k int) (uint64, error) {
	if len(bank) < k {
		return 0, fmt.Errorf("bank has %d batteries, need %d", len(bank), k)
	}
	for j := 0; j < len(bank); j++ {
		if bank[j] < '0' || bank[j] > '9' {
			return 0, fmt.Errorf("battery %q is not a digit", bank[j])
		}
	}

	var out uint64
	start := 0
	for i := 0; i < k; i++ {
		end := len(bank) - (k - i)
		best := start
		for j := start + 1; j <= end; j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		out = out*10 + uint64(bank[best]-'0')
		start = best + 1
	}

	return out, nil
}

func solveLobby(ctx *solution.Context) error {
	var two, twelve uint64
	for i, line := range ctx.Input() {
		a, err := maxJoltage(line, 2)
		if err != nil {
			return malformed(i, line, "%v", err)
		}
		b, err := maxJoltage(line, 12)
		if err != nil {
			return malformed(i, line, "%v", err)
		}
		two += a
		twelve += b
	}

	ctx.SetPart1(solution.Of(two))
	ctx.SetPart2(solution.Of(twelve))

	return nil
}
