// SPDX-License-Identifier: MIT

package days

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2025/graph"
	"github.com/katalvlaran/aoc2025/solution"
)

// solveReactor counts device paths you→out (part 1) and svr→out through
// both dac and fft (part 2). A missing start device has no paths.
func solveReactor(ctx *solution.Context) error {
	devices := graph.New[string]()
	for i, line := range ctx.Input() {
		name, outputs, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return malformed(i, line, "want name: outputs...")
		}
		devices.AddVertex(name)
		for _, out := range strings.Fields(outputs) {
			devices.AddEdge(name, out)
		}
	}

	you, err := devices.CountPaths("you", "out")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	ctx.SetPart1(solution.Of(you))

	svr, err := devices.CountPaths("svr", "out", "dac", "fft")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	ctx.SetPart2(solution.Of(svr))

	return nil
}
