// SPDX-License-Identifier: MIT

package days

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/ilp"
	"github.com/katalvlaran/aoc2025/search"
	"github.com/katalvlaran/aoc2025/solution"
)

const maxLights = 64

// machine is one factory line: an indicator pattern, buttons that each
// toggle a set of lights, and joltage targets for the same positions.
type machine struct {
	lights  int
	target  uint64 // bit i set when light i must end up on
	buttons [][]int
	joltage []int64
}

// bracketed strips the delimiters l and r from s or reports that they are missing.
func bracketed(s string, l, r byte) (string, bool) {
	if len(s) < 2 || s[0] != l || s[len(s)-1] != r {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// parseMachine reads "[.##.] (3) (1,3) {3,5,4,7}".
func parseMachine(line string) (machine, error) {
	var m machine
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return m, fmt.Errorf("want [pattern] (buttons...) {joltage}")
	}

	pattern, ok := bracketed(fields[0], '[', ']')
	if !ok {
		return m, fmt.Errorf("pattern %q not in brackets", fields[0])
	}
	if len(pattern) == 0 || len(pattern) > maxLights {
		return m, fmt.Errorf("%d lights, want 1..%d", len(pattern), maxLights)
	}
	m.lights = len(pattern)
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			m.target |= 1 << uint(i)
		case '.':
		default:
			return m, fmt.Errorf("light %q", pattern[i])
		}
	}

	last := fields[len(fields)-1]
	jolts, ok := bracketed(last, '{', '}')
	if !ok {
		return m, fmt.Errorf("joltage %q not in braces", last)
	}
	j, err := parseInts(jolts, ",")
	if err != nil || len(j) != m.lights {
		return m, fmt.Errorf("joltage %q: want %d counters", last, m.lights)
	}
	for _, v := range j {
		if v < 0 {
			return m, fmt.Errorf("negative joltage in %q", last)
		}
	}
	m.joltage = j

	for _, f := range fields[1 : len(fields)-1] {
		wiring, ok := bracketed(f, '(', ')')
		if !ok {
			return m, fmt.Errorf("button %q not in parentheses", f)
		}
		idx, err := parseInts(wiring, ",")
		if err != nil {
			return m, fmt.Errorf("button %q: %w", f, err)
		}
		button := make([]int, len(idx))
		for k, v := range idx {
			if v < 0 || v >= int64(m.lights) {
				return m, fmt.Errorf("button %q: light %d out of range", f, v)
			}
			button[k] = int(v)
		}
		m.buttons = append(m.buttons, button)
	}

	return m, nil
}

// fewestToggles is the minimum number of presses that turn the lights from
// all off to the target pattern. Each press XORs one button mask, so BFS
// over the 2^lights bit patterns finds it.
func (m machine) fewestToggles() (int, error) {
	masks := make([]uint64, len(m.buttons))
	for i, b := range m.buttons {
		for _, l := range b {
			masks[i] |= 1 << uint(l)
		}
	}

	res, err := search.BFS([]uint64{0},
		func(s uint64) []uint64 {
			out := make([]uint64, len(masks))
			for i, mask := range masks {
				out[i] = s ^ mask
			}
			return out
		},
		search.WithGoal(func(s uint64) bool { return s == m.target }),
	)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, fmt.Errorf("%w: light pattern unreachable", ErrNoSolution)
	}
	path, err := res.PathTo(res.Goal)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// fewestPresses is the minimum number of presses that raise every counter
// to its joltage target, where a press adds one to each wired counter.
func (m machine) fewestPresses() (int64, error) {
	a := make([][]int64, m.lights)
	for i := range a {
		a[i] = make([]int64, len(m.buttons))
	}
	for j, b := range m.buttons {
		for _, l := range b {
			a[l][j]++
		}
	}
	sol, err := ilp.Minimize(ilp.Problem{A: a, B: m.joltage})
	if err != nil {
		return 0, err
	}

	return sol.Objective, nil
}

func solveFactory(ctx *solution.Context) error {
	var machines []machine
	for i, line := range ctx.Input() {
		m, err := parseMachine(line)
		if err != nil {
			return malformed(i, line, "%v", err)
		}
		machines = append(machines, m)
	}

	var toggles int
	for i, m := range machines {
		n, err := m.fewestToggles()
		if err != nil {
			return fmt.Errorf("machine %d: %w", i+1, err)
		}
		toggles += n
	}
	ctx.SetPart1(solution.Of(toggles))

	var presses int64
	for i, m := range machines {
		n, err := m.fewestPresses()
		if err != nil {
			return fmt.Errorf("machine %d: %w", i+1, err)
		}
		ctx.Logger().Debug("joltage configured", zap.Int("machine", i+1), zap.Int64("presses", n))
		presses += n
	}
	ctx.SetPart2(solution.Of(presses))

	return nil
}
