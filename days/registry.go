// SPDX-License-Identifier: MIT

package days

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/solution"
)

var (
	// ErrUnknownDay is returned by Lookup for a day without a solver.
	ErrUnknownDay = errors.New("days: no solver for day")

	// ErrMalformedInput indicates input a solver cannot parse.
	ErrMalformedInput = errors.New("days: malformed input")

	// ErrNoSolution indicates well-formed input whose puzzle has no answer.
	ErrNoSolution = errors.New("days: no solution")
)

// Solver solves one day's puzzle against a run context.
type Solver func(ctx *solution.Context) error

var registry = map[int]Solver{
	1:  solveDial,
	2:  solveGiftShop,
	3:  solveLobby,
	4:  solvePrinting,
	5:  solveCafeteria,
	6:  solveTrashCompactor,
	7:  solveLaboratories,
	8:  solvePlayground,
	9:  solveMovieTheater,
	10: solveFactory,
	11: solveReactor,
	12: solveTreeFarm,
}

// Lookup returns the solver for day.
func Lookup(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns every registered day in ascending order.
func Days() []int {
	out := make([]int, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	slices.Sort(out)

	return out
}

// malformed builds an ErrMalformedInput error for the zero-based line i.
func malformed(i int, line, format string, args ...any) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrMalformedInput, i+1, line, fmt.Sprintf(format, args...))
}

// parseInts splits s on sep and parses every field as a base-10 int64.
func parseInts(s, sep string) ([]int64, error) {
	fields := strings.Split(s, sep)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// parseRange parses "lo-hi" into two unsigned bounds with lo <= hi.
func parseRange(s string) (lo, hi uint64, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: missing '-'", s)
	}
	if lo, err = strconv.ParseUint(a, 10, 64); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.ParseUint(b, 10, 64); err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("range %q: start after end", s)
	}

	return lo, hi, nil
}
