// SPDX-License-Identifier: MIT

package days_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/days"
	"github.com/katalvlaran/aoc2025/graph"
	"github.com/katalvlaran/aoc2025/ilp"
	"github.com/katalvlaran/aoc2025/input"
	"github.com/katalvlaran/aoc2025/solution"
)

func run(t *testing.T, day int, lines []string, example bool) (*solution.Context, error) {
	t.Helper()
	solve, err := days.Lookup(day)
	require.NoError(t, err)
	ctx := solution.NewContext(lines, example)
	return ctx, solve(ctx)
}

// TestSolvers_Examples runs every worked example in the embedded catalog
// and checks the answers it lists.
func TestSolvers_Examples(t *testing.T) {
	c, err := input.Embedded()
	require.NoError(t, err)

	for i, ex := range c.Examples {
		t.Run(fmt.Sprintf("day%02d/%d", ex.Day, i), func(t *testing.T) {
			ctx, err := run(t, ex.Day, ex.Lines(), true)
			require.NoError(t, err)

			if ex.Part1 != "" {
				a, _, ok := ctx.Part1()
				require.True(t, ok, "part 1 not recorded")
				assert.Equal(t, ex.Part1, a.String())
			}
			if ex.Part2 != "" {
				a, _, ok := ctx.Part2()
				require.True(t, ok, "part 2 not recorded")
				assert.Equal(t, ex.Part2, a.String())
			}
		})
	}
}

func TestTreeFarm_AreaBound(t *testing.T) {
	c, err := input.Embedded()
	require.NoError(t, err)
	ex, err := c.First(12)
	require.NoError(t, err)

	ctx, err := run(t, 12, ex.Lines(), true)
	require.NoError(t, err)

	a, _, ok := ctx.Part1()
	require.True(t, ok)
	assert.Equal(t, "3", a.String(), "every example region passes the area bound")
	_, _, ok = ctx.Part2()
	assert.False(t, ok, "day 12 has no second part")
}

func TestPlayground_RealModeLinksMorePairs(t *testing.T) {
	c, err := input.Embedded()
	require.NoError(t, err)
	ex, err := c.First(8)
	require.NoError(t, err)

	// Outside example mode up to 1000 pairs are linked, which joins all 20
	// boxes into a single circuit.
	ctx, err := run(t, 8, ex.Lines(), false)
	require.NoError(t, err)
	a, _, _ := ctx.Part1()
	assert.Equal(t, "20", a.String())
	b, _, _ := ctx.Part2()
	assert.Equal(t, "25272", b.String())
}

func TestSolvers_Malformed(t *testing.T) {
	tests := []struct {
		day   int
		lines []string
	}{
		{1, []string{"X5"}},
		{1, []string{"L"}},
		{1, []string{"Rabc"}},
		{2, nil},
		{2, []string{"5-3"}},
		{2, []string{"1-2,x"}},
		{3, []string{"1"}},
		{3, []string{"12a4567890123"}},
		{4, nil},
		{4, []string{"@@", "@"}},
		{5, []string{"1-x"}},
		{5, []string{"abc"}},
		{6, []string{"1 2"}},
		{6, []string{"1 2", "+ -"}},
		{6, []string{"1 2 3", "+ *"}},
		{7, []string{"..", ".."}},
		{8, []string{"1,2"}},
		{8, []string{"1,2,3"}},
		{9, []string{"1"}},
		{9, []string{"a,b"}},
		{10, []string{"[.#] (2) {1,1}"}},
		{10, []string{"[.#] (1) {1}"}},
		{10, []string{".# (1) {1,1}"}},
		{11, []string{"noseparator"}},
		{11, []string{": a"}},
		{12, []string{"4x: 1"}},
		{12, []string{"1:", "#", "", "0:", "##", "", "4x4: 1 1"}},
		{12, []string{"0:", "#", "", "2:", "##", "", "4x4: 1 1"}},
		{12, []string{"junk"}},
		{12, []string{"0:", "###", "", "3x3: 1 1"}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("day%02d/%q", tc.day, tc.lines), func(t *testing.T) {
			_, err := run(t, tc.day, tc.lines, false)
			assert.ErrorIs(t, err, days.ErrMalformedInput)
		})
	}
}

func TestReactor_Cycle(t *testing.T) {
	_, err := run(t, 11, []string{"you: a", "a: you out"}, false)
	assert.ErrorIs(t, err, days.ErrMalformedInput)
	assert.ErrorIs(t, err, graph.ErrCycleDetected)
}

func TestFactory_Unsolvable(t *testing.T) {
	t.Run("lights", func(t *testing.T) {
		_, err := run(t, 10, []string{"[#.] (1) {0,0}"}, false)
		assert.ErrorIs(t, err, days.ErrNoSolution)
	})

	t.Run("joltage", func(t *testing.T) {
		// Counter 0 has no button wired to it.
		ctx, err := run(t, 10, []string{"[.#] (1) {1,0}"}, false)
		assert.ErrorIs(t, err, ilp.ErrInfeasible)

		a, _, ok := ctx.Part1()
		require.True(t, ok, "part 1 is recorded before part 2 fails")
		assert.Equal(t, "1", a.String())
	})
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, days.Days())

	for _, d := range []int{0, 13, -1} {
		_, err := days.Lookup(d)
		assert.ErrorIs(t, err, days.ErrUnknownDay)
	}
}
