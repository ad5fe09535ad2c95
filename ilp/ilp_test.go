// SPDX-License-Identifier: MIT

package ilp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/ilp"
)

func TestMinimize(t *testing.T) {
	tests := []struct {
		name  string
		p     ilp.Problem
		wantX []int64
		want  int64
	}{
		{
			name:  "square system",
			p:     ilp.Problem{A: [][]int64{{1, 1}, {0, 1}}, B: []int64{3, 1}},
			wantX: []int64{2, 1},
			want:  3,
		},
		{
			name:  "weighted cost prefers cheap variable",
			p:     ilp.Problem{A: [][]int64{{1, 1}}, B: []int64{4}, Cost: []int64{1, 2}},
			wantX: []int64{4, 0},
			want:  4,
		},
		{
			name:  "free variable at zero",
			p:     ilp.Problem{A: [][]int64{{1, 1, 0}, {0, 1, 1}}, B: []int64{2, 2}},
			wantX: []int64{0, 2, 0},
			want:  2,
		},
		{
			name:  "unused column stays zero",
			p:     ilp.Problem{A: [][]int64{{1, 0}}, B: []int64{5}},
			wantX: []int64{5, 0},
			want:  5,
		},
		{
			name:  "zero right-hand side",
			p:     ilp.Problem{A: [][]int64{{1, 2}}, B: []int64{0}},
			wantX: []int64{0, 0},
			want:  0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := ilp.Minimize(tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sol.Objective)
			assert.Equal(t, tc.wantX, sol.X)
		})
	}
}

// TestMinimize_Joltage uses button-to-counter incidence systems: each
// column is a button, each row a counter.
func TestMinimize_Joltage(t *testing.T) {
	incidence := func(counters int, buttons [][]int) [][]int64 {
		a := make([][]int64, counters)
		for i := range a {
			a[i] = make([]int64, len(buttons))
		}
		for j, b := range buttons {
			for _, i := range b {
				a[i][j] = 1
			}
		}
		return a
	}

	tests := []struct {
		name    string
		buttons [][]int
		goal    []int64
		want    int64
	}{
		{"six buttons", [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}, []int64{3, 5, 4, 7}, 10},
		{"five buttons", [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}}, []int64{7, 5, 12, 7, 2}, 12},
		{"four buttons", [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}}, []int64{10, 11, 11, 5, 10, 5}, 11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := incidence(len(tc.goal), tc.buttons)
			sol, err := ilp.Minimize(ilp.Problem{A: a, B: tc.goal})
			require.NoError(t, err)
			assert.Equal(t, tc.want, sol.Objective)

			// The returned assignment must satisfy every equation.
			for i, row := range a {
				var sum int64
				for j, v := range row {
					sum += v * sol.X[j]
				}
				assert.Equal(t, tc.goal[i], sum, "row %d", i)
			}
		})
	}
}

func TestMinimize_Infeasible(t *testing.T) {
	tests := []struct {
		name string
		p    ilp.Problem
	}{
		{"odd target", ilp.Problem{A: [][]int64{{2}}, B: []int64{3}}},
		{"contradictory rows", ilp.Problem{A: [][]int64{{1, 0}, {1, 0}}, B: []int64{1, 2}}},
		{"needs negative", ilp.Problem{A: [][]int64{{1, 1}, {0, 1}}, B: []int64{1, 2}}},
		{"no variables", ilp.Problem{A: [][]int64{{}}, B: []int64{1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ilp.Minimize(tc.p)
			assert.ErrorIs(t, err, ilp.ErrInfeasible)
		})
	}
}

func TestMinimize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		p    ilp.Problem
	}{
		{"row count mismatch", ilp.Problem{A: [][]int64{{1}}, B: []int64{1, 2}}},
		{"ragged rows", ilp.Problem{A: [][]int64{{1, 1}, {1}}, B: []int64{1, 1}}},
		{"negative coefficient", ilp.Problem{A: [][]int64{{-1}}, B: []int64{1}}},
		{"negative rhs", ilp.Problem{A: [][]int64{{1}}, B: []int64{-1}}},
		{"negative cost", ilp.Problem{A: [][]int64{{1}}, B: []int64{1}, Cost: []int64{-1}}},
		{"cost length mismatch", ilp.Problem{A: [][]int64{{1, 1}}, B: []int64{1}, Cost: []int64{1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ilp.Minimize(tc.p)
			assert.ErrorIs(t, err, ilp.ErrInvalidProblem)
		})
	}
}

func TestMinimize_Empty(t *testing.T) {
	sol, err := ilp.Minimize(ilp.Problem{})
	require.NoError(t, err)
	assert.Zero(t, sol.Objective)
	assert.Empty(t, sol.X)
}
