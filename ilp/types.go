// SPDX-License-Identifier: MIT

package ilp

import "errors"

var (
	// ErrInvalidProblem indicates a malformed or out-of-domain problem.
	ErrInvalidProblem = errors.New("ilp: invalid problem")

	// ErrInfeasible indicates that the system has no non-negative integer solution.
	ErrInfeasible = errors.New("ilp: infeasible")
)

// Problem is: minimize Cost·x subject to A·x = B, x ≥ 0, x integer.
// A is row-major with len(B) rows. All entries must be non-negative.
// A nil Cost means every variable costs 1.
type Problem struct {
	A    [][]int64
	B    []int64
	Cost []int64
}

// Solution is an optimal assignment and its cost.
type Solution struct {
	X         []int64
	Objective int64
}
