// SPDX-License-Identifier: MIT

// Package ilp minimizes a non-negative linear cost over non-negative integer
// solutions of an equality system A·x = b.
//
// The solver is exact and works only on int64 values:
//
//  1. Every variable gets an upper bound from the rows it appears in
//     (x_j ≤ b_i / A_ij). Since all coefficients are non-negative these
//     bounds are valid for every feasible x.
//  2. The augmented matrix [A | b] is reduced by fraction-free Gauss-Jordan
//     elimination. Rows are divided by their gcd after each step to keep
//     values small.
//  3. Columns without a pivot are free. Free variables are enumerated within
//     their bounds; each assignment determines the pivot variables, which
//     must come out as exact non-negative integers.
//
// The search is exponential in the number of free variables, which is the
// column count minus the rank of A. It suits small systems with few more
// unknowns than equations.
//
// Errors:
//
//   - ErrInvalidProblem: ragged shapes or negative inputs.
//   - ErrInfeasible: no non-negative integer x satisfies A·x = b.
package ilp
