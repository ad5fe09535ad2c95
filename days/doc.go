// SPDX-License-Identifier: MIT

// Package days holds one solver per Advent of Code 2025 puzzle day and a
// registry mapping day numbers to them.
//
// A Solver reads ctx.Input(), records up to two answers with
// ctx.SetPart1/SetPart2 and returns an error for input it cannot parse.
// Such errors wrap ErrMalformedInput and name the offending line, so a
// batch run can report one bad day and continue with the next.
//
// Solvers are independent; they share only the helper packages:
//
//	grid, point   days 4, 7, 9
//	search        days 2, 7, 10
//	graph         days 7, 11
//	unionfind     day 8
//	ilp           day 10
package days
