// SPDX-License-Identifier: MIT

// Package aoc2025 collects Advent of Code 2025 solutions and the small
// grid, search and graph toolkit they are built on.
//
// Layout:
//
//	point/      2-D integer coordinates and compass offsets
//	grid/       dense Grid[T] with bounds-checked access and iteration
//	solution/   per-run Context: input, example flag, timed answers
//	search/     generic breadth-first search over implicit state spaces
//	graph/      directed graph with memoized path counting
//	unionfind/  disjoint sets and sorted-edge sweeps
//	ilp/        exact small integer linear programs
//	days/       one solver per puzzle day and the day registry
//	input/      input files, EXAMPLE mode and the embedded examples
//	runner/     batch execution and the timing report
//	cmd/aoc/    command line entry point
//
// Run `aoc --example 1 2 3` to check solvers against the worked examples,
// or `aoc 1 2 3` with inputs/day01.txt and friends in place.
package aoc2025
