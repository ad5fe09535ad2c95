// SPDX-License-Identifier: MIT

// Package runner executes a batch of puzzle days and prints a report.
//
// For every day the runner looks up the solver, loads the input (a file
// from Config.InputDir, or the embedded worked example in example mode),
// runs the solver against a fresh solution.Context and prints:
//
//	=== Day 01 ===
//	  · Part 1: 3
//	  · Elapsed: 0.0120 ms
//	  · Part 2: 6
//	  · Elapsed: 0.0040 ms
//	Total: 0.0160 ms
//
// A part the solver did not record prints "Part N: Not implemented". The
// report ends with "Total runtime: x ms", the sum of all recorded parts.
//
// A failing day is reported and the batch moves on to the next day unless
// Config.FailFast is set. Run returns an error when any day failed. In
// example mode an answer that differs from the catalog is a failure too.
package runner
