// SPDX-License-Identifier: MIT

// Package solution holds the per-puzzle run context: the input lines, the
// example flag, and the two recorded answers with their timings.
//
// A Context starts its clock when it is created. Part 1's elapsed time is
// measured from that instant; Part 2's is the gap since Part 1 was
// recorded (or since the start when Part 1 was never recorded), so each
// part reports its own cost.
package solution
