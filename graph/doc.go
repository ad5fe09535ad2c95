// SPDX-License-Identifier: MIT

// Package graph provides a small generic directed graph and memoized path
// counting over it.
//
// Digraph keeps vertices in insertion order so every traversal is
// deterministic. Parallel edges are kept: two identical edges are two
// distinct ways to move between the same vertices.
//
// CountPaths counts the distinct walks from one vertex to another that
// pass through every listed waypoint. Results are memoized per
// (vertex, waypoints-seen) pair, so the cost is O((V+E)·2^w) for w
// waypoints. Reaching the target ends a walk; it is not extended further.
//
// Errors:
//
//   - ErrCycleDetected: a cycle is reachable from the start vertex, so the
//     number of walks is unbounded.
//   - ErrTooManyWaypoints: more than 64 waypoints.
package graph
