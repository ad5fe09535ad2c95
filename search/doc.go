// SPDX-License-Identifier: MIT

// Package search provides breadth-first search over implicit state spaces:
// the caller supplies start states and an Expander that generates the
// successors of a state, and BFS explores them in increasing distance.
//
// States must be comparable; they key the visited set, depth and parent
// maps. Encode slices as strings or bitmasks before searching.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per dequeued state.
//   - WithMaxDepth(d)    do not expand beyond depth d (d == 0: no limit).
//   - WithGoal(fn)       stop as soon as a state satisfying fn is visited.
//   - WithOnVisit(fn)    hook on each visited state; an error aborts.
//
// Complexity:
//
//   - Time:   O(V + E) expander calls and map operations.
//   - Memory: O(V) for the queue and bookkeeping maps.
//
// Errors:
//
//   - ErrNoStart, ErrNilExpander, ErrOptionViolation, ErrNotReached,
//     context errors, and errors returned by OnVisit (wrapped).
package search
