// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNoStart is returned when no start state is given.
	ErrNoStart = errors.New("search: no start state")

	// ErrNilExpander is returned when the expander function is nil.
	ErrNilExpander = errors.New("search: expander is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNotReached is returned by PathTo for a state the search never saw.
	ErrNotReached = errors.New("search: state not reached")
)

// Expander returns the successors of s. Returning nil ends the branch.
type Expander[S comparable] func(s S) []S

// Option configures BFS behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize a search.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding states at this depth.
	MaxDepth int

	// Goal, if set, ends the search at the first visited state it accepts.
	Goal func(s S) bool

	// OnVisit is called for each state in visit order. A non-nil error
	// aborts the search.
	OnVisit func(s S, depth int) error

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no goal and a no-op visit hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:     context.Background(),
		OnVisit: func(S, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits expansion depth.
//
//	d > 0: states at depth d are visited but not expanded
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithGoal stops the search at the first visited state accepted by fn.
func WithGoal[S comparable](fn func(s S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Goal = fn
	}
}

// WithOnVisit registers a callback run on every visited state.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order: states in visit sequence.
//   - Depth: distance of every discovered state from the nearest start.
//   - Parent: predecessor of every discovered non-start state.
//   - Found/Goal: the first state accepted by the goal predicate, if any.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Found  bool
	Goal   S
}

// PathTo reconstructs the path from a start state to dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
