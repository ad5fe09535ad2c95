// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  Expander[S]
	opts  Options[S]
	ctx   context.Context
	queue []queueItem[S]
	head  int
	res   *Result[S]
}

// BFS explores the state space reachable from starts in breadth-first
// order. Duplicate starts are visited once. With a goal the search stops
// at the first accepted state and sets Result.Found; Result.Depth of that
// state is the minimum number of expansions needed to reach it.
func BFS[S comparable](starts []S, next Expander[S], opts ...Option[S]) (*Result[S], error) {
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	if next == nil {
		return nil, ErrNilExpander
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, len(starts)),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range starts {
		if _, seen := w.res.Depth[s]; !seen {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue records s at depth d and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop drains the queue until empty, goal, error or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", item.state, err)
		}
		if w.opts.Goal != nil && w.opts.Goal(item.state) {
			w.res.Found = true
			w.res.Goal = item.state
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.next(item.state) {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			w.res.Parent[nb] = item.state
			w.enqueue(nb, item.depth+1)
		}
	}

	return nil
}
