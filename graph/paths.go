// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Visitation states of a (vertex, mask) key during path counting.
const (
	white = iota // not visited
	gray         // on the current walk
	black        // fully counted
)

type pathKey[K comparable] struct {
	v    K
	mask uint64
}

type pathCounter[K comparable] struct {
	g     *Digraph[K]
	to    K
	via   map[K]uint64 // waypoint → bit
	full  uint64
	state map[pathKey[K]]int
	memo  map[pathKey[K]]uint64
}

// CountPaths returns the number of walks from → to that visit every vertex
// in via at least once. A from that is not in the graph has no walks.
func (g *Digraph[K]) CountPaths(from, to K, via ...K) (uint64, error) {
	if len(via) > 64 {
		return 0, fmt.Errorf("%w: got %d", ErrTooManyWaypoints, len(via))
	}
	pc := &pathCounter[K]{
		g:     g,
		to:    to,
		via:   make(map[K]uint64, len(via)),
		state: make(map[pathKey[K]]int),
		memo:  make(map[pathKey[K]]uint64),
	}
	for i, w := range via {
		pc.via[w] |= 1 << uint(i)
		pc.full |= 1 << uint(i)
	}
	if !g.HasVertex(from) {
		return 0, nil
	}

	return pc.count(from, 0)
}

// count walks from v with the waypoints in mask already seen.
func (pc *pathCounter[K]) count(v K, mask uint64) (uint64, error) {
	mask |= pc.via[v]
	if v == pc.to {
		if mask == pc.full {
			return 1, nil
		}
		return 0, nil
	}

	key := pathKey[K]{v: v, mask: mask}
	switch pc.state[key] {
	case black:
		return pc.memo[key], nil
	case gray:
		return 0, fmt.Errorf("%w: at %v", ErrCycleDetected, v)
	}
	pc.state[key] = gray

	var total uint64
	for _, next := range pc.g.succ[v] {
		n, err := pc.count(next, mask)
		if err != nil {
			return 0, err
		}
		total += n
	}

	pc.state[key] = black
	pc.memo[key] = total

	return total, nil
}
