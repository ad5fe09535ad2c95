// SPDX-License-Identifier: MIT

// Package unionfind implements a disjoint-set forest over the integers
// [0, n) with path compression and union by size, plus the sorted-edge
// sweep used by Kruskal-style merging.
package unionfind

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange is returned when an element index is outside [0, n).
var ErrOutOfRange = errors.New("unionfind: element out of range")

// DSU is a disjoint-set forest. The zero value holds no elements.
type DSU struct {
	parent []int
	size   []int
	sets   int
}

// New returns n singleton sets.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of x's set.
// It panics if x is out of range, like a slice index would.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		// Path halving: point x at its grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
func (d *DSU) Union(a, b int) (bool, error) {
	if a < 0 || a >= len(d.parent) || b < 0 || b >= len(d.parent) {
		return false, fmt.Errorf("Union(%d, %d): %w", a, b, ErrOutOfRange)
	}
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false, nil
	}
	// Attach the smaller tree under the larger root.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.sets--

	return true, nil
}

// Connected reports whether a and b share a set.
func (d *DSU) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }

// Size returns the size of x's set.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Sizes returns the size of every set, largest first.
func (d *DSU) Sizes() []int {
	out := make([]int, 0, d.sets)
	for i, p := range d.parent {
		if p == i {
			out = append(out, d.size[i])
		}
	}
	slices.SortFunc(out, func(a, b int) int { return cmp.Compare(b, a) })

	return out
}
