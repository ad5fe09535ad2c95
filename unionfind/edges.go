// SPDX-License-Identifier: MIT

package unionfind

import (
	"cmp"
	"slices"
)

// Edge is a weighted undirected edge between two element indices.
type Edge struct {
	U, V   int
	Weight int64
}

// SortEdges orders edges by weight, breaking ties by (U, V) so the order
// is deterministic.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})
}

// Sweep unions the endpoints of each edge in order. visit is called after
// every edge with its index and whether it merged two sets; returning false
// stops the sweep. Sweep returns the number of edges processed.
func (d *DSU) Sweep(edges []Edge, visit func(i int, e Edge, merged bool) bool) (int, error) {
	for i, e := range edges {
		merged, err := d.Union(e.U, e.V)
		if err != nil {
			return i, err
		}
		if visit != nil && !visit(i, e, merged) {
			return i + 1, nil
		}
	}

	return len(edges), nil
}
