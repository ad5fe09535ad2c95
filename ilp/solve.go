// SPDX-License-Identifier: MIT

package ilp

import (
	"fmt"
	"math"
)

// Minimize returns an optimal solution of p. Ties between optimal
// assignments are broken by enumeration order, lowest free values first.
func Minimize(p Problem) (Solution, error) {
	n, err := validate(p)
	if err != nil {
		return Solution{}, err
	}
	cost := p.Cost
	if cost == nil {
		cost = make([]int64, n)
		for j := range cost {
			cost[j] = 1
		}
	}

	ub := bounds(p.A, p.B, n)

	t := newTableau(p.A, p.B, n)
	pivotCol, free := gaussJordan(t)
	for r := len(pivotCol); r < t.rows; r++ {
		if t.rhs(r) != 0 {
			return Solution{}, fmt.Errorf("%w: row %d reduces to 0 = %d", ErrInfeasible, r, t.rhs(r))
		}
	}

	s := &searcher{
		t:        t,
		cost:     cost,
		ub:       ub,
		pivotCol: pivotCol,
		free:     free,
		x:        make([]int64, n),
		best:     math.MaxInt64,
	}
	s.enumerate(0, 0)
	if !s.found {
		return Solution{}, ErrInfeasible
	}

	return Solution{X: s.bestX, Objective: s.best}, nil
}

// validate checks shapes and signs and returns the variable count.
func validate(p Problem) (int, error) {
	if len(p.A) != len(p.B) {
		return 0, fmt.Errorf("%w: %d rows but %d right-hand sides", ErrInvalidProblem, len(p.A), len(p.B))
	}
	n := len(p.Cost)
	if p.Cost == nil && len(p.A) > 0 {
		n = len(p.A[0])
	}
	for j, c := range p.Cost {
		if c < 0 {
			return 0, fmt.Errorf("%w: cost[%d] = %d", ErrInvalidProblem, j, c)
		}
	}
	for i, row := range p.A {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidProblem, i, len(row), n)
		}
		if p.B[i] < 0 {
			return 0, fmt.Errorf("%w: b[%d] = %d", ErrInvalidProblem, i, p.B[i])
		}
		for j, v := range row {
			if v < 0 {
				return 0, fmt.Errorf("%w: A[%d][%d] = %d", ErrInvalidProblem, i, j, v)
			}
		}
	}

	return n, nil
}

// bounds returns x_j ≤ min_i b_i / A_ij over rows with A_ij > 0.
// A column used by no row is bounded by 0.
func bounds(a [][]int64, b []int64, n int) []int64 {
	ub := make([]int64, n)
	for j := range ub {
		ub[j] = -1
		for i, row := range a {
			if row[j] > 0 {
				if q := b[i] / row[j]; ub[j] < 0 || q < ub[j] {
					ub[j] = q
				}
			}
		}
		if ub[j] < 0 {
			ub[j] = 0
		}
	}

	return ub
}

// gaussJordan reduces t in place. It returns the pivot column of each
// leading row and the columns left without a pivot.
func gaussJordan(t *tableau) (pivotCol, free []int) {
	r := 0
	for c := 0; c < t.cols-1; c++ {
		k := r
		for k < t.rows && t.at(k, c) == 0 {
			k++
		}
		if k == t.rows {
			free = append(free, c)
			continue
		}
		t.swap(r, k)
		reduce(t.row(r))
		for k := 0; k < t.rows; k++ {
			if k != r {
				t.eliminate(k, r, c)
			}
		}
		pivotCol = append(pivotCol, c)
		r++
	}

	return pivotCol, free
}

type searcher struct {
	t        *tableau
	cost     []int64
	ub       []int64
	pivotCol []int
	free     []int
	x        []int64
	best     int64
	bestX    []int64
	found    bool
}

// enumerate assigns free variable i onward; partial is the cost so far.
func (s *searcher) enumerate(i int, partial int64) {
	if partial >= s.best {
		return
	}
	if i == len(s.free) {
		s.evaluate(partial)
		return
	}
	f := s.free[i]
	for v := int64(0); v <= s.ub[f]; v++ {
		s.x[f] = v
		next := partial + v*s.cost[f]
		if next >= s.best {
			break
		}
		s.enumerate(i+1, next)
	}
	s.x[f] = 0
}

// evaluate back-substitutes the pivot variables for the current free values.
func (s *searcher) evaluate(partial int64) {
	total := partial
	for r, c := range s.pivotCol {
		val := s.t.rhs(r)
		for _, f := range s.free {
			val -= s.t.at(r, f) * s.x[f]
		}
		p := s.t.at(r, c)
		if val%p != 0 {
			return
		}
		v := val / p
		if v < 0 {
			return
		}
		s.x[c] = v
		total += v * s.cost[c]
	}
	if total < s.best {
		s.best = total
		s.bestX = append(s.bestX[:0], s.x...)
		s.found = true
	}
}
