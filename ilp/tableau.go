// SPDX-License-Identifier: MIT

package ilp

// tableau is the augmented matrix [A | b] in flat row-major storage.
type tableau struct {
	rows, cols int // cols includes the rhs column
	data       []int64
}

func newTableau(a [][]int64, b []int64, n int) *tableau {
	t := &tableau{rows: len(a), cols: n + 1, data: make([]int64, len(a)*(n+1))}
	for i, row := range a {
		copy(t.data[i*t.cols:], row)
		t.data[i*t.cols+n] = b[i]
	}

	return t
}

func (t *tableau) at(r, c int) int64 { return t.data[r*t.cols+c] }

func (t *tableau) row(r int) []int64 { return t.data[r*t.cols : (r+1)*t.cols] }

func (t *tableau) rhs(r int) int64 { return t.at(r, t.cols-1) }

func (t *tableau) swap(a, b int) {
	if a == b {
		return
	}
	ra, rb := t.row(a), t.row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

// eliminate clears column c in row k using pivot row r:
// row_k = row_k·p - row_r·a, where p is the pivot and a = row_k[c].
func (t *tableau) eliminate(k, r, c int) {
	p, a := t.at(r, c), t.at(k, c)
	if a == 0 {
		return
	}
	rk, rr := t.row(k), t.row(r)
	for i := range rk {
		rk[i] = rk[i]*p - rr[i]*a
	}
	reduce(rk)
}

// reduce divides a row by the gcd of its entries and makes the first
// non-zero coefficient positive.
func reduce(row []int64) {
	var g int64
	for _, v := range row {
		g = gcd(g, abs(v))
	}
	if g == 0 {
		return
	}
	sign := int64(1)
	for _, v := range row[:len(row)-1] {
		if v != 0 {
			if v < 0 {
				sign = -1
			}
			break
		}
	}
	g *= sign
	for i := range row {
		row[i] /= g
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
