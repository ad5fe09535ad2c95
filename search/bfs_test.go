package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/search"
)

// line expands n to n-1 and n+1 within [0, 9].
func line(n int) []int {
	var out []int
	if n > 0 {
		out = append(out, n-1)
	}
	if n < 9 {
		out = append(out, n+1)
	}
	return out
}

func TestBFS_Validation(t *testing.T) {
	_, err := search.BFS(nil, line)
	assert.ErrorIs(t, err, search.ErrNoStart)

	_, err = search.BFS[int]([]int{0}, nil)
	assert.ErrorIs(t, err, search.ErrNilExpander)

	_, err = search.BFS([]int{0}, line, search.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := search.BFS([]int{4}, line)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 3, 5, 2, 6, 1, 7, 0, 8, 9}, res.Order)
	assert.Equal(t, 4, res.Depth[0])
	assert.Equal(t, 5, res.Depth[9])
	assert.False(t, res.Found)

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, path)
}

func TestBFS_MultipleStarts(t *testing.T) {
	res, err := search.BFS([]int{0, 9, 0}, line)
	require.NoError(t, err)

	assert.Len(t, res.Order, 10)
	assert.Equal(t, []int{0, 9}, res.Order[:2])
	assert.Equal(t, 4, res.Depth[4])
	assert.Equal(t, 4, res.Depth[5])
}

func TestBFS_Goal(t *testing.T) {
	// Light toggling: three buttons over a 3-bit mask.
	buttons := []uint8{0b011, 0b110, 0b100}
	next := func(s uint8) []uint8 {
		out := make([]uint8, len(buttons))
		for i, b := range buttons {
			out[i] = s ^ b
		}
		return out
	}
	res, err := search.BFS([]uint8{0}, next, search.WithGoal(func(s uint8) bool { return s == 0b101 }))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, uint8(0b101), res.Goal)
	assert.Equal(t, 2, res.Depth[res.Goal])

	res, err = search.BFS([]uint8{0}, next, search.WithGoal(func(s uint8) bool { return s == 0 }))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Depth[res.Goal])
	assert.Equal(t, []uint8{0}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := search.BFS([]int{0}, line, search.WithMaxDepth[int](3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, search.ErrNotReached)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	_, err := search.BFS([]int{0}, line, search.WithOnVisit(func(s int, _ int) error {
		seen = append(seen, s)
		if s == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.BFS([]int{0}, line, search.WithContext[int](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
