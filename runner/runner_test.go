// SPDX-License-Identifier: MIT

package runner_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/days"
	"github.com/katalvlaran/aoc2025/input"
	"github.com/katalvlaran/aoc2025/runner"
	"github.com/katalvlaran/aoc2025/solution"
)

// fixedClock makes every elapsed time zero.
func fixedClock() time.Time { return time.Unix(1_700_000_000, 0) }

func newConfig(out *bytes.Buffer) runner.Config {
	return runner.Config{Out: out, Logger: zap.NewNop(), Clock: fixedClock}
}

func TestRun_ExampleModeAllDays(t *testing.T) {
	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.Example = true

	rep, err := runner.Run(context.Background(), days.Days(), cfg)
	require.NoError(t, err, out.String())
	require.Len(t, rep.Days, 12)
	assert.Empty(t, rep.Failed())

	text := out.String()
	for _, want := range []string{
		"=== Day 01 ===",
		"  · Part 1: 3\n",
		"  · Part 2: 6\n",
		"  · Elapsed: 0.0000 ms\n",
		"=== Day 10 ===",
		"  · Part 2: 33\n",
		"=== Day 12 ===",
		"Part 2: Not implemented\n",
		"Total: 0.0000 ms\n\n",
		"Total runtime: 0.0000 ms\n",
	} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, "example", rep.Days[0].Source)
}

func TestRun_InputFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.txt"),
		[]byte("L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"), 0o644))

	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.InputDir = dir

	rep, err := runner.Run(context.Background(), []int{1}, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "day1.txt"), rep.Days[0].Source)
	assert.Equal(t, "3", rep.Days[0].Parts[0].Answer.String())
	assert.Contains(t, out.String(), "  · Part 2: 6\n")
}

func TestRun_ContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("R50\n"), 0o644))

	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.InputDir = dir

	rep, err := runner.Run(context.Background(), []int{2, 1}, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrDaysFailed)
	assert.ErrorIs(t, err, input.ErrInputNotFound)

	require.Len(t, rep.Days, 2)
	assert.Len(t, rep.Failed(), 1)
	text := out.String()
	assert.NotContains(t, text, "=== Day 02 ===")
	assert.Contains(t, text, "✗ Error: day 02: ")
	assert.NotContains(t, text, "Not implemented")
	assert.False(t, rep.Days[0].Loaded)
	assert.True(t, rep.Days[1].Loaded)
	assert.Contains(t, text, "=== Day 01 ===")
	assert.Contains(t, text, "  · Part 1: 1\n")
	assert.Contains(t, text, "Total runtime:")
}

func TestRun_FailFast(t *testing.T) {
	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.InputDir = t.TempDir()
	cfg.FailFast = true

	rep, err := runner.Run(context.Background(), []int{2, 1}, cfg)
	assert.ErrorIs(t, err, input.ErrInputNotFound)
	assert.False(t, errors.Is(err, runner.ErrDaysFailed))
	assert.Len(t, rep.Days, 1)
	assert.NotContains(t, out.String(), "Day 01")
}

func TestRun_MalformedDayKeepsEarlierAnswer(t *testing.T) {
	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.Lookup = func(day int) (days.Solver, error) {
		return func(ctx *solution.Context) error {
			ctx.SetPart1(solution.Str("partial"))
			return days.ErrMalformedInput
		}, nil
	}
	cfg.Example = true

	rep, err := runner.Run(context.Background(), []int{3}, cfg)
	assert.ErrorIs(t, err, days.ErrMalformedInput)
	assert.True(t, rep.Days[0].Parts[0].OK)
	assert.Contains(t, out.String(), "  · Part 1: partial\n")
	assert.Contains(t, out.String(), "Part 2: Not implemented\n")
}

func TestRun_ExampleMismatch(t *testing.T) {
	cat, err := input.ParseCatalog([]byte(`
examples:
  - day: 1
    input: |
      R50
    part1: "1"
    part2: "2"
`))
	require.NoError(t, err)

	var out bytes.Buffer
	cfg := newConfig(&out)
	cfg.Example = true
	cfg.Catalog = cat

	rep, err := runner.Run(context.Background(), []int{1}, cfg)
	assert.ErrorIs(t, err, runner.ErrAnswerMismatch)
	assert.Contains(t, rep.Days[0].Err.Error(), `part 2: got "1", want "2"`)
	assert.NotContains(t, rep.Days[0].Err.Error(), "part 1")
}

func TestRun_Errors(t *testing.T) {
	t.Run("no days", func(t *testing.T) {
		_, err := runner.Run(context.Background(), nil, runner.Config{})
		assert.ErrorIs(t, err, runner.ErrNoDays)
	})

	t.Run("unknown day", func(t *testing.T) {
		var out bytes.Buffer
		_, err := runner.Run(context.Background(), []int{13}, newConfig(&out))
		assert.ErrorIs(t, err, days.ErrUnknownDay)
	})

	t.Run("missing example", func(t *testing.T) {
		var out bytes.Buffer
		cfg := newConfig(&out)
		cfg.Example = true
		cfg.Catalog = &input.Catalog{}
		_, err := runner.Run(context.Background(), []int{1}, cfg)
		assert.ErrorIs(t, err, input.ErrNoExample)

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 2, out.String())
		assert.True(t, strings.HasPrefix(lines[0], "  ✗ Error: day 01: "), lines[0])
		assert.Equal(t, "Total runtime: 0.0000 ms", lines[1])
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		rep, err := runner.Run(ctx, []int{1}, newConfig(&out))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rep.Days)
		assert.False(t, strings.Contains(out.String(), "Day"))
	})
}
