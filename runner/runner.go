// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/input"
	"github.com/katalvlaran/aoc2025/solution"
)

// Run solves days in the given order and prints the report to cfg.Out.
// The returned Report is non-nil whenever cfg is usable, even on error.
func Run(ctx context.Context, days []int, cfg Config) (*Report, error) {
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	out := newPrinter(cfg.Out)
	rep := &Report{}
	var errs []error

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		res := runDay(day, cfg, log.With(zap.Int("day", day)))
		rep.Days = append(rep.Days, res)
		rep.Total += res.Elapsed()
		out.day(res)

		if res.Err == nil {
			log.Debug("day solved", zap.Int("day", day), zap.Duration("elapsed", res.Elapsed()))
			continue
		}
		log.Error("day failed", zap.Int("day", day), zap.Error(res.Err))
		if cfg.FailFast {
			out.total(rep.Total)
			return rep, res.Err
		}
		errs = append(errs, res.Err)
	}
	out.total(rep.Total)

	if len(errs) > 0 {
		head := fmt.Errorf("%w: %d of %d", ErrDaysFailed, len(errs), len(days))
		return rep, errors.Join(append([]error{head}, errs...)...)
	}

	return rep, nil
}

// runDay loads and solves one day. Answers recorded before a solver error
// are kept in the result; a day whose input never loaded has Loaded unset.
func runDay(day int, cfg Config, log *zap.Logger) DayResult {
	res := DayResult{Day: day}

	solve, err := cfg.Lookup(day)
	if err != nil {
		res.Err = fmt.Errorf("day %02d: %w", day, err)
		return res
	}

	var (
		lines    []string
		expected input.Example
	)
	if cfg.Example {
		expected, err = cfg.Catalog.First(day)
		lines, res.Source = expected.Lines(), "example"
	} else {
		lines, res.Source, err = input.Read(cfg.InputDir, day)
	}
	if err != nil {
		res.Err = fmt.Errorf("day %02d: %w", day, err)
		return res
	}
	res.Loaded = true
	log.Debug("input loaded", zap.String("source", res.Source), zap.Int("lines", len(lines)))

	sctx := solution.NewContext(lines, cfg.Example,
		solution.WithLogger(log),
		solution.WithClock(cfg.Clock),
	)
	if err := solve(sctx); err != nil {
		res.Err = fmt.Errorf("day %02d: %w", day, err)
	}
	res.Parts[0].Answer, res.Parts[0].Elapsed, res.Parts[0].OK = sctx.Part1()
	res.Parts[1].Answer, res.Parts[1].Elapsed, res.Parts[1].OK = sctx.Part2()

	if cfg.Example && res.Err == nil {
		res.Err = checkExpected(day, res.Parts, [2]string{expected.Part1, expected.Part2})
	}

	return res
}

// checkExpected compares recorded answers with the catalog; an empty
// expectation is skipped.
func checkExpected(day int, parts [2]Part, want [2]string) error {
	var errs []error
	for i, w := range want {
		if w == "" {
			continue
		}
		if got := parts[i].Answer.String(); !parts[i].OK || got != w {
			errs = append(errs, fmt.Errorf("%w: day %02d part %d: got %q, want %q", ErrAnswerMismatch, day, i+1, got, w))
		}
	}

	return errors.Join(errs...)
}
