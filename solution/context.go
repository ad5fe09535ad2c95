// SPDX-License-Identifier: MIT

package solution

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Context at construction.
type Option func(*Context)

// WithClock replaces time.Now as the Context's time source.
func WithClock(now func() time.Time) Option {
	return func(c *Context) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger attaches a logger that solvers can reach via Logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// slot is one recorded answer and its absolute offset from the start.
type slot struct {
	set    bool
	answer Answer
	at     time.Duration
}

// Context is the state of one puzzle run. It is not safe for concurrent use.
type Context struct {
	input   []string
	example bool

	now   func() time.Time
	start time.Time
	log   *zap.Logger

	part1, part2 slot
}

// NewContext returns a Context over input and starts its clock.
func NewContext(input []string, example bool, opts ...Option) *Context {
	c := &Context{
		input:   input,
		example: example,
		now:     time.Now,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.now()

	return c
}

// Input returns the puzzle lines. Callers must not modify them.
func (c *Context) Input() []string { return c.input }

// IsExample reports whether the input is a worked example rather than
// the real puzzle input.
func (c *Context) IsExample() bool { return c.example }

// Logger returns the run's logger; never nil.
func (c *Context) Logger() *zap.Logger { return c.log }

// ResetClock restarts the elapsed-time measurement, e.g. after expensive
// setup that should not be charged to Part 1.
func (c *Context) ResetClock() { c.start = c.now() }

// SetPart1 records the first answer, replacing any earlier one.
func (c *Context) SetPart1(a Answer) {
	c.part1 = slot{set: true, answer: a, at: c.now().Sub(c.start)}
}

// SetPart2 records the second answer, replacing any earlier one.
func (c *Context) SetPart2(a Answer) {
	c.part2 = slot{set: true, answer: a, at: c.now().Sub(c.start)}
}

// Part1 returns the first answer and the time from the start to its
// recording. ok is false when no answer was recorded.
func (c *Context) Part1() (a Answer, elapsed time.Duration, ok bool) {
	if !c.part1.set {
		return Answer{}, 0, false
	}

	return c.part1.answer, c.part1.at, true
}

// Part2 returns the second answer and the time between recording Part 1
// and Part 2. Without a Part 1 the gap is measured from the start.
func (c *Context) Part2() (a Answer, elapsed time.Duration, ok bool) {
	if !c.part2.set {
		return Answer{}, 0, false
	}
	elapsed = c.part2.at
	if c.part1.set {
		elapsed -= c.part1.at
	}
	if elapsed < 0 {
		elapsed = 0
	}

	return c.part2.answer, elapsed, true
}
