// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2025/days"
	"github.com/katalvlaran/aoc2025/input"
)

var (
	// ErrNoDays is returned when Run is called without days.
	ErrNoDays = errors.New("runner: no days to run")

	// ErrDaysFailed is returned when at least one day failed.
	ErrDaysFailed = errors.New("runner: one or more days failed")

	// ErrAnswerMismatch marks an example answer that differs from the catalog.
	ErrAnswerMismatch = errors.New("runner: answer differs from example")
)

// DefaultInputDir is where input files are looked up by default.
const DefaultInputDir = "inputs"

// Config controls a batch run. The zero value runs real inputs from
// DefaultInputDir, prints to stdout and logs nothing.
type Config struct {
	InputDir string
	Example  bool
	FailFast bool

	Out    io.Writer
	Logger *zap.Logger

	// Catalog supplies example inputs; nil means the embedded catalog.
	Catalog *input.Catalog
	// Lookup resolves solvers; nil means days.Lookup.
	Lookup func(day int) (days.Solver, error)
	// Clock times the solvers; nil means time.Now.
	Clock func() time.Time
}

// withDefaults fills unset fields.
func (c Config) withDefaults() (Config, error) {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Lookup == nil {
		c.Lookup = days.Lookup
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Example && c.Catalog == nil {
		cat, err := input.Embedded()
		if err != nil {
			return c, err
		}
		c.Catalog = cat
	}

	return c, nil
}
