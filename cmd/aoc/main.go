// SPDX-License-Identifier: MIT

// Command aoc runs Advent of Code 2025 solvers.
//
//	aoc 1 2 3             # solve days 1-3 from inputs/dayNN.txt
//	aoc --example 7       # solve the worked example of day 7
//	EXAMPLE=1 aoc 7       # same, via the environment
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2025/days"
	"github.com/katalvlaran/aoc2025/input"
	"github.com/katalvlaran/aoc2025/runner"
)

var (
	// Flags
	inputDir string
	example  bool
	verbose  bool
	failFast bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc DAY [DAY...]",
	Short: "Advent of Code 2025 solutions",
	Long: `aoc solves the given puzzle days in order and prints each answer with
its solve time.

Inputs are read from <inputs>/dayNN.txt or <inputs>/dayN.txt. With --example,
or with the EXAMPLE environment variable set, the worked example from the
puzzle text is used instead and the answers are checked against it.`,
	Args:          parseDaysArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDays,
}

// parseDaysArgs rejects anything that is not a known day before any work
// starts.
func parseDaysArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one day is required (known days: %v)", days.Days())
	}
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("not a valid day: %q", a)
		}
		if _, err := days.Lookup(d); err != nil {
			return err
		}
	}

	return nil
}

func runDays(cmd *cobra.Command, args []string) error {
	dayList := make([]int, len(args))
	for i, a := range args {
		// Already validated by parseDaysArgs.
		dayList[i], _ = strconv.Atoi(a)
	}

	cfg := runner.Config{
		InputDir: inputDir,
		Example:  example || input.ExampleMode(),
		FailFast: failFast,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
	}
	logger.Debug("starting run", zap.Ints("days", dayList), zap.Bool("example", cfg.Example))

	_, err := runner.Run(cmd.Context(), dayList, cfg)

	return err
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "inputs", "i", runner.DefaultInputDir, "Directory holding dayNN.txt input files")
	rootCmd.Flags().BoolVarP(&example, "example", "e", false, "Use the embedded worked examples (or set EXAMPLE)")
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failing day")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
