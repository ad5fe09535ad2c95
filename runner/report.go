// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/aoc2025/solution"
)

// Part is one recorded answer.
type Part struct {
	Answer  solution.Answer
	Elapsed time.Duration
	OK      bool
}

// DayResult is the outcome of one day.
type DayResult struct {
	Day    int
	Source string // input file path, or "example"
	Parts  [2]Part
	Err    error

	// Loaded is false when the day failed before its solver ran.
	Loaded bool
}

// Elapsed is the summed time of the recorded parts.
func (d DayResult) Elapsed() time.Duration {
	return d.Parts[0].Elapsed + d.Parts[1].Elapsed
}

// Report collects the results of a run.
type Report struct {
	Days  []DayResult
	Total time.Duration
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []DayResult {
	var out []DayResult
	for _, d := range r.Days {
		if d.Err != nil {
			out = append(out, d)
		}
	}

	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// printer renders report lines to one writer.
type printer struct {
	w      io.Writer
	header lipgloss.Style
	fail   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

func (p *printer) day(d DayResult) {
	if !d.Loaded {
		fmt.Fprintln(p.w, p.fail.Render(fmt.Sprintf("  ✗ Error: %v", d.Err)))
		return
	}
	fmt.Fprintln(p.w, p.header.Render(fmt.Sprintf("=== Day %02d ===", d.Day)))
	for i, part := range d.Parts {
		if !part.OK {
			fmt.Fprintf(p.w, "Part %d: Not implemented\n", i+1)
			continue
		}
		fmt.Fprintf(p.w, "  · Part %d: %s\n", i+1, part.Answer)
		fmt.Fprintf(p.w, "  · Elapsed: %.4f ms\n", millis(part.Elapsed))
	}
	if d.Err != nil {
		fmt.Fprintln(p.w, p.fail.Render(fmt.Sprintf("  ✗ Error: %v", d.Err)))
	}
	fmt.Fprintf(p.w, "Total: %.4f ms\n\n", millis(d.Elapsed()))
}

func (p *printer) total(d time.Duration) {
	fmt.Fprintf(p.w, "Total runtime: %.4f ms\n", millis(d))
}
