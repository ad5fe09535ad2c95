// SPDX-License-Identifier: MIT

package days

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/solution"
)

// worksheetProblem is one column of the math worksheet.
type worksheetProblem struct {
	operands []uint64
	op       byte
}

func (w worksheetProblem) eval() uint64 {
	if w.op == '*' {
		out := uint64(1)
		for _, v := range w.operands {
			out *= v
		}
		return out
	}
	var out uint64
	for _, v := range w.operands {
		out += v
	}

	return out
}

// parseOperators reads the final worksheet row.
func parseOperators(lines []string) ([]byte, error) {
	last := len(lines) - 1
	fields := strings.Fields(lines[last])
	ops := make([]byte, len(fields))
	for j, f := range fields {
		if f != "+" && f != "*" {
			return nil, malformed(last, lines[last], "operator %q", f)
		}
		ops[j] = f[0]
	}

	return ops, nil
}

// byRows reads each number horizontally: field j of every row belongs to
// problem j.
func byRows(lines []string, ops []byte) ([]worksheetProblem, error) {
	problems := make([]worksheetProblem, len(ops))
	for j := range problems {
		problems[j].op = ops[j]
	}
	for i, line := range lines[:len(lines)-1] {
		fields := strings.Fields(line)
		if len(fields) != len(ops) {
			return nil, malformed(i, line, "%d numbers for %d operators", len(fields), len(ops))
		}
		for j, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, malformed(i, line, "bad number %q", f)
			}
			problems[j].operands = append(problems[j].operands, v)
		}
	}

	return problems, nil
}

// byColumns reads each number vertically, one character column at a time.
// Blank columns separate problems.
func byColumns(lines []string, ops []byte) ([]worksheetProblem, error) {
	rows := lines[:len(lines)-1]
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	problems := []worksheetProblem{{}}
	var digits strings.Builder
	for col := 0; col < width; col++ {
		digits.Reset()
		for _, r := range rows {
			if col < len(r) && r[col] != ' ' {
				digits.WriteByte(r[col])
			}
		}
		if digits.Len() == 0 {
			problems = append(problems, worksheetProblem{})
			continue
		}
		v, err := strconv.ParseUint(digits.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %q", ErrMalformedInput, col+1, digits.String())
		}
		cur := &problems[len(problems)-1]
		cur.operands = append(cur.operands, v)
	}
	problems = slices.DeleteFunc(problems, func(p worksheetProblem) bool { return len(p.operands) == 0 })
	if len(problems) != len(ops) {
		return nil, fmt.Errorf("%w: %d column groups for %d operators", ErrMalformedInput, len(problems), len(ops))
	}
	for j := range problems {
		problems[j].op = ops[j]
	}

	return problems, nil
}

// solveTrashCompactor totals the worksheet read by rows (part 1) and by
// character columns (part 2). Leading spaces are significant.
func solveTrashCompactor(ctx *solution.Context) error {
	lines := ctx.Input()
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return fmt.Errorf("%w: want number rows and an operator row", ErrMalformedInput)
	}
	ops, err := parseOperators(lines)
	if err != nil {
		return err
	}

	rowProblems, err := byRows(lines, ops)
	if err != nil {
		return err
	}
	var total uint64
	for _, p := range rowProblems {
		total += p.eval()
	}
	ctx.SetPart1(solution.Of(total))

	colProblems, err := byColumns(lines, ops)
	if err != nil {
		return err
	}
	total = 0
	for _, p := range colProblems {
		total += p.eval()
	}
	ctx.SetPart2(solution.Of(total))

	return nil
}
