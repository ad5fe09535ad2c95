// SPDX-License-Identifier: MIT

package input

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvExample selects example inputs when present in the environment.
const EnvExample = "EXAMPLE"

// ErrNoExample is returned when the catalog has no example for a day.
var ErrNoExample = errors.New("input: no example for day")

//go:embed examples.yaml
var examplesYAML []byte

// ExampleMode reports whether EXAMPLE is set, to any value.
func ExampleMode() bool {
	_, ok := os.LookupEnv(EnvExample)
	return ok
}

// Example is one worked example. Empty Part1/Part2 are not checked.
type Example struct {
	Day   int    `yaml:"day"`
	Input string `yaml:"input"`
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Lines splits the example text into lines.
func (e Example) Lines() []string { return SplitLines(e.Input) }

// Catalog is the set of worked examples, possibly several per day.
type Catalog struct {
	Examples []Example `yaml:"examples"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("input: decode catalog: %w", err)
	}
	for i, e := range c.Examples {
		if e.Day <= 0 {
			return nil, fmt.Errorf("input: catalog entry %d: day %d", i, e.Day)
		}
		if strings.TrimSpace(e.Input) == "" {
			return nil, fmt.Errorf("input: catalog entry %d (day %d): empty input", i, e.Day)
		}
	}

	return &c, nil
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) { return ParseCatalog(examplesYAML) }

// For returns every example for day in catalog order.
func (c *Catalog) For(day int) []Example {
	var out []Example
	for _, e := range c.Examples {
		if e.Day == day {
			out = append(out, e)
		}
	}

	return out
}

// First returns the first example for day; runs in example mode use it.
func (c *Catalog) First(day int) (Example, error) {
	for _, e := range c.Examples {
		if e.Day == day {
			return e, nil
		}
	}

	return Example{}, fmt.Errorf("%w %d", ErrNoExample, day)
}

// SplitLines splits text on '\n', dropping one final newline and trailing
// whitespace on each line. Leading whitespace is kept since column
// positions can matter.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	return lines
}
