// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound is returned when neither candidate input file exists.
var ErrInputNotFound = errors.New("input: input file not found")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Candidates returns the file names tried for day, in order.
func Candidates(dir string, day int) []string {
	return []string{
		filepath.Join(dir, fmt.Sprintf("day%02d.txt", day)),
		filepath.Join(dir, fmt.Sprintf("day%d.txt", day)),
	}
}

// Resolve returns the first existing input file for day under dir.
func Resolve(dir string, day int) (string, error) {
	names := Candidates(dir, day)
	for _, name := range names {
		info, err := os.Stat(name)
		switch {
		case err == nil && !info.IsDir():
			return name, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("input: stat %s: %w", name, err)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrInputNotFound, strings.Join(names, ", "))
}

// Load reads path as lines. Line terminators, including a trailing '\r',
// are removed; everything else is kept verbatim.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read %s: %w", path, err)
	}

	return lines, nil
}

// Read resolves and loads the input for day.
func Read(dir string, day int) ([]string, string, error) {
	path, err := Resolve(dir, day)
	if err != nil {
		return nil, "", err
	}
	lines, err := Load(path)

	return lines, path, err
}
