package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultDir is the fixture root used when no other directory is configured.
const DefaultDir = "./inputs"

// Path resolves the fixture path for a (day, part, mode) triple.
//
//	Path("./inputs", "day1", "part2", Example) == "inputs/day1/part2_example.txt"
func Path(dir, day, part string, mode Mode) string {
	name := part
	if mode == Example {
		name += "_example"
	}
	return filepath.Join(dir, day, name+".txt")
}

// ReadLines reads the file at path and returns its trimmed, non-empty lines
// in order. Each line is normalized to NFC so that composed and decomposed
// forms of the same character compare equal.
//
// The returned error wraps the underlying fs error, so
// errors.Is(err, fs.ErrNotExist) reports a missing fixture.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read input file %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits s on line boundaries and drops blank lines.
func SplitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, norm.NFC.String(line))
	}
	return lines
}

// Load resolves the fixture for (day, part, mode) under dir and reads it.
func Load(dir, day, part string, mode Mode) ([]string, error) {
	return ReadLines(Path(dir, day, part, mode))
}
