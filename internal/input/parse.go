package input

import (
	"strconv"
	"strings"
)

// Parsed is the outcome of parsing one line as an integer.
// A line that is not a signed decimal integer is Skipped and carries no value.
type Parsed struct {
	Value   int
	Skipped bool
}

// ParseInt parses a line such as "+3" or "-12".
func ParseInt(line string) Parsed {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Parsed{Skipped: true}
	}
	return Parsed{Value: n}
}

// Ints parses every line, keeping skipped outcomes in place.
func Ints(lines []string) []Parsed {
	out := make([]Parsed, len(lines))
	for i, line := range lines {
		out[i] = ParseInt(line)
	}
	return out
}
