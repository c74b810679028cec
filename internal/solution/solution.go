// Package solution holds the registry of puzzle solvers and the helper that
// checks their answers against known results.
//
// Every solver is a function of its input lines and per-run Options. The
// fixture mode is never read from process state; it is passed to Verify by
// whoever drives the run.
package solution

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/day1"
	"github.com/roach88/advent/internal/day2"
)

// ID names a registered solution.
type ID int

const (
	Day1Part1 ID = iota
	Day1Part2
	Day2Part1
	Day2Part2
)

// String returns the short form used on the command line, e.g. "day1part2".
func (id ID) String() string {
	for _, s := range registry {
		if s.ID == id {
			return fmt.Sprintf("day%dpart%d", s.Day, s.Part)
		}
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// Answer is a solver result. Present is false when the solver ran but found
// nothing to report.
type Answer struct {
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

// None is the absent answer.
var None = Answer{}

// Int wraps an integer answer.
func Int(n int) Answer {
	return Answer{Value: strconv.Itoa(n), Present: true}
}

// Text wraps a string answer.
func Text(s string) Answer {
	return Answer{Value: s, Present: true}
}

func (a Answer) String() string {
	if !a.Present {
		return "no match"
	}
	return a.Value
}

// Options carries per-run solver configuration.
type Options struct {
	Strategy day2.Strategy
}

// SolveFunc computes an answer from fixture lines.
type SolveFunc func(ctx context.Context, lines []string, opts Options) (Answer, error)

// Solution is one registered puzzle part.
type Solution struct {
	ID     ID
	Day    int
	Part   int
	Expect Expectation
	Solve  SolveFunc
}

// Name returns the display label, e.g. "Day 1 Part 2".
func (s Solution) Name() string {
	return fmt.Sprintf("Day %d Part %d", s.Day, s.Part)
}

// Input returns the day and part components of the fixture path.
func (s Solution) Input() (day, part string) {
	return fmt.Sprintf("day%d", s.Day), fmt.Sprintf("part%d", s.Part)
}

var registry = []Solution{
	{
		ID: Day1Part1, Day: 1, Part: 1,
		Expect: Expectation{Example: "3", Real: "423"},
		Solve: func(_ context.Context, lines []string, _ Options) (Answer, error) {
			return Int(day1.Sum(lines)), nil
		},
	},
	{
		ID: Day1Part2, Day: 1, Part: 2,
		Expect: Expectation{Example: "10", Real: "61126"},
		Solve: func(ctx context.Context, lines []string, _ Options) (Answer, error) {
			n, err := day1.FirstRepeat(ctx, lines)
			if err != nil {
				return None, err
			}
			return Int(n), nil
		},
	},
	{
		ID: Day2Part1, Day: 2, Part: 1,
		Expect: Expectation{Example: "12", Real: "7688"},
		Solve: func(_ context.Context, lines []string, _ Options) (Answer, error) {
			return Int(day2.Checksum(lines)), nil
		},
	},
	{
		ID: Day2Part2, Day: 2, Part: 2,
		Expect: Expectation{Example: "fgij"},
		Solve: func(_ context.Context, lines []string, opts Options) (Answer, error) {
			common, ok := day2.CommonLetters(lines, opts.Strategy)
			if !ok {
				return None, nil
			}
			return Text(common), nil
		},
	},
}

// All returns every registered solution in dispatch order.
func All() []Solution {
	out := make([]Solution, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the solution registered under id.
func Lookup(id ID) (Solution, bool) {
	for _, s := range registry {
		if s.ID == id {
			return s, true
		}
	}
	return Solution{}, false
}

// ParseID accepts "day1part2", "1.2" or "1/2".
func ParseID(name string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range registry {
		forms := []string{
			s.ID.String(),
			fmt.Sprintf("%d.%d", s.Day, s.Part),
			fmt.Sprintf("%d/%d", s.Day, s.Part),
		}
		for _, f := range forms {
			if key == f {
				return s.ID, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown solution %q", name)
}

// Select returns the named solutions in the order given, or All when names
// is empty.
func Select(names ...string) ([]Solution, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Solution, 0, len(names))
	for _, name := range names {
		id, err := ParseID(name)
		if err != nil {
			return nil, err
		}
		s, _ := Lookup(id)
		out = append(out, s)
	}
	return out, nil
}
