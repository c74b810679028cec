// Package day1 solves the frequency-drift puzzles: a plain sum of signed
// changes, and the first running total that is reached twice.
package day1

import (
	"context"

	"github.com/roach88/advent/internal/input"
)

// Sum adds every line that parses as an integer. Lines that do not parse
// contribute nothing.
func Sum(lines []string) int {
	sum := 0
	for _, p := range input.Ints(lines) {
		if p.Skipped {
			continue
		}
		sum += p.Value
	}
	return sum
}

// FirstRepeat returns the first partial sum that occurs twice while applying
// lines in order, wrapping back to the start as often as needed. The sum
// starts at 0, which counts as already seen.
//
// There is no iteration limit. An input whose partial sums never repeat
// (for example a single "+1") loops until ctx is cancelled; ctx is checked
// once per pass over the input. If no line yields a value the seed is the
// only partial sum, so the result is 0.
func FirstRepeat(ctx context.Context, lines []string) (int, error) {
	values := make([]int, 0, len(lines))
	for _, p := range input.Ints(lines) {
		if !p.Skipped {
			values = append(values, p.Value)
		}
	}
	if len(values) == 0 {
		return 0, nil
	}

	sum := 0
	seen := map[int]struct{}{0: {}}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for _, v := range values {
			sum += v
			if _, ok := seen[sum]; ok {
				return sum, nil
			}
			seen[sum] = struct{}{}
		}
	}
}
