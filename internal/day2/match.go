package day2

import (
	"fmt"
	"slices"
)

// Strategy selects how candidate pairs are enumerated.
type Strategy int

const (
	// Adjacent sorts the IDs and only compares neighbours. This finds the
	// pair whenever the two IDs sort next to each other, which holds for the
	// puzzle inputs but not for arbitrary data.
	Adjacent Strategy = iota

	// AllPairs compares every pair in sorted order. O(n²) comparisons.
	AllPairs
)

// ValidStrategies lists the accepted textual forms of Strategy.
var ValidStrategies = []string{"adjacent", "all_pairs"}

func (s Strategy) String() string {
	switch s {
	case Adjacent:
		return "adjacent"
	case AllPairs:
		return "all_pairs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "adjacent" or "all_pairs" into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "adjacent":
		return Adjacent, nil
	case "all_pairs":
		return AllPairs, nil
	default:
		return 0, fmt.Errorf("invalid strategy %q: must be one of %v", s, ValidStrategies)
	}
}

// Pair is two IDs at edit distance 1, in sorted order.
type Pair struct {
	A, B string
}

// Candidates keeps the IDs that contain some character exactly twice or
// exactly three times.
func Candidates(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		seen := make(map[rune]int)
		for _, r := range id {
			seen[r]++
		}
		for _, c := range seen {
			if c == 2 || c == 3 {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// FindPair searches the candidate IDs for two at edit distance exactly 1.
// When the candidates hold no such pair the full ID set is searched, so a
// pair found among candidates is always returned unchanged.
func FindPair(ids []string, strategy Strategy) (Pair, bool) {
	if p, ok := search(Candidates(ids), strategy); ok {
		return p, true
	}
	return search(ids, strategy)
}

// CommonLetters returns the characters shared position-by-position by the
// matching pair. ok is false when no pair exists.
func CommonLetters(ids []string, strategy Strategy) (string, bool) {
	p, ok := FindPair(ids, strategy)
	if !ok {
		return "", false
	}
	return Common(p.A, p.B), true
}

func search(ids []string, strategy Strategy) (Pair, bool) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	if strategy == AllPairs {
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if Levenshtein(sorted[i], sorted[j]) == 1 {
					return Pair{A: sorted[i], B: sorted[j]}, true
				}
			}
		}
		return Pair{}, false
	}

	for i := 0; i+1 < len(sorted); i++ {
		if Levenshtein(sorted[i], sorted[i+1]) == 1 {
			return Pair{A: sorted[i], B: sorted[i+1]}, true
		}
	}
	return Pair{}, false
}
