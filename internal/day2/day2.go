// Package day2 solves the box-ID puzzles: a checksum built from letter
// frequencies, and the letters shared by the two IDs that differ in exactly
// one position.
package day2

// Frequencies counts each character of id.
func Frequencies(id string) map[rune]int {
	freq := make(map[rune]int, len(id))
	for _, r := range id {
		freq[r]++
	}
	return freq
}

// HasCount reports whether some character occurs exactly n times.
func HasCount(freq map[rune]int, n int) bool {
	for _, c := range freq {
		if c == n {
			return true
		}
	}
	return false
}

// Checksum multiplies the number of IDs containing a character exactly twice
// by the number containing one exactly three times. Each ID counts at most
// once per total.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		freq := Frequencies(id)
		if HasCount(freq, 2) {
			twos++
		}
		if HasCount(freq, 3) {
			threes++
		}
	}
	return twos * threes
}
