package day2

// Levenshtein returns the minimum number of single-character insertions,
// deletions or substitutions turning a into b. Characters are runes.
//
// Two rolling rows of the DP matrix are kept:
//
//	D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost)
//
// Time O(n·m), memory O(m).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// Common keeps the characters of a and b that are equal at the same index.
// Positions past the end of the shorter string are ignored.
func Common(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	out := make([]rune, 0, min(len(ra), len(rb)))
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] == rb[i] {
			out = append(out, ra[i])
		}
	}
	return string(out)
}
