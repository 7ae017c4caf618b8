// Package levenshtein computes edit distances between domain names.
package levenshtein

import "unicode/utf8"

// Distance computes the Levenshtein edit distance between two strings,
// counting runes rather than bytes.
func Distance(s, t string) int {
	return distance([]rune(s), []rune(t), -1)
}

// Within reports whether the distance between s and t is at most limit.
// When it is, the exact distance is returned. Otherwise the returned value
// is only a lower bound above limit: the computation stops at the first row
// whose every cell already exceeds limit.
func Within(s, t string, limit int) (int, bool) {
	diff := utf8.RuneCountInString(s) - utf8.RuneCountInString(t)
	if diff < 0 {
		diff = -diff
	}
	if diff > limit {
		return diff, false
	}
	d := distance([]rune(s), []rune(t), limit)
	return d, d <= limit
}

// distance runs the two-row dynamic program over the shorter string.
// A negative limit disables the early exit.
func distance(a, b []rune, limit int) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	next := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j, bc := range b {
		next[0] = j + 1
		lowest := next[0]
		for i, ac := range a {
			sub := row[i]
			if ac != bc {
				sub++
			}
			next[i+1] = min(next[i]+1, row[i+1]+1, sub)
			lowest = min(lowest, next[i+1])
		}
		if limit >= 0 && lowest > limit {
			return lowest
		}
		row, next = next, row
	}
	return row[len(a)]
}
