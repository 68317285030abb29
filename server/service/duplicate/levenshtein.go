package duplicate

// editSimilarity converts the Levenshtein distance between two normalized
// names into a similarity score in [0, 1]. Two empty strings score 1.0.
func editSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}

	d := levenshtein(ra, rb)
	score := 1.0 - float64(d)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// editSimilarityAtLeast reports whether the pair can possibly reach the
// given similarity floor from lengths alone. The distance is at least the
// length difference, so obviously dissimilar pairs skip the DP entirely.
func editSimilarityAtLeast(a, b string, floor float64) bool {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	diff := la - lb
	if diff < 0 {
		diff = -diff
		maxLen = lb
	}
	if maxLen == 0 {
		return true
	}
	return 1.0-float64(diff)/float64(maxLen) >= floor
}

// levenshtein computes the standard edit distance with unit-cost
// insertions, deletions and substitutions, using two rolling rows.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
