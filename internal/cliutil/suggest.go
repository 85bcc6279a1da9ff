package cliutil

// ClosestMatch returns the candidate with the smallest edit distance to input,
// or "" when none is within maxDistance. Ties go to the earlier candidate.
func ClosestMatch(input string, candidates []string, maxDistance int) string {
	best := ""
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein(input, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
