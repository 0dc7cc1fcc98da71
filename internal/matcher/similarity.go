package matcher

import "strings"

// Weighting of the two similarity passes. Token overlap dominates because
// statement labels reorder and drop words far more often than they misspell
// them; the character pass catches the misspellings.
const (
	tokenWeight = 0.6
	editWeight  = 0.4

	// tokenEquivalence is the minimum edit similarity for two differing
	// tokens to count as the same word during overlap scoring. Without it a
	// one-letter typo inside a token would wipe out the whole token match.
	tokenEquivalence = 0.8
)

// Similarity scores two normalized strings in [0,1] by combining token
// overlap with character-level edit similarity.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	overlap := tokenOverlap(strings.Fields(a), strings.Fields(b))
	return tokenWeight*overlap + editWeight*editSimilarity(a, b)
}

// tokenOverlap is Jaccard similarity over word tokens, with typo-tolerant
// token equivalence: tokens pair up when equal or within tokenEquivalence
// edit similarity. Each token pairs at most once.
func tokenOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	used := make([]bool, len(b))
	matched := 0
	for _, ta := range a {
		for j, tb := range b {
			if used[j] {
				continue
			}
			if ta == tb || editSimilarity(ta, tb) >= tokenEquivalence {
				used[j] = true
				matched++
				break
			}
		}
	}

	union := len(a) + len(b) - matched
	return float64(matched) / float64(union)
}

// editSimilarity converts Levenshtein distance into a [0,1] similarity.
func editSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes edit distance over bytes with two rolling rows.
// Normalized labels are ASCII, so byte positions and runes coincide.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
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
