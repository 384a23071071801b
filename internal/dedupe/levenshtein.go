package dedupe

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions required
// to turn one into the other. Operates on runes, not bytes, so Hangul and
// other multi-byte text is measured correctly.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	runesA := []rune(a)
	runesB := []rune(b)

	// Two-row optimization keeps memory at O(len(b))
	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(runesA); i++ {
		curr[0] = i

		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(runesB)]
}

// maxLengthGapRatio is the length-difference guard used by
// LevenshteinSimilarity: when
// the two strings differ in length by more than half the longer string, the
// full edit distance is skipped and a flat low score returned instead.
const (
	maxLengthGapRatio = 0.5
	dissimilarScore   = 0.3
)

// LevenshteinSimilarity returns a normalized Levenshtein similarity in [0,1]:
// 1 - distance/max(len). Identical strings score 1.0. Strings whose lengths
// differ by more than half the longer length short-circuit to 0.3 without
// running the full distance.
func LevenshteinSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	lenA := len([]rune(a))
	lenB := len([]rune(b))
	maxLen := max(lenA, lenB)
	if maxLen == 0 {
		return 1.0
	}

	gap := lenA - lenB
	if gap < 0 {
		gap = -gap
	}
	if float64(gap) > float64(maxLen)*maxLengthGapRatio {
		return dissimilarScore
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}
