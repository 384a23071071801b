package dedupe

import "testing"

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"abc", "abc", 0},
		{"김민수", "김민호", 1},
		{"홍길동", "이순신", 3},
	}
	for _, tc := range cases {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := LevenshteinSimilarity("", ""); got != 1.0 {
		t.Fatalf("empty strings should score 1.0, got %v", got)
	}
	if got := LevenshteinSimilarity("abc", "abc"); got != 1.0 {
		t.Fatalf("identical strings should score 1.0, got %v", got)
	}

	// 1 edit over 3 runes
	if got := LevenshteinSimilarity("김민수", "김민호"); got < 0.66 || got > 0.67 {
		t.Fatalf("expected ~0.667, got %v", got)
	}
}

func TestSimilarity_LengthGapShortCircuit(t *testing.T) {
	// Lengths 2 vs 20: gap exceeds half the longer string, so the flat
	// dissimilar score is returned without running the full distance.
	if got := LevenshteinSimilarity("ab", "abcdefghijklmnopqrst"); got != dissimilarScore {
		t.Fatalf("expected short-circuit score %v, got %v", dissimilarScore, got)
	}
}
