package dedupe

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// corporateAffixes matches the entity markers commonly glued onto Korean and
// English company names. NFKC folding runs first, so the single-codepoint ㈜
// arrives here already expanded to (주).
var corporateAffixes = regexp.MustCompile(`(?i)(주식회사|\(주\)|\bco\b\.?,?\s*ltd\b\.?|\binc\b\.?|\bltd\b\.?|\bcorp\b\.?|\bllc\b)`)

// fold applies NFKC normalization, fullwidth-to-ASCII width folding, and
// Unicode case folding. A fresh transformer chain is built per call; the
// inputs are short fields and the package stays free of shared mutable state.
func fold(s string) string {
	out, _, err := transform.String(transform.Chain(norm.NFKC, width.Fold, cases.Fold()), s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// normalizeName lowercases, width-folds, and strips all whitespace.
func normalizeName(s string) string {
	return stripSpace(fold(s))
}

// normalizeCompany folds, removes corporate entity affixes, and strips
// whitespace, so "㈜카카오" and "카카오 주식회사" compare equal.
func normalizeCompany(s string) string {
	return stripSpace(corporateAffixes.ReplaceAllString(fold(s), ""))
}

// phoneDigits keeps only the decimal digits of a phone number.
func phoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isHangul reports whether s is non-empty and consists entirely of
// precomposed Hangul syllables.
func isHangul(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0xAC00 || r > 0xD7A3 {
			return false
		}
	}
	return true
}
