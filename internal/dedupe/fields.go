package dedupe

import "strings"

// Field scorers. Each is a pure function over two raw field values, returning
// a similarity in [0,1]. Empty-field handling (exclusion from the weighted
// average) is the caller's job; the scorers themselves just compare.

// surnameCap caps the similarity of two Hangul names of equal length that
// share only their first character. Among Korean names a shared family name
// is weak evidence at best, so "same surname, different given name" must not
// read as a near-match.
const surnameCap = 0.5

func nameSimilarity(a, b string) float64 {
	na := normalizeName(a)
	nb := normalizeName(b)
	if na == nb {
		return 1.0
	}

	score := LevenshteinSimilarity(na, nb)

	// Korean full names run 2-4 syllables; equal-length Hangul names that
	// agree on the first syllable only are likely two people sharing a
	// surname, not a typo of one person.
	if isHangul(na) && isHangul(nb) {
		ra := []rune(na)
		rb := []rune(nb)
		if len(ra) == len(rb) && len(ra) >= 2 && len(ra) <= 4 && ra[0] == rb[0] {
			if score > surnameCap {
				score = surnameCap
			}
		}
	}

	return score
}

func emailSimilarity(a, b string) float64 {
	ea := strings.ToLower(strings.TrimSpace(a))
	eb := strings.ToLower(strings.TrimSpace(b))
	if ea == eb {
		return 1.0
	}

	localA, domainA, _ := strings.Cut(ea, "@")
	localB, domainB, _ := strings.Cut(eb, "@")

	// Same mailbox name on a different provider is a strong but not perfect
	// signal; people reuse local parts across providers.
	if localA == localB && domainA != domainB {
		return 0.9
	}

	return LevenshteinSimilarity(localA, localB) * 0.8
}

func phoneSimilarity(a, b string) float64 {
	da := phoneDigits(a)
	db := phoneDigits(b)
	if da == "" || db == "" {
		return 0
	}
	if da == db {
		return 1.0
	}

	// Same subscriber number with a different country/area prefix.
	if len(da) >= 8 && len(db) >= 8 && da[len(da)-8:] == db[len(db)-8:] {
		return 0.95
	}

	return LevenshteinSimilarity(da, db)
}

func companySimilarity(a, b string) float64 {
	return LevenshteinSimilarity(normalizeCompany(a), normalizeCompany(b))
}

func positionSimilarity(a, b string) float64 {
	return LevenshteinSimilarity(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
}
