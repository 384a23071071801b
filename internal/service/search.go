// Package service holds the application services sitting between handlers
// and the pure core packages.
package service

import (
	"strings"

	"github.com/yourusername/talentbase-api/internal/hangul"
)

// QueryVariants expands a search query into the forms it may have been meant
// as: the raw query, its Latin-keys-as-Hangul reading, and its
// Hangul-as-Latin-keys reading. A recruiter who forgot to switch keyboard
// layouts still finds 김민수 by typing "rlaalstn". The raw query always comes
// first; duplicates and empty variants are dropped.
func QueryVariants(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	variants := []string{query}
	seen := map[string]bool{query: true}

	for _, v := range []string{hangul.EngToKor(query), hangul.KorToEng(query)} {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		variants = append(variants, v)
		seen[v] = true
	}

	return variants
}
