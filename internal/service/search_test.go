package service

import "testing"

func TestQueryVariants(t *testing.T) {
	got := QueryVariants("rlaalstn")
	if len(got) < 2 || got[0] != "rlaalstn" {
		t.Fatalf("raw query must come first: %v", got)
	}

	found := false
	for _, v := range got {
		if v == "김민수" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the Hangul reading 김민수 in variants: %v", got)
	}
}

func TestQueryVariants_HangulInput(t *testing.T) {
	got := QueryVariants("김민수")
	found := false
	for _, v := range got {
		if v == "rlaalstn" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the keystroke reading in variants: %v", got)
	}
}

func TestQueryVariants_Dedup(t *testing.T) {
	// Digits map to no jamo, so both transliterations return the input
	// unchanged and collapse into one variant.
	got := QueryVariants("12345")
	if len(got) != 1 || got[0] != "12345" {
		t.Fatalf("expected a single variant: %v", got)
	}

	if got := QueryVariants("   "); got != nil {
		t.Fatalf("blank query should expand to nothing: %v", got)
	}
}
