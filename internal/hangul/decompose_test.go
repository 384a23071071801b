package hangul

import "testing"

func TestKorToEng_Syllables(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"가", "rk"},
		{"간", "rks"},
		{"값", "rkqt"},
		{"화", "ghk"},
		{"안녕하세요", "dkssudgktpdy"},
		{"김민수", "rlaalstn"},
	}
	for _, tc := range cases {
		if got := KorToEng(tc.in); got != tc.want {
			t.Errorf("KorToEng(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKorToEng_BareJamo(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ㄱ", "r"},
		{"ㅏ", "k"},
		{"ㄲ", "R"},  // only a shifted key produces ㄲ
		{"ㅘ", "hk"}, // bare compound medial splits
		{"ㅄ", "qt"}, // bare compound final splits
	}
	for _, tc := range cases {
		if got := KorToEng(tc.in); got != tc.want {
			t.Errorf("KorToEng(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKorToEng_ShiftPreference(t *testing.T) {
	// The inverse table resolves each jamo to a single key, preferring the
	// unshifted one; jamo only reachable via shift keep the shifted key.
	cases := []struct {
		in, want string
	}{
		{"까", "Rk"},
		{"예", "dP"},
		{"싸", "Tk"},
		{"요", "dy"}, // ㅛ reachable from both y and Y resolves to y
	}
	for _, tc := range cases {
		if got := KorToEng(tc.in); got != tc.want {
			t.Errorf("KorToEng(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKorToEng_Passthrough(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"가 123, abc", "rk 123, abc"},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := KorToEng(tc.in); got != tc.want {
			t.Errorf("KorToEng(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
