package hangul

import "testing"

func TestEngToKor_Syllables(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"rk", "가"},
		{"rks", "간"},
		{"rkr", "각"},
		{"ghk", "화"},  // compound medial ㅗ+ㅏ
		{"rkqt", "값"}, // compound final ㅂ+ㅅ
		{"rkrt", "갃"}, // compound final ㄱ+ㅅ
		{"Ek", "따"},   // shifted key, tense initial
		{"Rk", "까"},
		{"dkssudgktpdy", "안녕하세요"},
		{"gksrnrdj", "한국어"},
		{"dlfurtj", "이력서"},
	}
	for _, tc := range cases {
		if got := EngToKor(tc.in); got != tc.want {
			t.Errorf("EngToKor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEngToKor_FinalTransfer(t *testing.T) {
	// A vowel after a held final pulls the final across as the next
	// syllable's initial.
	cases := []struct {
		in, want string
	}{
		{"rksk", "가나"},  // simple final ㄴ moves whole
		{"rkqtk", "갑사"}, // compound ㅄ splits: ㅂ stays, ㅅ moves
		{"rkrtk", "각사"}, // compound ㄳ splits: ㄱ stays, ㅅ moves
		{"dktl", "아시"},
	}
	for _, tc := range cases {
		if got := EngToKor(tc.in); got != tc.want {
			t.Errorf("EngToKor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEngToKor_BareJamo(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"k", "ㅏ"},   // leading vowel stays bare
		{"kr", "ㅏㄱ"}, // consonant with no vowel stays bare
		{"r", "ㄱ"},
		{"rr", "ㄱㄱ"},  // two plain consonants never merge
		{"rkk", "가ㅏ"}, // ㅏ+ㅏ is not a compound medial
		{"rkE", "가ㄸ"}, // ㄸ cannot close a syllable
	}
	for _, tc := range cases {
		if got := EngToKor(tc.in); got != tc.want {
			t.Errorf("EngToKor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEngToKor_Passthrough(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"rk123!!", "가123!!"},
		{"rks dlf", "간 일"},
		{"010-1234", "010-1234"},
		{"", ""},
		{"가나다", "가나다"}, // already Hangul, no key mapping
	}
	for _, tc := range cases {
		if got := EngToKor(tc.in); got != tc.want {
			t.Errorf("EngToKor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// For unshifted keystrokes the decomposition recovers the exact keys.
	for _, in := range []string{"rk", "rks", "rkqtk", "dkssudgktpdy", "gksrnrdj"} {
		if got := KorToEng(EngToKor(in)); got != in {
			t.Errorf("KorToEng(EngToKor(%q)) = %q", in, got)
		}
	}
}
