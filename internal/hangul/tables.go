package hangul

// Precomposed syllable layout: codepoint = 0xAC00 + ini*588 + med*28 + fin,
// where 588 = 21 medials * 28 finals and final index 0 means no final.
const (
	syllableBase = 0xAC00
	syllableEnd  = 0xD7A3

	medialCount = 21
	finalCount  = 28
)

// bareJamoStart..bareJamoEnd is the Hangul compatibility jamo block, the
// form a bare consonant or vowel takes outside a composed syllable.
const (
	bareJamoStart = 0x3131
	bareJamoEnd   = 0x3163
)

var initials = [19]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var medials = [21]rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
	'ㅣ',
}

var finals = [28]rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// latinToJamo maps physical keys of a Latin keyboard to the jamo they produce
// on the standard two-set (dubeolsik) Korean layout. Shifted keys yield the
// tense consonants and yed-vowels; shifted keys with no distinct jamo repeat
// their unshifted mapping.
var latinToJamo = map[rune]rune{
	'q': 'ㅂ', 'w': 'ㅈ', 'e': 'ㄷ', 'r': 'ㄱ', 't': 'ㅅ',
	'y': 'ㅛ', 'u': 'ㅕ', 'i': 'ㅑ', 'o': 'ㅐ', 'p': 'ㅔ',
	'a': 'ㅁ', 's': 'ㄴ', 'd': 'ㅇ', 'f': 'ㄹ', 'g': 'ㅎ',
	'h': 'ㅗ', 'j': 'ㅓ', 'k': 'ㅏ', 'l': 'ㅣ',
	'z': 'ㅋ', 'x': 'ㅌ', 'c': 'ㅊ', 'v': 'ㅍ', 'b': 'ㅠ',
	'n': 'ㅜ', 'm': 'ㅡ',

	'Q': 'ㅃ', 'W': 'ㅉ', 'E': 'ㄸ', 'R': 'ㄲ', 'T': 'ㅆ',
	'Y': 'ㅛ', 'U': 'ㅕ', 'I': 'ㅑ', 'O': 'ㅒ', 'P': 'ㅖ',
	'A': 'ㅁ', 'S': 'ㄴ', 'D': 'ㅇ', 'F': 'ㄹ', 'G': 'ㅎ',
	'H': 'ㅗ', 'J': 'ㅓ', 'K': 'ㅏ', 'L': 'ㅣ',
	'Z': 'ㅋ', 'X': 'ㅌ', 'C': 'ㅊ', 'V': 'ㅍ', 'B': 'ㅠ',
	'N': 'ㅜ', 'M': 'ㅡ',
}

// compoundMedials lists the vowel pairs the keyboard produces as two
// keystrokes that fuse into one medial.
var compoundMedials = map[[2]rune]rune{
	{'ㅗ', 'ㅏ'}: 'ㅘ',
	{'ㅗ', 'ㅐ'}: 'ㅙ',
	{'ㅗ', 'ㅣ'}: 'ㅚ',
	{'ㅜ', 'ㅓ'}: 'ㅝ',
	{'ㅜ', 'ㅔ'}: 'ㅞ',
	{'ㅜ', 'ㅣ'}: 'ㅟ',
	{'ㅡ', 'ㅣ'}: 'ㅢ',
}

// compoundFinals lists the consonant pairs that fuse into one trailing
// consonant cluster.
var compoundFinals = map[[2]rune]rune{
	{'ㄱ', 'ㅅ'}: 'ㄳ',
	{'ㄴ', 'ㅈ'}: 'ㄵ',
	{'ㄴ', 'ㅎ'}: 'ㄶ',
	{'ㄹ', 'ㄱ'}: 'ㄺ',
	{'ㄹ', 'ㅁ'}: 'ㄻ',
	{'ㄹ', 'ㅂ'}: 'ㄼ',
	{'ㄹ', 'ㅅ'}: 'ㄽ',
	{'ㄹ', 'ㅌ'}: 'ㄾ',
	{'ㄹ', 'ㅍ'}: 'ㄿ',
	{'ㄹ', 'ㅎ'}: 'ㅀ',
	{'ㅂ', 'ㅅ'}: 'ㅄ',
}

// Derived tables, built once by buildTables.
var (
	jamoToLatin  map[rune]rune
	initialIdx   map[rune]int
	medialIdx    map[rune]int
	finalIdx     map[rune]int
	splitMedials map[rune][2]rune
	splitFinals  map[rune][2]rune
)

func init() { buildTables() }

func buildTables() {
	initialIdx = make(map[rune]int, len(initials))
	for i, j := range initials {
		initialIdx[j] = i
	}
	medialIdx = make(map[rune]int, len(medials))
	for i, j := range medials {
		medialIdx[j] = i
	}
	finalIdx = make(map[rune]int, len(finals))
	for i, j := range finals {
		if j != 0 {
			finalIdx[j] = i
		}
	}

	splitMedials = make(map[rune][2]rune, len(compoundMedials))
	for parts, j := range compoundMedials {
		splitMedials[j] = parts
	}
	splitFinals = make(map[rune][2]rune, len(compoundFinals))
	for parts, j := range compoundFinals {
		splitFinals[j] = parts
	}

	// The inverse key table must be built in key order, unshifted letters
	// first: composition recorded only the jamo, not the shift state, so a
	// jamo reachable from two keys resolves to the lowercase one.
	jamoToLatin = make(map[rune]rune, len(latinToJamo))
	for r := 'a'; r <= 'z'; r++ {
		if j, ok := latinToJamo[r]; ok {
			if _, dup := jamoToLatin[j]; !dup {
				jamoToLatin[j] = r
			}
		}
	}
	for r := 'A'; r <= 'Z'; r++ {
		if j, ok := latinToJamo[r]; ok {
			if _, dup := jamoToLatin[j]; !dup {
				jamoToLatin[j] = r
			}
		}
	}
}

func isVowel(j rune) bool {
	_, ok := medialIdx[j]
	return ok
}
