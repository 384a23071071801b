package hangul

import "strings"

// KorToEng decomposes Hangul text back into the Latin keystrokes that would
// have produced it on the standard two-set layout. Composed syllables split
// into initial, medial, and final; compound jamo split further into their two
// constituents. Non-Hangul characters are copied through unchanged.
func KorToEng(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= syllableBase && r <= syllableEnd:
			off := int(r - syllableBase)
			writeKeys(&b, initials[off/(medialCount*finalCount)])
			writeKeys(&b, medials[(off/finalCount)%medialCount])
			if fin := finals[off%finalCount]; fin != 0 {
				writeKeys(&b, fin)
			}
		case r >= bareJamoStart && r <= bareJamoEnd:
			writeKeys(&b, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// writeKeys emits the key sequence for one jamo, splitting compounds first.
func writeKeys(b *strings.Builder, j rune) {
	if parts, ok := splitFinals[j]; ok {
		writeKey(b, parts[0])
		writeKey(b, parts[1])
		return
	}
	if parts, ok := splitMedials[j]; ok {
		writeKey(b, parts[0])
		writeKey(b, parts[1])
		return
	}
	writeKey(b, j)
}

func writeKey(b *strings.Builder, j rune) {
	if k, ok := jamoToLatin[j]; ok {
		b.WriteRune(k)
		return
	}
	// Jamo with no key on the two-set layout (archaic letters) stay as-is.
	b.WriteRune(j)
}
