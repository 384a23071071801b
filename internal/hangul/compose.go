// Package hangul reconstructs text typed on the wrong keyboard layout: Latin
// keystrokes meant as Korean jamo are composed into syllable blocks, and
// Hangul text is decomposed back into the Latin keys that would have produced
// it. Both directions are total functions; anything unmappable passes through
// unchanged.
package hangul

import "strings"

// composer states. There is no terminal state: whatever is buffered is
// flushed at end of input or on a non-mappable character.
type state int

const (
	awaitingInitial state = iota // nothing buffered
	awaitingMedial               // initial held
	awaitingFinal                // initial + medial held
	finalHeld                    // initial + medial + final held
)

// composer is the forward automaton. The three jamo buffers plus the state
// field exist only for the duration of one EngToKor call; the only way back
// to awaitingInitial is through flush.
type composer struct {
	st            state
	ini, med, fin rune
	out           strings.Builder
}

// flush emits whatever is buffered: a full syllable if initial and medial are
// both held, otherwise the bare jamo, then resets to awaitingInitial.
func (c *composer) flush() {
	switch {
	case c.ini != 0 && c.med != 0:
		fin := 0
		if c.fin != 0 {
			fin = finalIdx[c.fin]
		}
		c.out.WriteRune(rune(syllableBase +
			initialIdx[c.ini]*medialCount*finalCount +
			medialIdx[c.med]*finalCount +
			fin))
	case c.ini != 0:
		c.out.WriteRune(c.ini)
	case c.med != 0:
		c.out.WriteRune(c.med)
	}
	c.ini, c.med, c.fin = 0, 0, 0
	c.st = awaitingInitial
}

// feed advances the automaton by one mapped jamo.
func (c *composer) feed(j rune) {
	vowel := isVowel(j)

	switch c.st {
	case awaitingInitial:
		if vowel {
			// A leading vowel has no initial to pair with; emit it bare
			// rather than fabricating a syllable.
			c.out.WriteRune(j)
			return
		}
		c.ini = j
		c.st = awaitingMedial

	case awaitingMedial:
		if vowel {
			c.med = j
			c.st = awaitingFinal
			return
		}
		c.flush()
		c.ini = j
		c.st = awaitingMedial

	case awaitingFinal:
		if vowel {
			if merged, ok := compoundMedials[[2]rune{c.med, j}]; ok {
				c.med = merged
				return
			}
			c.flush()
			c.out.WriteRune(j)
			return
		}
		if finalIdx[j] > 0 {
			c.fin = j
			c.st = finalHeld
			return
		}
		// ㄸ, ㅃ, ㅉ cannot close a syllable; they start the next one.
		c.flush()
		c.ini = j
		c.st = awaitingMedial

	case finalHeld:
		if vowel {
			// Syllable boundary transfer: a following vowel pulls the held
			// final (the second half of a compound, or the whole simple
			// final) across as the initial of a new syllable.
			keep, move := rune(0), c.fin
			if parts, ok := splitFinals[c.fin]; ok {
				keep, move = parts[0], parts[1]
			}
			c.fin = keep
			c.flush()
			c.ini = move
			c.med = j
			c.st = awaitingFinal
			return
		}
		if merged, ok := compoundFinals[[2]rune{c.fin, j}]; ok {
			c.fin = merged
			return
		}
		c.flush()
		c.ini = j
		c.st = awaitingMedial
	}
}

// EngToKor translates Latin keystrokes into the Hangul text they would have
// produced on the standard two-set layout, composing jamo into syllable
// blocks. Characters with no key mapping flush any in-progress syllable and
// pass through unchanged.
func EngToKor(text string) string {
	var c composer
	for _, r := range text {
		j, ok := latinToJamo[r]
		if !ok {
			c.flush()
			c.out.WriteRune(r)
			continue
		}
		c.feed(j)
	}
	c.flush()
	return c.out.String()
}
