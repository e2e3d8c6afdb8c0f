package sieve

import "strings"

// Render returns the classified part of the bitmap as text: one line per
// word, up to the word holding the cursor, with WordBits characters of '1'
// for primes and '0' otherwise.  Each line starts at the least significant
// bit, so the first line reads 3, 5, 7, 9 and so on.
func (s *Sieve) Render() (text string) {
	lastWord := 0
	if s.cursor >= 3 {
		lastWord = oddIndex(s.cursor) / WordBits
	}

	var b strings.Builder
	b.Grow((lastWord + 1) * (WordBits + 1))
	for w := 0; w <= lastWord && w < len(s.bitmap.words); w++ {
		word := s.bitmap.words[w]
		for i := range WordBits {
			if word&(1<<i) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
