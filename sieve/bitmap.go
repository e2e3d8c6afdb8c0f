package sieve

import (
	"fmt"
	"math/bits"
)

// WordBits is the width of a single bitmap word.
const WordBits = 64

// bitmap is a growable bit array stored in WordBits-wide words.
type bitmap struct {
	words []uint64
}

func newBitmap(numWords int) *bitmap {
	return &bitmap{words: make([]uint64, max(numWords, 1))}
}

// set sets the bit at index.  The storage must already fit it, see growToFit.
func (bm *bitmap) set(index int) {
	wordIndex := index / WordBits
	bitIndex := index % WordBits
	bm.words[wordIndex] |= 1 << bitIndex
}

// get reports whether the bit at index is set.  Bits past the end of the
// storage are unset.
func (bm *bitmap) get(index int) bool {
	wordIndex := index / WordBits
	bitIndex := index % WordBits
	if wordIndex >= len(bm.words) {
		return false
	}

	return (bm.words[wordIndex] & (1 << bitIndex)) != 0
}

// growToFit doubles the word count until wordIndex fits and reports whether
// the storage was reallocated.
func (bm *bitmap) growToFit(wordIndex int) (grown bool) {
	if wordIndex < len(bm.words) {
		return false
	}

	newLen := max(len(bm.words), 1)
	for newLen <= wordIndex {
		var ok bool
		newLen, ok = checkedAdd(newLen, newLen)
		if !ok {
			panic(fmt.Errorf("growing bitmap to fit word %d: %w", wordIndex, ErrOverflow))
		}
	}

	newWords := make([]uint64, newLen)
	copy(newWords, bm.words)
	bm.words = newWords

	return true
}

// count returns the number of set bits.
func (bm *bitmap) count() (n int) {
	for _, w := range bm.words {
		n += bits.OnesCount64(w)
	}

	return n
}
