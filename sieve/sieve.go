// Package sieve caches primality of odd integers in a growable bitmap.
//
// Bit i of the bitmap records whether the odd integer 2*i+3 is prime.  Even
// integers are never stored: 2 is prime and every other even integer is not.
// Integers are classified lazily by trial division, so a query above
// everything seen so far extends the bitmap and every later query at or below
// that bound is a single bit lookup.
//
// A Sieve is not safe for concurrent use.  Both queries and the sequence
// mutate it, so callers sharing one must serialize all calls.
package sieve

import (
	"fmt"
	"iter"
	"log/slog"
)

// Sieve is an incrementally extended table of primes.  The zero value is not
// usable; use New or NewWithCapacity.
type Sieve struct {
	logger   *slog.Logger
	progress func(cursor int)
	bitmap   *bitmap

	// cursor is the highest odd integer that has been classified, or 1 when
	// nothing has been.
	cursor int

	// last is the last value returned by NextPrime, or 0 before the first
	// call.
	last int
}

// New returns an empty sieve.
func New(opts ...Option) (s *Sieve) {
	return newSieve(1, opts)
}

// NewWithCapacity returns a sieve with every odd integer up to capacity
// already classified.  Capacities below 1 classify nothing.  Any other
// capacity moves the cursor past it, so 1 and 2 already classify 3.
func NewWithCapacity(capacity int, opts ...Option) (s *Sieve) {
	checkBound(capacity)

	numWords := 1
	if capacity > 3 {
		numWords = (capacity-3)/(2*WordBits) + 1
	}

	s = newSieve(numWords, opts)
	s.ensureClassifiedUpTo(capacity)

	return s
}

func newSieve(numWords int, opts []Option) (s *Sieve) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Sieve{
		logger:   o.logger,
		progress: o.progress,
		bitmap:   newBitmap(numWords),
		cursor:   1,
	}
}

// checkBound panics with ErrOverflow if n is too close to the maximum int for
// the cursor to step past it.
func checkBound(n int) {
	if n > maxClassifiable {
		panic(fmt.Errorf("classifying up to %d: %w", n, ErrOverflow))
	}
}

// ensureClassifiedUpTo classifies odd integers past the cursor until the
// cursor exceeds n.
func (s *Sieve) ensureClassifiedUpTo(n int) {
	checkBound(n)

	for s.cursor <= n {
		s.cursor += 2
		s.record(s.cursor, calculatePrime(s.cursor))
		if s.progress != nil {
			s.progress(s.cursor)
		}
	}
}

// record stores the primality of the odd integer n >= 3.
func (s *Sieve) record(n int, prime bool) {
	idx := oddIndex(n)
	prevWords := len(s.bitmap.words)
	if s.bitmap.growToFit(idx / WordBits) {
		s.logger.Debug(
			"bitmap grown",
			"cursor", n,
			"from_words", prevWords,
			"to_words", len(s.bitmap.words),
		)
	}

	if prime {
		s.bitmap.set(idx)
	}
}

// IsPrime reports whether n is prime.  Any int is accepted.
//
// IsPrime is not a pure read: if n is above the cursor, all odd integers up
// to n are classified and kept, so that later queries up to n are constant
// time.
func (s *Sieve) IsPrime(n int) (ok bool) {
	if n > s.cursor {
		s.ensureClassifiedUpTo(n)
	}

	if n < 2 {
		return false
	} else if n == 2 {
		return true
	} else if n%2 == 0 {
		return false
	}

	return s.bitmap.get(oddIndex(n))
}

// NextPrime returns the next prime of the sequence 2, 3, 5, 7, 11, ... kept
// by s.  The sequence can't be rewound.  It is independent of IsPrime: a
// query above the sequence position only makes later calls cheaper.
func (s *Sieve) NextPrime() (p int) {
	if s.last < 2 {
		s.last = 2

		return 2
	}

	n := 3
	if s.last > 2 {
		n = s.last + 2
	}

	for ; ; n += 2 {
		if n > s.cursor {
			s.ensureClassifiedUpTo(n)
		}

		if s.bitmap.get(oddIndex(n)) {
			s.last = n

			return n
		}
	}
}

// Sequence returns an iterator over the primes NextPrime would return.  It
// advances the same position as NextPrime and never ends on its own.
func (s *Sieve) Sequence() (seq iter.Seq[int]) {
	return func(yield func(int) bool) {
		for {
			if !yield(s.NextPrime()) {
				return
			}
		}
	}
}

// PrimesUpTo returns all primes up to and including n in ascending order,
// classifying up to n if needed.
func (s *Sieve) PrimesUpTo(n int) (primes []int) {
	if n < 2 {
		return nil
	}

	// Warm up the bitmap once so the loop below only does lookups.
	s.IsPrime(n)

	primes = []int{2}
	for c := 3; c <= n; c += 2 {
		if s.bitmap.get(oddIndex(c)) {
			primes = append(primes, c)
		}
	}

	return primes
}

// Cursor returns the highest classified odd integer, or 1 if nothing has been
// classified yet.
func (s *Sieve) Cursor() (n int) {
	return s.cursor
}

// Words returns the number of words currently allocated for the bitmap.
func (s *Sieve) Words() (n int) {
	return len(s.bitmap.words)
}

// Count returns the number of primes up to the cursor, including 2.
func (s *Sieve) Count() (n int) {
	if s.cursor < 3 {
		return 0
	}

	return s.bitmap.count() + 1
}
