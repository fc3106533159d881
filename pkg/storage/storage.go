// Package storage implements the packed magnitude container shared by the
// binary and factorial kernels: an ordered word vector plus a sign flag and
// a 63-bit auxiliary hint. The binary kernel reads Words as base-2^W digits;
// the factorial kernel reads the same Words as a flat bit stream addressed
// by the codec in pkg/factorial.
package storage

import "github.com/oisee/bignum/pkg/word"

// MaxAux is the largest value Aux may hold, matching the 63-bit field the
// reference implementation packs alongside the sign bit in one 64-bit cell.
// This package keeps Sign and Aux as separate Go fields (see DESIGN.md) and
// does not check Aux against MaxAux; the factorial codec enforces the same
// bound on coefficient indices through its own factorial.MaxIndex.
const MaxAux = 1<<63 - 1

// Storage holds the magnitude and sign of one arbitrary-precision integer.
// Words is little-endian: index 0 is the least significant word. Aux is
// unused by the binary kernel and records the highest populated factorial
// coefficient index for the factorial kernel.
type Storage struct {
	Words []word.Word
	Sign  bool
	Aux   uint64
}

// Zero returns the canonical representation of zero: a single zero word,
// positive sign, zero aux.
func Zero() Storage {
	return Storage{Words: []word.Word{0}}
}

// Clone returns a deep copy of s; the returned value shares no backing
// array with s, so mutating one never disturbs the other.
func (s Storage) Clone() Storage {
	w := make([]word.Word, len(s.Words))
	copy(w, s.Words)
	return Storage{Words: w, Sign: s.Sign, Aux: s.Aux}
}

// TrimLeadingZeroWords drops high-order zero words, leaving the single word
// [0] if the magnitude is zero. It also clears Sign when the result is zero,
// maintaining the "no negative zero" invariant.
func (s *Storage) TrimLeadingZeroWords() {
	n := len(s.Words)
	for n > 1 && s.Words[n-1] == 0 {
		n--
	}
	s.Words = s.Words[:n]
	if s.IsZeroMagnitude() {
		s.Sign = false
	}
}

// IsZeroMagnitude reports whether the word vector represents zero.
func (s Storage) IsZeroMagnitude() bool {
	for _, w := range s.Words {
		if w != 0 {
			return false
		}
	}
	return true
}

// EnsureWordLen grows Words with zero words, if needed, so that it has at
// least n elements. It never shrinks.
func (s *Storage) EnsureWordLen(n int) {
	if len(s.Words) >= n {
		return
	}
	grown := make([]word.Word, n)
	copy(grown, s.Words)
	s.Words = grown
}

// BitLen returns the number of bits needed to represent the current Words
// slice as a flat little-endian bit stream (len(Words)*word.Bits); this is
// the codec's notion of "current bit length of storage" used by Extract to
// decide whether a coefficient is absent.
func (s Storage) BitLen() int {
	return len(s.Words) * word.Bits
}
