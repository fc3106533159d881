package binary

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/storage"
	"github.com/oisee/bignum/pkg/word"
)

// AddMagnitude returns |v|+|other| as a positive Value, ignoring both
// operands' sign fields. Iterates over max(|v|,|other|) word positions with
// carry, pushing a final carry word if one remains (spec.md §4.4).
func (v Value) AddMagnitude(other Value) Value {
	a, b := v.s.Words, other.s.Words
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]word.Word, n+1)
	var carry word.Word
	for i := 0; i < n; i++ {
		var x, y word.Word
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i], carry = word.AddWithCarry(x, y, carry)
	}
	out[n] = carry
	s := storage.Storage{Words: out}
	s.TrimLeadingZeroWords()
	return Value{s: s}
}

// SubMagnitude returns |v|-|other| as a positive Value. The caller must
// guarantee |v| >= |other|; the operator scaffolding in pkg/bignum is the
// only caller and always satisfies this (spec.md §4.4).
func (v Value) SubMagnitude(other Value) Value {
	a, b := v.s.Words, other.s.Words
	out := make([]word.Word, len(a))
	var borrow word.Word
	for i := range a {
		var y word.Word
		if i < len(b) {
			y = b[i]
		}
		out[i], borrow = word.SubWithBorrow(a[i], y, borrow)
	}
	s := storage.Storage{Words: out}
	s.TrimLeadingZeroWords()
	return Value{s: s}
}

// MulMagnitude returns |v|*|other|, computed by adding a shifted copy of v
// into an accumulator for every set bit of other (spec.md §4.4).
func (v Value) MulMagnitude(other Value) Value {
	acc := Zero()
	totalBits := other.s.BitLen()
	for p := 0; p < totalBits; p++ {
		wi, bi := p/word.Bits, p%word.Bits
		if other.s.Words[wi]&(1<<uint(bi)) == 0 {
			continue
		}
		acc = acc.AddMagnitude(shiftLeft(v, p))
	}
	return acc
}

// shiftLeft returns |v| << n, a magnitude-only left shift by n bits.
func shiftLeft(v Value, n int) Value {
	if v.s.IsZeroMagnitude() || n == 0 {
		return v.WithSign(false)
	}
	wordShift, bitShift := n/word.Bits, n%word.Bits
	src := v.s.Words
	out := make([]word.Word, len(src)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], src)
	} else {
		var carry word.Word
		for i, w := range src {
			out[wordShift+i] = (w << uint(bitShift)) | carry
			carry = w >> uint(word.Bits-bitShift)
		}
		out[wordShift+len(src)] = carry
	}
	s := storage.Storage{Words: out}
	s.TrimLeadingZeroWords()
	return Value{s: s}
}

// DivMagnitude divides |v| by |other| using restoring binary long division
// and returns the magnitude quotient and remainder (spec.md §4.4). It fails
// with bnerr.ErrDivisionByZero if other is zero.
func (v Value) DivMagnitude(other Value) (quotient, remainder Value, err error) {
	if other.s.IsZeroMagnitude() {
		return Value{}, Value{}, fmt.Errorf("binary.Value.DivMagnitude: %w", bnerr.ErrDivisionByZero)
	}
	if v.CompareMagnitude(other) < 0 {
		return Zero(), v.WithSign(false), nil
	}

	dividendBits := v.s.BitLen()
	topBit := -1
	for i := dividendBits - 1; i >= 0; i-- {
		wi, bi := i/word.Bits, i%word.Bits
		if v.s.Words[wi]&(1<<uint(bi)) != 0 {
			topBit = i
			break
		}
	}

	rem := Zero()
	quo := Zero()
	for i := topBit; i >= 0; i-- {
		rem = shiftLeft(rem, 1)
		wi, bi := i/word.Bits, i%word.Bits
		if v.s.Words[wi]&(1<<uint(bi)) != 0 {
			rem.s.Words[0] |= 1
		}
		if rem.CompareMagnitude(other) >= 0 {
			rem = rem.SubMagnitude(other)
			quo = setBit(quo, i)
		}
	}
	quo.s.TrimLeadingZeroWords()
	return quo, rem, nil
}

// setBit returns a copy of v with bit i of its magnitude set, growing the
// word vector if necessary.
func setBit(v Value, i int) Value {
	s := v.s.Clone()
	wi, bi := i/word.Bits, i%word.Bits
	s.EnsureWordLen(wi + 1)
	s.Words[wi] |= 1 << uint(bi)
	return Value{s: s}
}
