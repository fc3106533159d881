// Package binary implements the binary-representation arithmetic kernel: a
// little-endian sequence of fixed-width words encoding the magnitude in
// base 2^W, parsed from decimal through pkg/decstr and formatted to decimal
// with its own base-10^9 chunk conversion.
package binary

import (
	"fmt"
	"strings"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/decstr"
	"github.com/oisee/bignum/pkg/storage"
	"github.com/oisee/bignum/pkg/word"
)

// Value is one arbitrary-precision signed integer in binary representation.
type Value struct {
	s storage.Storage
}

// Zero returns the canonical binary representation of zero.
func Zero() Value {
	return Value{s: storage.Zero()}
}

// FromString parses a decimal string into a binary Value. It fails with
// bnerr.ErrParse if s does not match the decimal grammar (optional leading
// '-', then digits, no leading zeros except the literal "0").
//
// Parsing repeatedly divides the decimal string by two (spec.md §4.4):
// each remainder becomes the next low bit of the current word; when a word
// fills, it is emitted and a new one started.
func FromString(s string) (Value, error) {
	if !decstr.IsValidIntegral(s) {
		return Value{}, fmt.Errorf("binary.FromString(%q): %w", s, bnerr.ErrParse)
	}
	neg := false
	digits := s
	if s[0] == '-' {
		neg = true
		digits = s[1:]
	}

	words := []word.Word{0}
	bitPos := 0
	for digits != "0" {
		q, rem, err := decstr.DivBySmall(digits, 2)
		if err != nil {
			return Value{}, err
		}
		if rem != 0 {
			words[len(words)-1] |= 1 << uint(bitPos)
		}
		bitPos++
		if bitPos == word.Bits {
			words = append(words, 0)
			bitPos = 0
		}
		digits = q
	}

	v := Value{s: storage.Storage{Words: words, Sign: neg}}
	v.s.TrimLeadingZeroWords()
	return v, nil
}

// FromUint64 constructs a binary Value from a native unsigned integer.
func FromUint64(n uint64) Value {
	words := make([]word.Word, 0, 8)
	for n > 0 {
		words = append(words, word.Word(n))
		n >>= word.Bits
	}
	if len(words) == 0 {
		words = []word.Word{0}
	}
	return Value{s: storage.Storage{Words: words}}
}

// FromInt64 constructs a binary Value from a native signed integer.
func FromInt64(n int64) Value {
	neg := n < 0
	var mag uint64
	if neg {
		mag = uint64(-(n + 1)) + 1 // avoids overflow for math.MinInt64
	} else {
		mag = uint64(n)
	}
	v := FromUint64(mag)
	v.s.Sign = neg && !v.s.IsZeroMagnitude()
	return v
}

// String formats v as a decimal string. If the magnitude fits in 64 bits it
// is emitted directly; otherwise a little-endian vector of base-10^9 chunks
// is built by scanning v's bits from high to low, doubling the chunk vector
// and adding each bit (spec.md §4.4).
func (v Value) String() string {
	if n, err := v.Uint64(); err == nil {
		s := fmt.Sprintf("%d", n)
		if v.s.Sign && n != 0 {
			s = "-" + s
		}
		return s
	}

	const chunkBase = 1_000_000_000
	chunks := []uint32{0}
	totalBits := v.s.BitLen()
	for bitIdx := totalBits - 1; bitIdx >= 0; bitIdx-- {
		// chunks = chunks*2 + bit
		var carry uint64
		wi, bi := bitIdx/word.Bits, bitIdx%word.Bits
		bit := uint64((v.s.Words[wi] >> uint(bi)) & 1)
		for i := 0; i < len(chunks); i++ {
			cur := uint64(chunks[i])*2 + carry
			chunks[i] = uint32(cur % chunkBase)
			carry = cur / chunkBase
		}
		if carry != 0 {
			chunks = append(chunks, uint32(carry))
		}
		if bit != 0 {
			chunks[0]++
			for i := 0; chunks[i] >= chunkBase; i++ {
				chunks[i] -= chunkBase
				if i+1 == len(chunks) {
					chunks = append(chunks, 0)
				}
				chunks[i+1]++
			}
		}
	}

	var b strings.Builder
	if v.s.Sign {
		b.WriteByte('-')
	}
	top := len(chunks) - 1
	fmt.Fprintf(&b, "%d", chunks[top])
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%09d", chunks[i])
	}
	return b.String()
}

// Sign reports whether v is negative.
func (v Value) Sign() bool { return v.s.Sign }

// IsZero reports whether v's magnitude is zero.
func (v Value) IsZero() bool { return v.s.IsZeroMagnitude() }

// WithSign returns a copy of v with the sign forced to neg, except that the
// canonical zero is always positive regardless of neg.
func (v Value) WithSign(neg bool) Value {
	out := v.s.Clone()
	out.Sign = neg && !out.IsZeroMagnitude()
	return Value{s: out}
}

// NewUint64 is a type-preserving factory: it returns a fresh binary Value
// for n, usable from generic code that only holds a Form and needs a new
// constant of the same concrete representation.
func (Value) NewUint64(n uint64) Value { return FromUint64(n) }

// Uint64 returns v's magnitude as a uint64, failing with bnerr.ErrOverflow
// if v is negative or its magnitude does not fit in 64 bits.
func (v Value) Uint64() (uint64, error) {
	if v.s.Sign {
		return 0, fmt.Errorf("binary.Value.Uint64(): %w", bnerr.ErrOverflow)
	}
	if len(v.s.Words)*word.Bits > 64 {
		for _, w := range v.s.Words[64/word.Bits:] {
			if w != 0 {
				return 0, fmt.Errorf("binary.Value.Uint64(): %w", bnerr.ErrOverflow)
			}
		}
	}
	var n uint64
	for i := len(v.s.Words) - 1; i >= 0; i-- {
		if i >= 64/word.Bits {
			continue
		}
		n = n<<word.Bits | uint64(v.s.Words[i])
	}
	return n, nil
}

// Int64 returns v as an int64, failing with bnerr.ErrOverflow if it does
// not fit.
func (v Value) Int64() (int64, error) {
	mag, err := v.WithSign(false).Uint64()
	if err != nil {
		return 0, fmt.Errorf("binary.Value.Int64(): %w", bnerr.ErrOverflow)
	}
	if v.s.Sign {
		if mag > 1<<63 {
			return 0, fmt.Errorf("binary.Value.Int64(): %w", bnerr.ErrOverflow)
		}
		return -int64(mag), nil
	}
	if mag > 1<<63-1 {
		return 0, fmt.Errorf("binary.Value.Int64(): %w", bnerr.ErrOverflow)
	}
	return int64(mag), nil
}

// CompareMagnitude compares |v| to |other|: longest nonzero-word vector
// wins, ties broken by the highest differing word (spec.md §4.4).
func (v Value) CompareMagnitude(other Value) int {
	a, b := v.s.Words, other.s.Words
	na, nb := significantLen(a), significantLen(b)
	if na != nb {
		if na > nb {
			return 1
		}
		return -1
	}
	for i := na - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func significantLen(w []word.Word) int {
	n := len(w)
	for n > 1 && w[n-1] == 0 {
		n--
	}
	return n
}
