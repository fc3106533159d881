package factorial

import (
	"fmt"
	"math/bits"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/storage"
	"github.com/oisee/bignum/pkg/word"
)

// MaxIndex is the largest coefficient index the codec will address
// (spec.md's MAXINDEX = 2^63 - 1).
const MaxIndex = uint64(1)<<63 - 1

// coeffWidth returns the number of bits the coefficient at position index
// occupies: ceil(log2(index+1)), which is exactly bits.Len64(index) (0 bits
// for index 0, since the mixed-radix bound at position 0 forces d_0 == 0).
func coeffWidth(index uint64) int {
	return bits.Len64(index)
}

// bitOffset returns B(index), the flat bit offset at which the coefficient
// at position index begins, per spec.md §3's closed form:
// for N=index-1>0, M=floor(log2 N), P=2^(M+1): B(index) = N + (M*N - (P-M-2)).
func bitOffset(index uint64) uint64 {
	if index <= 1 {
		return 0
	}
	n := index - 1
	m := uint64(bits.Len64(n) - 1)
	p := uint64(1) << (m + 1)
	return n + (m*n - (p - m - 2))
}

// Extract reads the coefficient at position index out of s's word vector
// treated as a flat little-endian bit stream. present is false if either
// the coefficient's starting bit offset or its end lies beyond s's current
// bit length (the coefficient was never written).
func Extract(s storage.Storage, index uint64) (value uint64, present bool, err error) {
	if index > MaxIndex {
		return 0, false, fmt.Errorf("factorial.Extract(%d): %w", index, bnerr.ErrOutOfRange)
	}
	width := coeffWidth(index)
	if width == 0 {
		return 0, true, nil
	}
	offset := bitOffset(index)
	if offset+uint64(width) > uint64(s.BitLen()) {
		return 0, false, nil
	}
	return readBits(s.Words, offset, width), true, nil
}

// Put writes value as the coefficient at position index, growing s's word
// vector to cover the coefficient's bit span and preserving every bit
// outside that span. It fails with bnerr.ErrOutOfRange if index exceeds
// MaxIndex and with bnerr.ErrInvalidCoefficient if value exceeds the
// mixed-radix bound for this position (value > index).
func Put(s *storage.Storage, index, value uint64) error {
	if index > MaxIndex {
		return fmt.Errorf("factorial.Put(%d): %w", index, bnerr.ErrOutOfRange)
	}
	if value > index {
		return fmt.Errorf("factorial.Put(%d, %d): %w", index, value, bnerr.ErrInvalidCoefficient)
	}
	width := coeffWidth(index)
	if width == 0 {
		return nil
	}
	offset := bitOffset(index)
	needed := offset + uint64(width)
	wordsNeeded := int((needed + word.Bits - 1) / word.Bits)
	s.EnsureWordLen(wordsNeeded)
	writeBits(s.Words, offset, width, value)
	if index > s.Aux {
		s.Aux = index
	}
	return nil
}

// readBits reads a width-bit (width <= 64) unsigned value out of words
// treated as a flat little-endian bit stream, starting at bit offset.
func readBits(words []word.Word, offset uint64, width int) uint64 {
	var result uint64
	for i := 0; i < width; i++ {
		bitPos := offset + uint64(i)
		wi := bitPos / word.Bits
		bi := bitPos % word.Bits
		if words[wi]&(1<<bi) != 0 {
			result |= uint64(1) << uint(i)
		}
	}
	return result
}

// writeBits writes the low width bits of value into words at bit offset,
// masking only the bits it touches so neighboring bits are undisturbed.
func writeBits(words []word.Word, offset uint64, width int, value uint64) {
	for i := 0; i < width; i++ {
		bitPos := offset + uint64(i)
		wi := bitPos / word.Bits
		bi := bitPos % word.Bits
		bit := (value >> uint(i)) & 1
		if bit != 0 {
			words[wi] |= word.Word(1) << bi
		} else {
			words[wi] &^= word.Word(1) << bi
		}
	}
}
