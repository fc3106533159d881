// Package factorial implements the factorial-representation arithmetic
// kernel: a variable-width bit-packed sequence of coefficients d_i such
// that N = Σ d_i·i!, addressed through the codec in codec.go.
package factorial

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/decstr"
	"github.com/oisee/bignum/pkg/storage"
	"github.com/oisee/bignum/pkg/word"
)

// Value is one arbitrary-precision signed integer in factorial
// representation.
type Value struct {
	s storage.Storage
}

// Zero returns the canonical factorial representation of zero: no
// populated coefficients.
func Zero() Value {
	return Value{s: storage.Storage{Words: []word.Word{0}}}
}

// FromString parses a decimal string into a factorial Value. It fails with
// bnerr.ErrParse on malformed input.
//
// Parsing repeatedly divides the decimal string by successive small
// integers 1, 2, 3, … (spec.md §4.5): at step i the remainder of dividing
// by i+1 becomes coefficient d_i, since position i's mixed-radix base is
// i+1 and a remainder mod (i+1) always lands in 0..i, satisfying the
// coefficient bound enforced by Put.
func FromString(s string) (Value, error) {
	if !decstr.IsValidIntegral(s) {
		return Value{}, fmt.Errorf("factorial.FromString(%q): %w", s, bnerr.ErrParse)
	}
	neg := false
	remaining := s
	if s[0] == '-' {
		neg = true
		remaining = s[1:]
	}

	st := storage.Storage{Words: []word.Word{0}}
	idx := uint64(0)
	for remaining != "0" {
		q, r, err := decstr.DivBySmall(remaining, idx+1)
		if err != nil {
			return Value{}, err
		}
		mustPut(&st, idx, r)
		remaining = q
		idx++
	}

	v := Value{s: st}
	v.s.Sign = neg && !v.IsZero()
	return v, nil
}

// FromUint64 constructs a factorial Value from a native unsigned integer.
func FromUint64(n uint64) Value {
	v, _ := FromString(strconv.FormatUint(n, 10))
	return v
}

// FromInt64 constructs a factorial Value from a native signed integer.
func FromInt64(n int64) Value {
	v, _ := FromString(strconv.FormatInt(n, 10))
	return v
}

// absString computes Σ d_i·i! as an unsigned decimal string by maintaining
// two running decimal strings: factorial (initially "1" = 0!, holding i!
// at the start of iteration i, then multiplied by i+1 to become (i+1)! for
// the next iteration) and sum (spec.md §4.5). The scan is bounded by Aux
// rather than by Extract returning absent, per the performance note in
// spec.md §9.
func (v Value) absString() string {
	sum := "0"
	factorial := "1"
	for i := uint64(0); i <= v.s.Aux; i++ {
		d, _, _ := Extract(v.s, i)
		if d != 0 {
			sum = decstr.Add(sum, decstr.Mul(factorial, strconv.FormatUint(d, 10)))
		}
		factorial = decstr.Mul(factorial, strconv.FormatUint(i+1, 10))
	}
	return sum
}

// String formats v as a decimal string.
func (v Value) String() string {
	sum := v.absString()
	if v.s.Sign && sum != "0" {
		return "-" + sum
	}
	return sum
}

// Sign reports whether v is negative.
func (v Value) Sign() bool { return v.s.Sign }

// IsZero reports whether every populated coefficient (bounded by Aux, per
// spec.md §9's performance note) is zero.
func (v Value) IsZero() bool {
	for i := uint64(0); i <= v.s.Aux; i++ {
		d, _, _ := Extract(v.s, i)
		if d != 0 {
			return false
		}
	}
	return true
}

// WithSign returns a copy of v with the sign forced to neg, except that the
// canonical zero is always positive regardless of neg.
func (v Value) WithSign(neg bool) Value {
	out := v.s.Clone()
	out.Sign = neg
	cp := Value{s: out}
	if cp.IsZero() {
		cp.s.Sign = false
	}
	return cp
}

// NewUint64 is a type-preserving factory mirroring binary.Value.NewUint64.
func (Value) NewUint64(n uint64) Value { return FromUint64(n) }

// magnitudeUint64 reconstructs |v| as a uint64 via Horner-style
// accumulation over the coefficients from the highest populated index down
// to zero, checking for overflow at each multiply and add (spec.md §4.7).
// Place value i attaches weight i! (verified against the format algorithm
// in spec.md §4.5), so letting P_i = Σ_{j=i}^{K} d_j·(j!/i!):
// P_i = (i+1)·P_{i+1} + d_i, P_K = d_K, and N = P_0. Hence
// V = d_K; for i = K-1 downto 0: V = V*(i+1) + d_i.
func (v Value) magnitudeUint64() (uint64, error) {
	if v.IsZero() {
		return 0, nil
	}
	k := v.s.Aux
	acc, _, _ := Extract(v.s, k)
	for i := int64(k) - 1; i >= 0; i-- {
		mult := uint64(i + 1)
		hi, lo := bits.Mul64(acc, mult)
		if hi != 0 {
			return 0, fmt.Errorf("factorial.Value: %w", bnerr.ErrOverflow)
		}
		d, _, _ := Extract(v.s, uint64(i))
		sum := lo + d
		if sum < lo {
			return 0, fmt.Errorf("factorial.Value: %w", bnerr.ErrOverflow)
		}
		acc = sum
	}
	return acc, nil
}

// Uint64 returns v's magnitude as a uint64, failing with bnerr.ErrOverflow
// if v is negative or does not fit.
func (v Value) Uint64() (uint64, error) {
	if v.s.Sign {
		return 0, fmt.Errorf("factorial.Value.Uint64(): %w", bnerr.ErrOverflow)
	}
	return v.magnitudeUint64()
}

// Int64 returns v as an int64, failing with bnerr.ErrOverflow if it does
// not fit.
func (v Value) Int64() (int64, error) {
	mag, err := v.magnitudeUint64()
	if err != nil {
		return 0, fmt.Errorf("factorial.Value.Int64(): %w", bnerr.ErrOverflow)
	}
	if v.s.Sign {
		if mag > 1<<63 {
			return 0, fmt.Errorf("factorial.Value.Int64(): %w", bnerr.ErrOverflow)
		}
		return -int64(mag), nil
	}
	if mag > 1<<63-1 {
		return 0, fmt.Errorf("factorial.Value.Int64(): %w", bnerr.ErrOverflow)
	}
	return int64(mag), nil
}

// CompareMagnitude compares |v| to |other| by scanning coefficients from
// the highest populated index on either side down to zero; the first
// differing coefficient decides (spec.md §4.5).
func (v Value) CompareMagnitude(other Value) int {
	top := v.s.Aux
	if other.s.Aux > top {
		top = other.s.Aux
	}
	for i := int64(top); i >= 0; i-- {
		da, _, _ := Extract(v.s, uint64(i))
		db, _, _ := Extract(other.s, uint64(i))
		if da != db {
			if da > db {
				return 1
			}
			return -1
		}
	}
	return 0
}

// mustPut calls Put and panics if it fails. Every call site in this file
// first establishes, from the surrounding arithmetic, that value is within
// the mixed-radix bound for index; a failure here means that invariant was
// violated, not a condition a caller can recover from.
func mustPut(s *storage.Storage, index, value uint64) {
	if err := Put(s, index, value); err != nil {
		panic(fmt.Sprintf("factorial: internal Put(%d, %d) invariant violated: %v", index, value, err))
	}
}
