// Package bignum provides an arbitrary-precision signed integer, Int, that
// can be backed by either of two interchangeable representations: a binary
// base-2^W word vector (pkg/binary) or a factorial mixed-radix bit-packed
// coefficient sequence (pkg/factorial). Go has no operator overloading, so
// the +, -, *, /, %, ++, --, and comparison operators spec.md describes are
// exposed as named methods, mirroring the style of math/big.Int.
package bignum

import (
	"fmt"

	"github.com/oisee/bignum/pkg/binary"
	"github.com/oisee/bignum/pkg/factorial"
)

// Representation selects which concrete kernel backs an Int.
type Representation int

const (
	// RepBinary stores the magnitude as base-2^W words (pkg/binary).
	RepBinary Representation = iota
	// RepFactorial stores the magnitude as factorial-base bit-packed
	// coefficients (pkg/factorial).
	RepFactorial
)

func (r Representation) String() string {
	switch r {
	case RepBinary:
		return "binary"
	case RepFactorial:
		return "factorial"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Int is an arbitrary-precision signed integer backed by one Form. Two Ints
// built from different Representations cannot be combined directly; callers
// that need to compare or mix values across representations must convert
// one of them first (e.g. via String/FromString).
type Int struct {
	form Form
}

// Rep reports which Representation backs x.
func (x Int) Rep() Representation {
	switch x.form.(type) {
	case factorialForm:
		return RepFactorial
	default:
		return RepBinary
	}
}

// Zero returns the additive identity in the given representation.
func Zero(rep Representation) Int {
	switch rep {
	case RepFactorial:
		return Int{form: factorialForm{factorial.Zero()}}
	default:
		return Int{form: binaryForm{binary.Zero()}}
	}
}

// FromString parses a decimal string into an Int of the given
// representation. It fails with bnerr.ErrParse on malformed input.
func FromString(rep Representation, s string) (Int, error) {
	switch rep {
	case RepFactorial:
		v, err := factorial.FromString(s)
		if err != nil {
			return Int{}, err
		}
		return Int{form: factorialForm{v}}, nil
	default:
		v, err := binary.FromString(s)
		if err != nil {
			return Int{}, err
		}
		return Int{form: binaryForm{v}}, nil
	}
}

// FromInt64 constructs an Int from a native signed integer.
func FromInt64(rep Representation, n int64) Int {
	switch rep {
	case RepFactorial:
		return Int{form: factorialForm{factorial.FromInt64(n)}}
	default:
		return Int{form: binaryForm{binary.FromInt64(n)}}
	}
}

// FromUint64 constructs an Int from a native unsigned integer.
func FromUint64(rep Representation, n uint64) Int {
	switch rep {
	case RepFactorial:
		return Int{form: factorialForm{factorial.FromUint64(n)}}
	default:
		return Int{form: binaryForm{binary.FromUint64(n)}}
	}
}

// String formats x as a decimal string.
func (x Int) String() string { return x.form.String() }

// Sign reports whether x is negative.
func (x Int) Sign() bool { return x.form.Sign() }

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.form.IsZero() }

// Uint64 returns x as a uint64, failing with bnerr.ErrOverflow if it does
// not fit.
func (x Int) Uint64() (uint64, error) { return x.form.Uint64() }

// Int64 returns x as an int64, failing with bnerr.ErrOverflow if it does
// not fit.
func (x Int) Int64() (int64, error) { return x.form.Int64() }

// Cmp returns -1, 0, or 1 as x < y, x == y, or x > y. It panics if x and y
// are backed by different representations.
func (x Int) Cmp(y Int) int { return cmpForm(x.form, y.form) }

// Add returns x+y. It panics if x and y are backed by different
// representations.
func (x Int) Add(y Int) Int { return Int{form: addForm(x.form, y.form)} }

// Sub returns x-y.
func (x Int) Sub(y Int) Int { return Int{form: subForm(x.form, y.form)} }

// Mul returns x*y.
func (x Int) Mul(y Int) Int { return Int{form: mulForm(x.form, y.form)} }

// Div returns the truncating quotient x/y. It fails with
// bnerr.ErrDivisionByZero if y is zero.
func (x Int) Div(y Int) (Int, error) {
	f, err := divForm(x.form, y.form)
	if err != nil {
		return Int{}, err
	}
	return Int{form: f}, nil
}

// Mod returns the remainder of truncating division x/y, carrying x's sign.
// It fails with bnerr.ErrDivisionByZero if y is zero.
func (x Int) Mod(y Int) (Int, error) {
	f, err := modForm(x.form, y.form)
	if err != nil {
		return Int{}, err
	}
	return Int{form: f}, nil
}

// Neg returns -x.
func (x Int) Neg() Int { return Int{form: negForm(x.form)} }

// Abs returns |x|.
func (x Int) Abs() Int { return Int{form: absForm(x.form)} }

// Inc returns x+1.
func (x Int) Inc() Int { return Int{form: incForm(x.form)} }

// Dec returns x-1.
func (x Int) Dec() Int { return Int{form: decForm(x.form)} }

// ToString formats x as a decimal string. It is the free-function form of
// x.String(), provided alongside the Int methods per spec.md §6.
func ToString(x Int) string { return x.String() }

// Pow returns base raised to the non-negative integer power exp. It fails
// with bnerr.ErrDomain if exp is negative, and panics if base and exp are
// backed by different representations.
func Pow(base, exp Int) (Int, error) {
	f, err := powForm(base.form, exp.form)
	if err != nil {
		return Int{}, err
	}
	return Int{form: f}, nil
}

// Isqrt returns the integer (floor) square root of x. It fails with
// bnerr.ErrDomain if x is negative.
func Isqrt(x Int) (Int, error) {
	f, err := isqrtForm(x.form)
	if err != nil {
		return Int{}, err
	}
	return Int{form: f}, nil
}
