package bignum

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bnerr"
)

// Form is the magnitude-only contract both representations (pkg/binary's
// Value and pkg/factorial's Value) satisfy structurally, once adapted by
// binaryForm/factorialForm in forms.go. The *Magnitude methods ignore any
// sign carried by the receiver or argument; sign handling for arithmetic
// lives once, in this file, on top of Form (spec.md §4.6). The corpus this
// module was built against never uses Go generics, so the "same operator
// logic over either representation" requirement is met with a plain
// interface instead, duck-typed independently by each adapter.
type Form interface {
	fmt.Stringer

	Sign() bool
	IsZero() bool
	WithSign(neg bool) Form
	NewUint64(n uint64) Form

	Uint64() (uint64, error)
	Int64() (int64, error)

	CompareMagnitude(other Form) int
	AddMagnitude(other Form) Form
	SubMagnitude(other Form) Form
	MulMagnitude(other Form) Form
	DivMagnitude(other Form) (quotient, remainder Form, err error)
}

// requireSameForm panics if a and b are not the same concrete
// representation. The public Int façade in bignum.go guarantees this by
// construction, so the only way to trip this is to mix a binary-backed and
// a factorial-backed Int in one operation.
func requireSameForm(a, b Form) {
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		panic(fmt.Sprintf("bignum: mixed representations: %T and %T", a, b))
	}
}

// cmpForm returns -1, 0, or 1 as a < b, a == b, or a > b, ordering by sign
// first and falling back to CompareMagnitude (with the comparison inverted
// when both operands are negative) otherwise (spec.md §4.6).
func cmpForm(a, b Form) int {
	requireSameForm(a, b)
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.Sign() != b.Sign() {
		if a.Sign() {
			return -1
		}
		return 1
	}
	c := a.CompareMagnitude(b)
	if a.Sign() {
		return -c
	}
	return c
}

// addForm returns a+b, dispatching to magnitude addition or subtraction
// depending on whether the operands' signs agree (spec.md §4.6).
func addForm(a, b Form) Form {
	requireSameForm(a, b)
	if a.Sign() == b.Sign() {
		return a.AddMagnitude(b).WithSign(a.Sign())
	}
	if a.CompareMagnitude(b) >= 0 {
		return a.SubMagnitude(b).WithSign(a.Sign())
	}
	return b.SubMagnitude(a).WithSign(b.Sign())
}

// subForm returns a-b.
func subForm(a, b Form) Form {
	requireSameForm(a, b)
	return addForm(a, negForm(b))
}

// negForm returns -a. Zero's negation is zero, per WithSign's own invariant.
func negForm(a Form) Form {
	return a.WithSign(!a.Sign())
}

// absForm returns |a|.
func absForm(a Form) Form {
	return a.WithSign(false)
}

// mulForm returns a*b. The result's sign is the XOR of the operands' signs
// (spec.md §4.6).
func mulForm(a, b Form) Form {
	requireSameForm(a, b)
	product := a.MulMagnitude(b)
	return product.WithSign(a.Sign() != b.Sign())
}

// divForm returns the truncating quotient a/b: magnitude division with the
// XOR sign rule, same as mulForm. It fails with bnerr.ErrDivisionByZero if
// b is zero (spec.md §4.6).
func divForm(a, b Form) (Form, error) {
	requireSameForm(a, b)
	q, _, err := a.DivMagnitude(b)
	if err != nil {
		return nil, fmt.Errorf("bignum: %w", err)
	}
	return q.WithSign(a.Sign() != b.Sign()), nil
}

// modForm returns the remainder of truncating division a/b, carrying the
// dividend's sign (spec.md §4.6: "remainder takes the dividend's sign"). It
// fails with bnerr.ErrDivisionByZero if b is zero.
func modForm(a, b Form) (Form, error) {
	requireSameForm(a, b)
	_, r, err := a.DivMagnitude(b)
	if err != nil {
		return nil, fmt.Errorf("bignum: %w", err)
	}
	return r.WithSign(a.Sign()), nil
}

// incForm returns a+1.
func incForm(a Form) Form {
	return addForm(a, a.NewUint64(1))
}

// decForm returns a-1.
func decForm(a Form) Form {
	return subForm(a, a.NewUint64(1))
}

// powForm returns base raised to the non-negative integer exponent exp, by
// repeated squaring. It fails with bnerr.ErrDomain if exp is negative
// (spec.md §4.6).
func powForm(base, exp Form) (Form, error) {
	requireSameForm(base, exp)
	if exp.Sign() {
		return nil, fmt.Errorf("bignum.Pow: negative exponent: %w", bnerr.ErrDomain)
	}
	result := base.NewUint64(1)
	b := base
	e := exp
	zero := exp.NewUint64(0)
	two := exp.NewUint64(2)
	for cmpForm(e, zero) > 0 {
		q, r, err := e.DivMagnitude(two)
		if err != nil {
			return nil, fmt.Errorf("bignum.Pow: %w", err)
		}
		if !r.IsZero() {
			result = mulForm(result, b)
		}
		b = mulForm(b, b)
		e = q
	}
	return result, nil
}

// isqrtForm returns the integer (floor) square root of a non-negative a via
// binary search over candidates, doubling the upper bound until it
// overshoots and then bisecting (spec.md §4.6). It fails with
// bnerr.ErrDomain if a is negative.
func isqrtForm(a Form) (Form, error) {
	if a.Sign() {
		return nil, fmt.Errorf("bignum.Isqrt: %w", bnerr.ErrDomain)
	}
	if a.IsZero() {
		return a.NewUint64(0), nil
	}

	lo := a.NewUint64(0)
	hi := a.NewUint64(1)
	for squareLE(hi, a) {
		hi = mulForm(hi, a.NewUint64(2))
	}

	one := a.NewUint64(1)
	for cmpForm(addForm(lo, one), hi) < 0 {
		mid, err := midpoint(lo, hi)
		if err != nil {
			return nil, err
		}
		if squareLE(mid, a) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// squareLE reports whether n*n <= a.
func squareLE(n, a Form) bool {
	return cmpForm(mulForm(n, n), a) <= 0
}

// midpoint returns floor((lo+hi)/2).
func midpoint(lo, hi Form) (Form, error) {
	return divForm(addForm(lo, hi), lo.NewUint64(2))
}
