// Package bnerr defines the sentinel error values shared by every bignum
// package. Call sites wrap these with fmt.Errorf("...: %w", ...) so callers
// can classify failures with errors.Is while still getting a useful message.
package bnerr

import "errors"

var (
	// ErrParse is returned by constructors from string when the input does
	// not match the decimal grammar (optional '-', then digits, no leading
	// zeros except the literal "0").
	ErrParse = errors.New("bignum: invalid decimal string")

	// ErrDivisionByZero is returned by /, %, DivBySmall and Div when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrDomain is returned by Isqrt on a negative operand.
	ErrDomain = errors.New("bignum: domain error")

	// ErrUnderflow is returned internally by decstr.Sub when the minuend is
	// smaller than the subtrahend. Public arithmetic never exposes this:
	// decstr.Div is the only caller of Sub and consumes the error itself as
	// the end of its trial subtractions.
	ErrUnderflow = errors.New("bignum: decimal subtraction underflow")

	// ErrOverflow is returned by explicit conversion to a native integer
	// type when the value does not fit.
	ErrOverflow = errors.New("bignum: value overflows destination type")

	// ErrOutOfRange is returned by the factorial codec when a coefficient
	// index exceeds MAXINDEX.
	ErrOutOfRange = errors.New("bignum: factorial coefficient index out of range")

	// ErrInvalidCoefficient is returned by the factorial codec's Put when
	// value > index, violating the mixed-radix bound 0 <= d_i <= i.
	ErrInvalidCoefficient = errors.New("bignum: factorial coefficient exceeds its radix")

	// ErrBorrow marks the degenerate internal state described in spec §9:
	// a factorial magnitude subtraction where the minuend is smaller than
	// the subtrahend leaves a residual borrow past the top coefficient.
	// The public operator scaffolding never takes this path.
	ErrBorrow = errors.New("bignum: residual borrow in factorial subtraction")
)
