// Package decstr implements validation and schoolbook arithmetic on
// sign-free, leading-zero-free decimal strings. It is the base-conversion
// and reference-arithmetic backbone shared by both the binary and factorial
// kernels: the binary kernel repeatedly divides by a small constant to parse,
// and the factorial kernel uses it both to parse/format and as the
// multiply/divide fallback.
package decstr

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bnerr"
)

// IsValidIntegral reports whether s is an optional leading '-' followed by
// one or more decimal digits, with no leading zero in a multi-digit run
// (including immediately after a '-'). The literal "0" is the only string
// allowed to start with a zero.
func IsValidIntegral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	return true
}

// Ge reports whether unsigned decimal string a is greater than or equal to
// unsigned decimal string b: compare by length first, then lexicographically
// (both are leading-zero free, so longer always means larger).
func Ge(a, b string) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a >= b
}

// trimMode selects which end of a little-endian digit slice TrimZeros trims.
type trimMode int

const (
	// TrimLeading removes zeros from the high-order end of the number,
	// i.e. the tail of a little-endian digit slice.
	TrimLeading trimMode = iota
	// TrimTrailing removes zeros from the low-order end of the number,
	// i.e. the head of a little-endian digit slice.
	TrimTrailing
)

// trimZerosLE trims zero digits from one end of a little-endian digit slice
// (index 0 is the least-significant digit, values 0-9). If the result would
// be empty it restores a single zero digit, matching spec's "restore a
// single zero element" rule.
func trimZerosLE(d []byte, mode trimMode) []byte {
	switch mode {
	case TrimLeading:
		n := len(d)
		for n > 1 && d[n-1] == 0 {
			n--
		}
		return d[:n]
	default:
		i := 0
		for i < len(d)-1 && d[i] == 0 {
			i++
		}
		return d[i:]
	}
}

// toDigitsLE converts a normalized, sign-free decimal string into a
// little-endian slice of digit values 0-9.
func toDigitsLE(s string) []byte {
	d := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		d[len(s)-1-i] = s[i] - '0'
	}
	return d
}

// fromDigitsLE converts a little-endian digit slice back into a normalized
// decimal string, trimming high-order zeros first.
func fromDigitsLE(d []byte) string {
	d = trimZerosLE(d, TrimLeading)
	out := make([]byte, len(d))
	for i, v := range d {
		out[len(d)-1-i] = v + '0'
	}
	return string(out)
}

// Add returns the decimal sum of two sign-free decimal strings.
func Add(a, b string) string {
	da, db := toDigitsLE(a), toDigitsLE(b)
	n := len(da)
	if len(db) > n {
		n = len(db)
	}
	out := make([]byte, n+1)
	var carry byte
	for i := 0; i < n; i++ {
		var x, y byte
		if i < len(da) {
			x = da[i]
		}
		if i < len(db) {
			y = db[i]
		}
		s := x + y + carry
		if s >= 10 {
			s -= 10
			carry = 1
		} else {
			carry = 0
		}
		out[i] = s
	}
	out[n] = carry
	return fromDigitsLE(out)
}

// Sub returns the decimal difference a-b of two sign-free decimal strings.
// It requires a >= b and fails with bnerr.ErrUnderflow otherwise. Within this
// module only Div calls it, and Div uses that failure to detect that a trial
// subtraction no longer fits.
func Sub(a, b string) (string, error) {
	if !Ge(a, b) {
		return "", fmt.Errorf("decstr.Sub(%q, %q): %w", a, b, bnerr.ErrUnderflow)
	}
	da, db := toDigitsLE(a), toDigitsLE(b)
	out := make([]byte, len(da))
	var borrow byte
	for i := range da {
		var y byte
		if i < len(db) {
			y = db[i]
		}
		x := da[i]
		if x < y+borrow {
			out[i] = x + 10 - y - borrow
			borrow = 1
		} else {
			out[i] = x - y - borrow
			borrow = 0
		}
	}
	return fromDigitsLE(out), nil
}

// Mul returns the decimal product of two sign-free decimal strings.
func Mul(a, b string) string {
	if a == "0" || b == "0" {
		return "0"
	}
	da, db := toDigitsLE(a), toDigitsLE(b)
	out := make([]byte, len(da)+len(db))
	for i, x := range da {
		if x == 0 {
			continue
		}
		var carry byte
		for j, y := range db {
			p := uint16(out[i+j]) + uint16(x)*uint16(y) + uint16(carry)
			out[i+j] = byte(p % 10)
			carry = byte(p / 10)
		}
		k := i + len(db)
		for carry != 0 {
			p := uint16(out[k]) + uint16(carry)
			out[k] = byte(p % 10)
			carry = byte(p / 10)
			k++
		}
	}
	return fromDigitsLE(out)
}

// DivBySmall divides decimal string a by a small positive integer k,
// returning the decimal quotient and the remainder as a uint64. It fails
// with bnerr.ErrDivisionByZero if k is zero.
func DivBySmall(a string, k uint64) (quotient string, remainder uint64, err error) {
	if k == 0 {
		return "", 0, fmt.Errorf("decstr.DivBySmall(%q, 0): %w", a, bnerr.ErrDivisionByZero)
	}
	q := make([]byte, len(a))
	var rem uint64
	for i := 0; i < len(a); i++ {
		rem = rem*10 + uint64(a[i]-'0')
		q[i] = byte(rem / k)
		rem %= k
	}
	return fromDigitsBE(q), rem, nil
}

// Div performs school long division of sign-free decimal strings a/b,
// returning normalized quotient and remainder. It fails with
// bnerr.ErrDivisionByZero if b is "0". If a < b the result is ("0", a).
func Div(a, b string) (quotient, remainder string, err error) {
	if b == "0" {
		return "", "", fmt.Errorf("decstr.Div(%q, %q): %w", a, b, bnerr.ErrDivisionByZero)
	}
	if !Ge(a, b) {
		return "0", a, nil
	}
	digitsOut := make([]byte, len(a))
	rem := "0"
	for i := 0; i < len(a); i++ {
		rem = appendDigit(rem, a[i]-'0')
		// Find the largest digit in 0-9 such that digit*b <= rem via
		// repeated subtraction (at most 9 trial subtractions per position).
		var d byte
		for {
			trial, subErr := Sub(rem, b)
			if subErr != nil {
				break
			}
			rem = trial
			d++
		}
		digitsOut[i] = d
	}
	return fromDigitsBE(digitsOut), rem, nil
}

// appendDigit appends a single decimal digit (0-9) to the low-order end of
// a normalized decimal string, i.e. computes s*10+digit.
func appendDigit(s string, digit byte) string {
	if s == "0" {
		if digit == 0 {
			return "0"
		}
		return string([]byte{digit + '0'})
	}
	return s + string([]byte{digit + '0'})
}

// fromDigitsBE converts a big-endian (most significant first) slice of
// digit values 0-9 into a normalized decimal string, trimming leading zeros.
func fromDigitsBE(d []byte) string {
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	out := make([]byte, len(d)-i)
	for j, v := range d[i:] {
		out[j] = v + '0'
	}
	return string(out)
}
