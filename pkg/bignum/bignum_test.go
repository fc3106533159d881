package bignum

import (
	"errors"
	"testing"

	"github.com/oisee/bignum/pkg/bnerr"
)

var allReps = []Representation{RepBinary, RepFactorial}

func mustInt(t *testing.T, rep Representation, s string) Int {
	t.Helper()
	v, err := FromString(rep, s)
	if err != nil {
		t.Fatalf("FromString(%v, %q) returned error: %v", rep, s, err)
	}
	return v
}

func TestRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "10", "3628800", "123456789012345678901234567890", "-42"}
	for _, rep := range allReps {
		for _, s := range values {
			v := mustInt(t, rep, s)
			if got := v.String(); got != s {
				t.Errorf("[%v] FromString(%q).String() = %q, want %q", rep, s, got, s)
			}
		}
	}
}

func TestAddSubRingAxioms(t *testing.T) {
	for _, rep := range allReps {
		a := mustInt(t, rep, "123456789012345678901234567890")
		b := mustInt(t, rep, "98765432109876543210987654321")
		sum := a.Add(b)
		if got := sum.Sub(b).String(); got != a.String() {
			t.Errorf("[%v] (a+b)-b = %q, want %q", rep, got, a.String())
		}
		if got := a.Add(b).String(); got != b.Add(a).String() {
			t.Errorf("[%v] addition is not commutative: %q vs %q", rep, got, b.Add(a).String())
		}
		zero := Zero(rep)
		if got := a.Add(zero).String(); got != a.String() {
			t.Errorf("[%v] a+0 = %q, want %q", rep, got, a.String())
		}
		if got := a.Add(a.Neg()).String(); got != "0" {
			t.Errorf("[%v] a+(-a) = %q, want 0", rep, got)
		}
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	for _, rep := range allReps {
		a := mustInt(t, rep, "123456789")
		b := mustInt(t, rep, "987654321")
		c := mustInt(t, rep, "-42")
		lhs := a.Mul(b.Add(c)).String()
		rhs := a.Mul(b).Add(a.Mul(c)).String()
		if lhs != rhs {
			t.Errorf("[%v] a*(b+c) = %q, want a*b+a*c = %q", rep, lhs, rhs)
		}
	}
}

func TestDivModIdentity(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"65550", "3"},
		{"21850", "4"},
		{"5", "10"},
		{"-17", "5"},
		{"17", "-5"},
		{"-17", "-5"},
	}
	for _, rep := range allReps {
		for _, p := range pairs {
			a := mustInt(t, rep, p.a)
			b := mustInt(t, rep, p.b)
			q, err := a.Div(b)
			if err != nil {
				t.Fatalf("[%v] Div(%s, %s) returned error: %v", rep, p.a, p.b, err)
			}
			r, err := a.Mod(b)
			if err != nil {
				t.Fatalf("[%v] Mod(%s, %s) returned error: %v", rep, p.a, p.b, err)
			}
			recon := q.Mul(b).Add(r)
			if recon.String() != a.String() {
				t.Errorf("[%v] (a/b)*b+a%%b = %q, want %q (a=%s, b=%s)", rep, recon.String(), a.String(), p.a, p.b)
			}
			if r.Sign() != a.Sign() && !r.IsZero() {
				t.Errorf("[%v] Mod(%s, %s) sign = %v, want dividend's sign %v", rep, p.a, p.b, r.Sign(), a.Sign())
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, rep := range allReps {
		a := FromUint64(rep, 5)
		zero := Zero(rep)
		if _, err := a.Div(zero); !errors.Is(err, bnerr.ErrDivisionByZero) {
			t.Errorf("[%v] Div by zero error = %v, want ErrDivisionByZero", rep, err)
		}
		if _, err := a.Mod(zero); !errors.Is(err, bnerr.ErrDivisionByZero) {
			t.Errorf("[%v] Mod by zero error = %v, want ErrDivisionByZero", rep, err)
		}
	}
}

func TestParseError(t *testing.T) {
	for _, rep := range allReps {
		if _, err := FromString(rep, "12a3"); !errors.Is(err, bnerr.ErrParse) {
			t.Errorf("[%v] FromString(\"12a3\") error = %v, want ErrParse", rep, err)
		}
	}
}

func TestCmp(t *testing.T) {
	for _, rep := range allReps {
		a := mustInt(t, rep, "100")
		b := mustInt(t, rep, "99")
		neg := mustInt(t, rep, "-100")
		if a.Cmp(b) <= 0 {
			t.Errorf("[%v] 100 should compare greater than 99", rep)
		}
		if b.Cmp(a) >= 0 {
			t.Errorf("[%v] 99 should compare less than 100", rep)
		}
		if a.Cmp(a) != 0 {
			t.Errorf("[%v] value should compare equal to itself", rep)
		}
		if neg.Cmp(a) >= 0 {
			t.Errorf("[%v] -100 should compare less than 100", rep)
		}
	}
}

func TestIncDec(t *testing.T) {
	for _, rep := range allReps {
		a := mustInt(t, rep, "9")
		if got := a.Inc().String(); got != "10" {
			t.Errorf("[%v] Inc(9) = %q, want 10", rep, got)
		}
		if got := a.Dec().String(); got != "8" {
			t.Errorf("[%v] Dec(9) = %q, want 8", rep, got)
		}
	}
}

func TestPow(t *testing.T) {
	for _, rep := range allReps {
		base := FromUint64(rep, 2)
		exp := FromUint64(rep, 10)
		got, err := Pow(base, exp)
		if err != nil {
			t.Fatalf("[%v] Pow(2, 10) returned error: %v", rep, err)
		}
		if got.String() != "1024" {
			t.Errorf("[%v] Pow(2, 10) = %q, want 1024", rep, got.String())
		}

		anyBase := FromUint64(rep, 5)
		zeroExp := Zero(rep)
		got, err = Pow(anyBase, zeroExp)
		if err != nil || got.String() != "1" {
			t.Errorf("[%v] Pow(5, 0) = %q, err=%v, want 1", rep, got.String(), err)
		}

		negExp := FromInt64(rep, -1)
		if _, err := Pow(base, negExp); !errors.Is(err, bnerr.ErrDomain) {
			t.Errorf("[%v] Pow with negative exponent error = %v, want ErrDomain", rep, err)
		}
	}
}

func TestIsqrt(t *testing.T) {
	for _, rep := range allReps {
		tests := []struct {
			n, want string
		}{
			{"0", "0"},
			{"1", "1"},
			{"3", "1"},
			{"4", "2"},
			{"8", "2"},
			{"9", "3"},
			{"15241578750190521", "123456789"}, // 123456789^2
			{
				"12345678901234567890123456789012345678900000000000000000000000000000000000000000000000000000000000000",
				"111111110611111109936111105818611081081542864454310",
			},
		}
		for _, tt := range tests {
			x := mustInt(t, rep, tt.n)
			got, err := Isqrt(x)
			if err != nil {
				t.Fatalf("[%v] Isqrt(%s) returned error: %v", rep, tt.n, err)
			}
			if got.String() != tt.want {
				t.Errorf("[%v] Isqrt(%s) = %q, want %q", rep, tt.n, got.String(), tt.want)
			}
		}

		negOne := FromInt64(rep, -1)
		if _, err := Isqrt(negOne); !errors.Is(err, bnerr.ErrDomain) {
			t.Errorf("[%v] Isqrt(-1) error = %v, want ErrDomain", rep, err)
		}
	}
}

func TestCrossFormAgreement(t *testing.T) {
	// The same decimal value, in either representation, must format back
	// to the identical decimal string (spec.md §8).
	values := []string{"0", "1", "3628800", "-987654321", "123456789012345678901234567890"}
	for _, s := range values {
		bin := mustInt(t, RepBinary, s)
		fac := mustInt(t, RepFactorial, s)
		if bin.String() != fac.String() {
			t.Errorf("binary and factorial disagree on %q: %q vs %q", s, bin.String(), fac.String())
		}
	}
}

func TestMixedRepresentationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("combining Ints of different representations should panic")
		}
	}()
	a := FromUint64(RepBinary, 1)
	b := FromUint64(RepFactorial, 1)
	a.Add(b)
}
