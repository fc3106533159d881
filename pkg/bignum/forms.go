package bignum

import (
	"github.com/oisee/bignum/pkg/binary"
	"github.com/oisee/bignum/pkg/factorial"
)

// binaryForm and factorialForm adapt binary.Value and factorial.Value to
// the Form interface. Both concrete types already expose every method Form
// needs with matching names, but Go requires an interface method's
// parameter and return types to match exactly — a method taking or
// returning binary.Value does not satisfy an interface method declared with
// Form, so binary.Value itself does not implement Form. These adapters
// exist purely to re-box each
// concrete result as a Form at the boundary; neither type carries any
// behavior of its own.
type binaryForm struct{ v binary.Value }
type factorialForm struct{ v factorial.Value }

func (f binaryForm) String() string          { return f.v.String() }
func (f binaryForm) Sign() bool              { return f.v.Sign() }
func (f binaryForm) IsZero() bool            { return f.v.IsZero() }
func (f binaryForm) WithSign(neg bool) Form  { return binaryForm{f.v.WithSign(neg)} }
func (f binaryForm) NewUint64(n uint64) Form { return binaryForm{f.v.NewUint64(n)} }
func (f binaryForm) Uint64() (uint64, error) { return f.v.Uint64() }
func (f binaryForm) Int64() (int64, error)   { return f.v.Int64() }

func (f binaryForm) CompareMagnitude(other Form) int {
	return f.v.CompareMagnitude(other.(binaryForm).v)
}

func (f binaryForm) AddMagnitude(other Form) Form {
	return binaryForm{f.v.AddMagnitude(other.(binaryForm).v)}
}

func (f binaryForm) SubMagnitude(other Form) Form {
	return binaryForm{f.v.SubMagnitude(other.(binaryForm).v)}
}

func (f binaryForm) MulMagnitude(other Form) Form {
	return binaryForm{f.v.MulMagnitude(other.(binaryForm).v)}
}

func (f binaryForm) DivMagnitude(other Form) (quotient, remainder Form, err error) {
	q, r, err := f.v.DivMagnitude(other.(binaryForm).v)
	if err != nil {
		return nil, nil, err
	}
	return binaryForm{q}, binaryForm{r}, nil
}

func (f factorialForm) String() string          { return f.v.String() }
func (f factorialForm) Sign() bool              { return f.v.Sign() }
func (f factorialForm) IsZero() bool            { return f.v.IsZero() }
func (f factorialForm) WithSign(neg bool) Form  { return factorialForm{f.v.WithSign(neg)} }
func (f factorialForm) NewUint64(n uint64) Form { return factorialForm{f.v.NewUint64(n)} }
func (f factorialForm) Uint64() (uint64, error) { return f.v.Uint64() }
func (f factorialForm) Int64() (int64, error)   { return f.v.Int64() }

func (f factorialForm) CompareMagnitude(other Form) int {
	return f.v.CompareMagnitude(other.(factorialForm).v)
}

func (f factorialForm) AddMagnitude(other Form) Form {
	return factorialForm{f.v.AddMagnitude(other.(factorialForm).v)}
}

func (f factorialForm) SubMagnitude(other Form) Form {
	return factorialForm{f.v.SubMagnitude(other.(factorialForm).v)}
}

func (f factorialForm) MulMagnitude(other Form) Form {
	return factorialForm{f.v.MulMagnitude(other.(factorialForm).v)}
}

func (f factorialForm) DivMagnitude(other Form) (quotient, remainder Form, err error) {
	q, r, err := f.v.DivMagnitude(other.(factorialForm).v)
	if err != nil {
		return nil, nil, err
	}
	return factorialForm{q}, factorialForm{r}, nil
}
