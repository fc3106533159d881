package factorial

import (
	"fmt"

	"github.com/oisee/bignum/pkg/bnerr"
	"github.com/oisee/bignum/pkg/decstr"
	"github.com/oisee/bignum/pkg/storage"
	"github.com/oisee/bignum/pkg/word"
)

// AddMagnitude returns |v|+|other| as a positive Value using mixed-radix
// addition: position i has base i+1, so a carry out of position i is
// exactly 1 and is folded into position i+1 (spec.md §4.5).
func (v Value) AddMagnitude(other Value) Value {
	out := storage.Storage{Words: []word.Word{0}}
	var carry uint64
	for i := uint64(0); ; i++ {
		da, presentA, _ := Extract(v.s, i)
		db, presentB, _ := Extract(other.s, i)
		if !presentA && !presentB && carry == 0 {
			break
		}
		base := i + 1
		sum := da + db + carry
		if sum >= base {
			carry = 1
			sum -= base
		} else {
			carry = 0
		}
		mustPut(&out, i, sum)
	}
	return Value{s: out}
}

// SubMagnitude returns |v|-|other| as a positive Value. The caller must
// guarantee |v| >= |other|; the operator scaffolding in pkg/bignum is the
// only caller and always satisfies this. A nonzero borrow surviving past
// the top coefficient means that precondition was violated (spec.md §9);
// this is treated as an internal invariant failure, not a reportable
// runtime error, since no public entry point can trigger it.
func (v Value) SubMagnitude(other Value) Value {
	out := storage.Storage{Words: []word.Word{0}}
	var borrow int64
	for i := uint64(0); ; i++ {
		da, presentA, _ := Extract(v.s, i)
		db, presentB, _ := Extract(other.s, i)
		if !presentA && !presentB && borrow == 0 {
			break
		}
		base := int64(i + 1)
		d := int64(da) - int64(db) - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		mustPut(&out, i, uint64(d))
	}
	if borrow != 0 {
		panic(fmt.Errorf("factorial.Value.SubMagnitude: %w", bnerr.ErrBorrow))
	}
	return Value{s: out}
}

// MulMagnitude returns |v|*|other| by falling back to the decimal kernel:
// the mixed-radix layout has no convenient positional multiply, so both
// operands are rendered to decimal, multiplied with pkg/decstr, and the
// product is re-parsed (spec.md §4.5 / §9).
func (v Value) MulMagnitude(other Value) Value {
	product := decstr.Mul(v.absString(), other.absString())
	result, _ := FromString(product)
	return result
}

// DivMagnitude divides |v| by |other| via the same decimal fallback as
// MulMagnitude, failing with bnerr.ErrDivisionByZero if other is zero.
func (v Value) DivMagnitude(other Value) (quotient, remainder Value, err error) {
	qs, rs, derr := decstr.Div(v.absString(), other.absString())
	if derr != nil {
		return Value{}, Value{}, fmt.Errorf("factorial.Value.DivMagnitude: %w", derr)
	}
	q, _ := FromString(qs)
	r, _ := FromString(rs)
	return q, r, nil
}
