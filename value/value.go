package value

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// Value is a leaf of a tree dictionary. Fields are populated according to
// Kind; the zero Value is null.
type Value struct {
	Kind Kind

	Bool    bool
	Int     int64
	BigInt  *big.Int
	Float   float64
	Str     string
	List    []Value
	Array   *Array
	Rat     *big.Rat
	Decimal decimal.Decimal
	Complex complex128

	// Raw holds the original runtime value of an OpaqueKind value.
	Raw any
}

func Null() Value {
	return Value{Kind: NullKind}
}

func FromBool(v bool) Value {
	return Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) Value {
	return Value{Kind: IntKind, Int: v}
}

// FromBigInt returns an IntKind value when b fits in an int64 and a
// BigIntKind value holding a copy of b otherwise.
func FromBigInt(b *big.Int) Value {
	if b.IsInt64() {
		return FromInt(b.Int64())
	}
	return Value{Kind: BigIntKind, BigInt: new(big.Int).Set(b)}
}

func FromFloat(f float64) Value {
	return Value{Kind: FloatKind, Float: f}
}

func FromString(s string) Value {
	return Value{Kind: StringKind, Str: s}
}

func FromList(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Kind: ListKind, List: vs}
}

func FromArray(a *Array) Value {
	return Value{Kind: ArrayKind, Array: a}
}

func FromRat(r *big.Rat) Value {
	return Value{Kind: RationalKind, Rat: new(big.Rat).Set(r)}
}

func FromDecimal(d decimal.Decimal) Value {
	return Value{Kind: DecimalKind, Decimal: d}
}

func FromComplex(c complex128) Value {
	return Value{Kind: ComplexKind, Complex: c}
}

// Opaque wraps a runtime value that has no representation in the union.
func Opaque(x any) Value {
	return Value{Kind: OpaqueKind, Raw: x}
}

func (v Value) IsNull() bool {
	return v.Kind == NullKind
}

// Copy returns a deep copy of v. Array buffers and rationals are
// duplicated; opaque payloads are shared.
func (v Value) Copy() Value {
	res := v
	switch v.Kind {
	case ListKind:
		res.List = make([]Value, len(v.List))
		for i := range v.List {
			res.List[i] = v.List[i].Copy()
		}
	case ArrayKind:
		res.Array = v.Array.Copy()
	case BigIntKind:
		if v.BigInt != nil {
			res.BigInt = new(big.Int).Set(v.BigInt)
		}
	case RationalKind:
		if v.Rat != nil {
			res.Rat = new(big.Rat).Set(v.Rat)
		}
	}
	return res
}

// Equal reports whether a and b hold the same kind and content.
// NaN floats are equal to each other so that structurally identical
// trees compare equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NullKind:
		return true
	case BoolKind:
		return a.Bool == b.Bool
	case IntKind:
		return a.Int == b.Int
	case BigIntKind:
		if a.BigInt == nil || b.BigInt == nil {
			return a.BigInt == b.BigInt
		}
		return a.BigInt.Cmp(b.BigInt) == 0
	case FloatKind:
		return floatEqual(a.Float, b.Float)
	case StringKind:
		return a.Str == b.Str
	case ListKind:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case ArrayKind:
		return a.Array.Equal(b.Array)
	case RationalKind:
		if a.Rat == nil || b.Rat == nil {
			return a.Rat == b.Rat
		}
		return a.Rat.Cmp(b.Rat) == 0
	case DecimalKind:
		return a.Decimal.Equal(b.Decimal)
	case ComplexKind:
		return floatEqual(real(a.Complex), real(b.Complex)) &&
			floatEqual(imag(a.Complex), imag(b.Complex))
	case OpaqueKind:
		return reflect.DeepEqual(a.Raw, b.Raw)
	}
	return false
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Float64 returns v as a float64 for real numeric kinds, including
// scalar arrays. ok is false for every other kind.
func (v Value) Float64() (f float64, ok bool) {
	switch v.Kind {
	case IntKind:
		return float64(v.Int), true
	case FloatKind:
		return v.Float, true
	case BigIntKind:
		if v.BigInt == nil {
			return 0, false
		}
		f, _ = new(big.Float).SetInt(v.BigInt).Float64()
		return f, true
	case RationalKind:
		if v.Rat == nil {
			return 0, false
		}
		f, _ = v.Rat.Float64()
		return f, true
	case DecimalKind:
		f, _ = v.Decimal.Float64()
		return f, true
	case ArrayKind:
		if v.Array == nil || len(v.Array.Shape) != 0 || v.Array.DType.IsComplex() {
			return 0, false
		}
		return v.Array.At(0).Float64()
	}
	return 0, false
}
