package value

import (
	"cmp"
	"math"
	"math/big"
	"reflect"
	"slices"

	"github.com/shopspring/decimal"
)

// Of converts a Go runtime value into the closed Value union. It never
// fails: anything without a representation becomes an Opaque value, which
// is rejected later by Portable.
//
// Slices of Element types become one-dimensional Arrays, other slices and
// fixed-size arrays become Lists, and sets
// (map[T]struct{}) become Lists of their keys in sorted order.
func Of(x any) Value {
	switch v := x.(type) {
	case Value:
		return v.Copy()
	case *Value:
		if v == nil {
			return Null()
		}
		return v.Copy()
	case nil:
		return Null()
	case bool:
		return FromBool(v)
	case string:
		return FromString(v)
	case int:
		return FromInt(int64(v))
	case int8:
		return FromInt(int64(v))
	case int16:
		return FromInt(int64(v))
	case int32:
		return FromInt(int64(v))
	case int64:
		return FromInt(v)
	case uint:
		return fromUint64(uint64(v))
	case uint8:
		return FromInt(int64(v))
	case uint16:
		return FromInt(int64(v))
	case uint32:
		return FromInt(int64(v))
	case uint64:
		return fromUint64(v)
	case *big.Int:
		if v == nil {
			return Null()
		}
		return FromBigInt(v)
	case float32:
		return FromFloat(float64(v))
	case float64:
		return FromFloat(v)
	case *big.Float:
		f, _ := v.Float64()
		return FromFloat(f)
	case *big.Rat:
		return FromRat(v)
	case decimal.Decimal:
		return FromDecimal(v)
	case complex64:
		return FromComplex(complex128(v))
	case complex128:
		return FromComplex(v)
	case *Array:
		return FromArray(v.Copy())
	case []bool:
		return FromArray(Vector(v))
	case []int8:
		return FromArray(Vector(v))
	case []int16:
		return FromArray(Vector(v))
	case []int32:
		return FromArray(Vector(v))
	case []int64:
		return FromArray(Vector(v))
	case []uint8:
		return FromArray(Vector(v))
	case []uint16:
		return FromArray(Vector(v))
	case []uint32:
		return FromArray(Vector(v))
	case []uint64:
		return FromArray(Vector(v))
	case []float32:
		return FromArray(Vector(v))
	case []float64:
		return FromArray(Vector(v))
	case []complex64:
		return FromArray(Vector(v))
	case []complex128:
		return FromArray(Vector(v))
	case []Value:
		return Of(FromList(v...))
	case []any:
		elems := make([]Value, len(v))
		for i := range v {
			elems[i] = Of(v[i])
		}
		return FromList(elems...)
	}
	return ofReflect(x)
}

func fromUint64(u uint64) Value {
	if u > math.MaxInt64 {
		return FromBigInt(new(big.Int).SetUint64(u))
	}
	return FromInt(int64(u))
}

// ofReflect handles collection types that are not known statically.
func ofReflect(x any) Value {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elems[i] = Of(rv.Index(i).Interface())
		}
		return FromList(elems...)
	case reflect.Map:
		if !IsSet(rv.Type()) {
			return Opaque(x)
		}
		keys := make([]Value, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, Of(iter.Key().Interface()))
		}
		slices.SortFunc(keys, compareScalars)
		return FromList(keys...)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
	}
	return Opaque(x)
}

// IsSet reports whether t is a map used as a set, i.e. map[T]struct{}.
func IsSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

// compareScalars orders set members deterministically: by kind, then by
// value, falling back to the rendered form.
func compareScalars(a, b Value) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	switch a.Kind {
	case IntKind:
		return cmp.Compare(a.Int, b.Int)
	case BigIntKind:
		if a.BigInt != nil && b.BigInt != nil {
			return a.BigInt.Cmp(b.BigInt)
		}
	case FloatKind:
		return cmp.Compare(a.Float, b.Float)
	case StringKind:
		return cmp.Compare(a.Str, b.Str)
	}
	return cmp.Compare(a.String(), b.String())
}
