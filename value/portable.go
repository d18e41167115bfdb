package value

import (
	"errors"
	"fmt"
	"strconv"
)

// Portable maps v onto the portable subset: null, bool, integers of any
// size, float, string and lists of those. Already-portable values are returned as is
// (lists are rebuilt only when an element changes), so Portable is
// idempotent. Opaque values fail with an *EncodingError.
func Portable(v Value) (Value, error) {
	switch v.Kind {
	case NullKind, BoolKind, IntKind, FloatKind, StringKind:
		return v, nil
	case BigIntKind:
		if v.BigInt == nil {
			return Value{}, &EncodingError{Type: "bigint <nil>"}
		}
		return v, nil
	case ListKind:
		return portableList(v)
	case ArrayKind:
		if v.Array == nil {
			return Null(), nil
		}
		return portableArray(v.Array, 0, 0)
	case RationalKind:
		if v.Rat == nil {
			return Value{}, &EncodingError{Type: "rational <nil>"}
		}
		return FromString(v.Rat.RatString()), nil
	case DecimalKind:
		return FromString(v.Decimal.String()), nil
	case ComplexKind:
		return FromString(complexString(v.Complex)), nil
	case OpaqueKind:
		return Value{}, &EncodingError{Type: fmt.Sprintf("%T", v.Raw)}
	}
	return Value{}, &EncodingError{Type: "kind " + strconv.Itoa(int(v.Kind))}
}

func portableList(v Value) (Value, error) {
	var res []Value
	for i, e := range v.List {
		pe, err := Portable(e)
		if err != nil {
			var encErr *EncodingError
			if errors.As(err, &encErr) {
				encErr.Key = "[" + strconv.Itoa(i) + "]" + encErr.Key
			}
			return Value{}, err
		}
		if res == nil && !Equal(pe, e) {
			res = make([]Value, i, len(v.List))
			copy(res, v.List[:i])
		}
		if res != nil {
			res = append(res, pe)
		}
	}
	if res == nil {
		return v, nil
	}
	return FromList(res...), nil
}

// portableArray reproduces dimension dim of a as nested lists, row-major.
func portableArray(a *Array, dim, off int) (Value, error) {
	if len(a.Shape) == 0 {
		return Portable(a.At(0))
	}
	n := a.Shape[dim]
	stride := 1
	for _, d := range a.Shape[dim+1:] {
		stride *= d
	}
	elems := make([]Value, n)
	for i := range n {
		var err error
		if dim == len(a.Shape)-1 {
			elems[i], err = Portable(a.At(off + i))
		} else {
			elems[i], err = portableArray(a, dim+1, off+i*stride)
		}
		if err != nil {
			return Value{}, err
		}
	}
	return FromList(elems...), nil
}

// IsPortable reports whether v contains only portable kinds.
func IsPortable(v Value) bool {
	if !v.Kind.IsPortable() {
		return false
	}
	for _, e := range v.List {
		if !IsPortable(e) {
			return false
		}
	}
	return true
}
