package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func (v Value) String() string {
	switch v.Kind {
	case NullKind:
		return "null"
	case BoolKind:
		return strconv.FormatBool(v.Bool)
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case BigIntKind:
		if v.BigInt == nil {
			return "<nil>"
		}
		return v.BigInt.String()
	case FloatKind:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case StringKind:
		return v.Str
	case ListKind:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			if e.Kind == StringKind {
				parts[i] = strconv.Quote(e.Str)
				continue
			}
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ArrayKind:
		return v.Array.String()
	case RationalKind:
		if v.Rat == nil {
			return "<nil>"
		}
		return v.Rat.RatString()
	case DecimalKind:
		return v.Decimal.String()
	case ComplexKind:
		return complexString(v.Complex)
	case OpaqueKind:
		return fmt.Sprint(v.Raw)
	}
	return "<invalid value>"
}

// TypeString describes the kind of v and, for list and array values, its
// shape, e.g. "array[float64] (2, 2)" or "list (4,)".
func (v Value) TypeString() string {
	switch v.Kind {
	case ArrayKind:
		return "array[" + v.Array.DType.String() + "] " + ShapeString(v.Array.Shape)
	case ListKind:
		return "list " + ShapeString(listShape(v))
	case OpaqueKind:
		return fmt.Sprintf("opaque[%T]", v.Raw)
	default:
		return v.Kind.String()
	}
}

// listShape follows nested lists as long as every level is rectangular.
func listShape(v Value) []int {
	shape := []int{len(v.List)}
	if len(v.List) == 0 {
		return shape
	}
	first := v.List[0]
	if first.Kind != ListKind {
		return shape
	}
	inner := listShape(first)
	for _, e := range v.List[1:] {
		if e.Kind != ListKind || !slices.Equal(listShape(e), inner) {
			return shape
		}
	}
	return append(shape, inner...)
}

// complexString renders c without whitespace or parentheses, joining the
// real and imaginary parts with an explicit sign: "3+4i", "1.5-2i".
func complexString(c complex128) string {
	s := strconv.FormatComplex(c, 'g', -1, 128)
	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}
