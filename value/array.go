package value

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strings"
)

// DType is the element type of an Array.
type DType int

const (
	BoolDType DType = iota
	Int8DType
	Int16DType
	Int32DType
	Int64DType
	Uint8DType
	Uint16DType
	Uint32DType
	Uint64DType
	Float32DType
	Float64DType
	Complex64DType
	Complex128DType
)

var dtypeNames = []string{
	"bool", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "complex64", "complex128",
}

func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return "<unknown dtype>"
	}
	return dtypeNames[d]
}

func ParseDType(s string) (DType, error) {
	i := slices.Index(dtypeNames, s)
	if i < 0 {
		return 0, fmt.Errorf("unrecognized dtype %q", s)
	}
	return DType(i), nil
}

func (d DType) IsInteger() bool {
	return d >= Int8DType && d <= Uint64DType
}

func (d DType) IsFloat() bool {
	return d == Float32DType || d == Float64DType
}

func (d DType) IsComplex() bool {
	return d == Complex64DType || d == Complex128DType
}

// Element lists the Go types an Array buffer may hold.
type Element interface {
	bool | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | complex64 | complex128
}

// Array is a multi-dimensional typed buffer stored flat in row-major
// order. A nil or empty Shape denotes a scalar holding one element.
type Array struct {
	Shape []int
	DType DType
	data  any
}

// NewArray builds an Array over a copy of data. The product of shape must
// equal len(data).
func NewArray[T Element](shape []int, data []T) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("negative dimension %d in shape %v", d, shape)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v needs %d elements, got %d", shape, n, len(data))
	}
	return &Array{
		Shape: slices.Clone(shape),
		DType: dtypeOf(data),
		data:  slices.Clone(data),
	}, nil
}

// Vector is a shorthand for a one-dimensional Array.
func Vector[T Element](data []T) *Array {
	a, _ := NewArray([]int{len(data)}, data)
	return a
}

func dtypeOf(data any) DType {
	switch data.(type) {
	case []bool:
		return BoolDType
	case []int8:
		return Int8DType
	case []int16:
		return Int16DType
	case []int32:
		return Int32DType
	case []int64:
		return Int64DType
	case []uint8:
		return Uint8DType
	case []uint16:
		return Uint16DType
	case []uint32:
		return Uint32DType
	case []uint64:
		return Uint64DType
	case []float32:
		return Float32DType
	case []float64:
		return Float64DType
	case []complex64:
		return Complex64DType
	case []complex128:
		return Complex128DType
	}
	panic(fmt.Sprintf("value: unsupported array buffer %T", data))
}

// Len returns the number of elements.
func (a *Array) Len() int {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// Data returns the flat buffer, one of the []Element slice types. The
// slice is shared with the array.
func (a *Array) Data() any {
	return a.data
}

// At returns the i-th element of the flat buffer as a scalar Value.
func (a *Array) At(i int) Value {
	switch d := a.data.(type) {
	case []bool:
		return FromBool(d[i])
	case []int8:
		return FromInt(int64(d[i]))
	case []int16:
		return FromInt(int64(d[i]))
	case []int32:
		return FromInt(int64(d[i]))
	case []int64:
		return FromInt(d[i])
	case []uint8:
		return FromInt(int64(d[i]))
	case []uint16:
		return FromInt(int64(d[i]))
	case []uint32:
		return FromInt(int64(d[i]))
	case []uint64:
		if d[i] > math.MaxInt64 {
			return FromBigInt(new(big.Int).SetUint64(d[i]))
		}
		return FromInt(int64(d[i]))
	case []float32:
		return FromFloat(float64(d[i]))
	case []float64:
		return FromFloat(d[i])
	case []complex64:
		return FromComplex(complex128(d[i]))
	case []complex128:
		return FromComplex(d[i])
	}
	panic(fmt.Sprintf("value: unsupported array buffer %T", a.data))
}

// Float64s converts a real-valued array to float64.
func (a *Array) Float64s() ([]float64, error) {
	if a.DType.IsComplex() {
		return nil, fmt.Errorf("cannot convert %s array to float64", a.DType)
	}
	if f, ok := a.data.([]float64); ok {
		return slices.Clone(f), nil
	}
	res := make([]float64, a.Len())
	for i := range res {
		v := a.At(i)
		switch v.Kind {
		case BoolKind:
			if v.Bool {
				res[i] = 1
			}
		case IntKind:
			res[i] = float64(v.Int)
		case FloatKind:
			res[i] = v.Float
		case BigIntKind:
			res[i], _ = v.Float64()
		}
	}
	return res, nil
}

func (a *Array) Copy() *Array {
	if a == nil {
		return nil
	}
	res := &Array{Shape: slices.Clone(a.Shape), DType: a.DType}
	switch d := a.data.(type) {
	case []bool:
		res.data = slices.Clone(d)
	case []int8:
		res.data = slices.Clone(d)
	case []int16:
		res.data = slices.Clone(d)
	case []int32:
		res.data = slices.Clone(d)
	case []int64:
		res.data = slices.Clone(d)
	case []uint8:
		res.data = slices.Clone(d)
	case []uint16:
		res.data = slices.Clone(d)
	case []uint32:
		res.data = slices.Clone(d)
	case []uint64:
		res.data = slices.Clone(d)
	case []float32:
		res.data = slices.Clone(d)
	case []float64:
		res.data = slices.Clone(d)
	case []complex64:
		res.data = slices.Clone(d)
	case []complex128:
		res.data = slices.Clone(d)
	}
	return res
}

func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.DType != b.DType || !slices.Equal(a.Shape, b.Shape) {
		return false
	}
	n := a.Len()
	for i := range n {
		if !Equal(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// ShapeString renders a shape as a parenthesized tuple, e.g. "(2, 3)".
func ShapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprint(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *Array) String() string {
	if len(a.Shape) == 0 {
		return a.At(0).String()
	}
	sb := &strings.Builder{}
	a.format(sb, 0, 0)
	return sb.String()
}

// format writes dimension dim starting at flat offset off, numpy style:
// inner rows are separated by newlines and aligned under the outer bracket.
func (a *Array) format(sb *strings.Builder, dim, off int) {
	sb.WriteByte('[')
	n := a.Shape[dim]
	stride := 1
	for _, d := range a.Shape[dim+1:] {
		stride *= d
	}
	for i := range n {
		if i > 0 {
			if dim == len(a.Shape)-1 {
				sb.WriteByte(' ')
			} else {
				sb.WriteString("\n" + strings.Repeat(" ", dim+1))
			}
		}
		if dim == len(a.Shape)-1 {
			sb.WriteString(a.At(off + i).String())
			continue
		}
		a.format(sb, dim+1, off+i*stride)
	}
	sb.WriteByte(']')
}
