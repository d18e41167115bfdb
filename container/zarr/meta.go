package zarr

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

const (
	groupFile = ".zgroup"
	arrayFile = ".zarray"
	attrsFile = ".zattrs"
)

type compressor struct {
	ID    string `json:"id"`
	Level int    `json:"level,omitempty"`
}

type arrayMeta struct {
	ZarrFormat         int             `json:"zarr_format"`
	Shape              []int           `json:"shape"`
	Chunks             []int           `json:"chunks"`
	DType              string          `json:"dtype"`
	Compressor         *compressor     `json:"compressor"`
	FillValue          json.RawMessage `json:"fill_value"`
	Order              string          `json:"order"`
	Filters            []any           `json:"filters"`
	DimensionSeparator string          `json:"dimension_separator,omitempty"`
}

// dtype is a decoded numpy type string such as "<f8".
type dtype struct {
	dt    value.DType
	size  int
	order binary.ByteOrder
}

func (m *arrayMeta) validate() error {
	if m.ZarrFormat != 2 {
		return fmt.Errorf("%w: zarr_format %d", container.ErrContainer, m.ZarrFormat)
	}
	if len(m.Chunks) != len(m.Shape) {
		return fmt.Errorf("%w: chunks %v do not match shape %v", container.ErrContainer, m.Chunks, m.Shape)
	}
	for i, c := range m.Chunks {
		if c <= 0 || m.Shape[i] < 0 {
			return fmt.Errorf("%w: bad chunk %v for shape %v", container.ErrContainer, m.Chunks, m.Shape)
		}
	}
	if m.Order != "" && m.Order != "C" {
		return fmt.Errorf("%w: order %q not supported", container.ErrContainer, m.Order)
	}
	if len(m.Filters) != 0 {
		return fmt.Errorf("%w: filters not supported", container.ErrContainer)
	}
	return nil
}

func (m *arrayMeta) separator() string {
	if m.DimensionSeparator == "" {
		return "."
	}
	return m.DimensionSeparator
}

func parseDType(s string) (dtype, error) {
	if len(s) < 3 {
		return dtype{}, fmt.Errorf("%w: dtype %q", container.ErrContainer, s)
	}
	var res dtype
	switch s[0] {
	case '<', '|':
		res.order = binary.LittleEndian
	case '>':
		res.order = binary.BigEndian
	default:
		return dtype{}, fmt.Errorf("%w: dtype %q", container.ErrContainer, s)
	}
	size, err := strconv.Atoi(s[2:])
	if err != nil {
		return dtype{}, fmt.Errorf("%w: dtype %q", container.ErrContainer, s)
	}
	res.size = size
	name := ""
	switch s[1] {
	case 'b':
		name = "bool"
	case 'i':
		name = "int" + strconv.Itoa(8*size)
	case 'u':
		name = "uint" + strconv.Itoa(8*size)
	case 'f':
		name = "float" + strconv.Itoa(8*size)
	case 'c':
		name = "complex" + strconv.Itoa(8*size)
	}
	res.dt, err = value.ParseDType(name)
	if err != nil || (s[1] == 'b' && size != 1) {
		return dtype{}, fmt.Errorf("%w: dtype %q not supported", container.ErrContainer, s)
	}
	return res, nil
}

// fill encodes the fill_value of m as one element.
func (m *arrayMeta) fill(dt dtype) ([]byte, error) {
	res := make([]byte, dt.size)
	raw := string(m.FillValue)
	if raw == "" || raw == "null" {
		return res, nil
	}
	var f float64
	switch raw {
	case "true":
		f = 1
	case "false":
		f = 0
	case `"NaN"`:
		f = math.NaN()
	case `"Infinity"`:
		f = math.Inf(1)
	case `"-Infinity"`:
		f = math.Inf(-1)
	default:
		var err error
		if f, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("%w: fill_value %s", container.ErrContainer, raw)
		}
	}
	putFloat(res, dt, f)
	return res, nil
}

func putFloat(b []byte, dt dtype, f float64) {
	switch {
	case dt.dt == value.BoolDType:
		if f != 0 {
			b[0] = 1
		}
	case dt.dt.IsFloat() || dt.dt.IsComplex():
		if dt.size == 4 || dt.size == 8 && dt.dt.IsComplex() {
			dt.order.PutUint32(b, math.Float32bits(float32(f)))
		} else {
			dt.order.PutUint64(b, math.Float64bits(f))
		}
	default:
		u := uint64(int64(f))
		switch dt.size {
		case 1:
			b[0] = byte(u)
		case 2:
			dt.order.PutUint16(b, uint16(u))
		case 4:
			dt.order.PutUint32(b, uint32(u))
		case 8:
			dt.order.PutUint64(b, u)
		}
	}
}
