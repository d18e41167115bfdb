package zarr

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/value"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// decompress undoes the compressor of a chunk.
func decompress(c *compressor, d []byte) ([]byte, error) {
	if c == nil {
		return d, nil
	}
	switch c.ID {
	case "zstd":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(d, nil)
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(d))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case "zlib":
		r, err := zlib.NewReader(bytes.NewReader(d))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}
	return nil, fmt.Errorf("%w: compressor %q not supported", container.ErrContainer, c.ID)
}

// toArray decodes a C order buffer of elements of type dt.
func toArray(shape []int, dt dtype, b []byte) (*value.Array, error) {
	n := len(b) / dt.size
	o := dt.order
	switch dt.dt {
	case value.BoolDType:
		return value.NewArray(shape, decodeEach(n, func(i int) bool { return b[i] != 0 }))
	case value.Int8DType:
		return value.NewArray(shape, decodeEach(n, func(i int) int8 { return int8(b[i]) }))
	case value.Int16DType:
		return value.NewArray(shape, decodeEach(n, func(i int) int16 { return int16(o.Uint16(b[2*i:])) }))
	case value.Int32DType:
		return value.NewArray(shape, decodeEach(n, func(i int) int32 { return int32(o.Uint32(b[4*i:])) }))
	case value.Int64DType:
		return value.NewArray(shape, decodeEach(n, func(i int) int64 { return int64(o.Uint64(b[8*i:])) }))
	case value.Uint8DType:
		return value.NewArray(shape, decodeEach(n, func(i int) uint8 { return b[i] }))
	case value.Uint16DType:
		return value.NewArray(shape, decodeEach(n, func(i int) uint16 { return o.Uint16(b[2*i:]) }))
	case value.Uint32DType:
		return value.NewArray(shape, decodeEach(n, func(i int) uint32 { return o.Uint32(b[4*i:]) }))
	case value.Uint64DType:
		return value.NewArray(shape, decodeEach(n, func(i int) uint64 { return o.Uint64(b[8*i:]) }))
	case value.Float32DType:
		return value.NewArray(shape, decodeEach(n, func(i int) float32 { return math.Float32frombits(o.Uint32(b[4*i:])) }))
	case value.Float64DType:
		return value.NewArray(shape, decodeEach(n, func(i int) float64 { return math.Float64frombits(o.Uint64(b[8*i:])) }))
	case value.Complex64DType:
		return value.NewArray(shape, decodeEach(n, func(i int) complex64 {
			re := math.Float32frombits(o.Uint32(b[8*i:]))
			im := math.Float32frombits(o.Uint32(b[8*i+4:]))
			return complex(re, im)
		}))
	case value.Complex128DType:
		return value.NewArray(shape, decodeEach(n, func(i int) complex128 {
			re := math.Float64frombits(o.Uint64(b[16*i:]))
			im := math.Float64frombits(o.Uint64(b[16*i+8:]))
			return complex(re, im)
		}))
	}
	return nil, fmt.Errorf("%w: dtype %s not supported", container.ErrContainer, dt.dt)
}

func decodeEach[T value.Element](n int, at func(int) T) []T {
	res := make([]T, n)
	for i := range res {
		res[i] = at(i)
	}
	return res
}
