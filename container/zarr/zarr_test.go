package zarr_test

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/container/zarr"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

func writeFile(t *testing.T, p string, d []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, d, 0o644))
}

func writeJSON(t *testing.T, p string, v any) {
	t.Helper()
	d, err := json.Marshal(v)
	require.NoError(t, err)
	writeFile(t, p, d)
}

func arrayMeta(shape, chunks []int, dtype string, compressor any, fill any) map[string]any {
	return map[string]any{
		"zarr_format": 2,
		"shape":       shape,
		"chunks":      chunks,
		"dtype":       dtype,
		"compressor":  compressor,
		"fill_value":  fill,
		"order":       "C",
		"filters":     nil,
	}
}

func float64s(xs ...float64) []byte {
	var b []byte
	for _, x := range xs {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
	}
	return b
}

func int32s(xs ...int32) []byte {
	var b []byte
	for _, x := range xs {
		b = binary.LittleEndian.AppendUint32(b, uint32(x))
	}
	return b
}

func zstdBytes(t *testing.T, d []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(d, nil)
}

func zlibBytes(t *testing.T, d []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(d)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func gzipBytes(t *testing.T, d []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(d)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// buildStore writes a small store exercising every codec, a missing
// chunk, a partial edge chunk and a 0-d array.
func buildStore(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "run.zarr")
	writeJSON(t, filepath.Join(dir, ".zgroup"), map[string]any{"zarr_format": 2})
	writeJSON(t, filepath.Join(dir, ".zattrs"), map[string]any{"experiment": "run1", "T": 4.2})

	raw := filepath.Join(dir, "raw")
	writeJSON(t, filepath.Join(raw, ".zgroup"), map[string]any{"zarr_format": 2})
	sig := filepath.Join(raw, "signal")
	writeJSON(t, filepath.Join(sig, ".zarray"), arrayMeta([]int{5}, []int{2}, "<f8", map[string]any{"id": "zstd", "level": 3}, "NaN"))
	writeFile(t, filepath.Join(sig, "0"), zstdBytes(t, float64s(1, 2)))
	writeFile(t, filepath.Join(sig, "1"), zstdBytes(t, float64s(3, 4)))
	writeFile(t, filepath.Join(sig, "2"), zstdBytes(t, float64s(5, 0)))

	counts := filepath.Join(dir, "counts")
	writeJSON(t, filepath.Join(counts, ".zarray"), arrayMeta([]int{2, 3}, []int{2, 2}, "<i4", nil, 7))
	writeJSON(t, filepath.Join(counts, ".zattrs"), map[string]any{"unit": "n"})
	writeFile(t, filepath.Join(counts, "0.0"), int32s(1, 2, 4, 5))

	flags := filepath.Join(dir, "flags")
	writeJSON(t, filepath.Join(flags, ".zarray"), arrayMeta([]int{3}, []int{3}, "|b1", map[string]any{"id": "zlib", "level": 1}, false))
	writeFile(t, filepath.Join(flags, "0"), zlibBytes(t, []byte{1, 0, 1}))

	big := filepath.Join(dir, "big")
	writeJSON(t, filepath.Join(big, ".zarray"), arrayMeta([]int{2}, []int{2}, ">u2", map[string]any{"id": "gzip", "level": 5}, 0))
	writeFile(t, filepath.Join(big, "0"), gzipBytes(t, []byte{0x01, 0x02, 0x00, 0x03}))

	scalar := filepath.Join(dir, "scalar")
	writeJSON(t, filepath.Join(scalar, ".zarray"), arrayMeta([]int{}, []int{}, "<f4", nil, nil))
	writeFile(t, filepath.Join(scalar, "0"), binary.LittleEndian.AppendUint32(nil, math.Float32bits(1.5)))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))
	writeFile(t, filepath.Join(dir, "README"), []byte("not a member"))
	return dir
}

func TestStore(t *testing.T) {
	f, err := container.Open(buildStore(t))
	require.NoError(t, err)
	defer f.Close()

	names, err := f.Members()
	require.NoError(t, err)
	require.Equal(t, []string{"big", "counts", "flags", "raw", "scalar"}, names)

	n, err := container.ToTree(f)
	require.NoError(t, err)
	require.Equal(t, names, n.Keys()[:len(names)])

	v, ok := n.Value("raw.signal")
	require.True(t, ok)
	require.Equal(t, value.Float64DType, v.Array.DType)
	require.Equal(t, []float64{1, 2, 3, 4, 5}, v.Array.Data())

	v, ok = n.Value("counts.data")
	require.True(t, ok, "dataset with attributes becomes a node:\n%s", n)
	require.Equal(t, []int{2, 3}, v.Array.Shape)
	require.Equal(t, []int32{1, 2, 7, 4, 5, 7}, v.Array.Data())
	unit, _ := n.Value("counts.unit")
	require.Equal(t, "n", unit.Str)

	v, _ = n.Value("flags")
	require.Equal(t, []bool{true, false, true}, v.Array.Data())

	v, _ = n.Value("big")
	require.Equal(t, []uint16{258, 3}, v.Array.Data())

	v, _ = n.Value("scalar")
	require.Empty(t, v.Array.Shape)
	require.Equal(t, []float32{1.5}, v.Array.Data())

	exp, _ := n.Value("experiment")
	require.Equal(t, "run1", exp.Str)
	temp, _ := n.Value("T")
	require.Equal(t, 4.2, temp.Float)
}

func TestMissingChunkFill(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fill.zarr")
	writeJSON(t, filepath.Join(dir, ".zgroup"), map[string]any{"zarr_format": 2})
	writeJSON(t, filepath.Join(dir, "x", ".zarray"), arrayMeta([]int{3}, []int{2}, "<f8", nil, "NaN"))
	writeFile(t, filepath.Join(dir, "x", "0"), float64s(1, 2))

	s, err := zarr.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	n, err := container.ToTree(s)
	require.NoError(t, err)
	v, _ := n.Value("x")
	got := v.Array.Data().([]float64)
	require.Equal(t, []float64{1, 2}, got[:2])
	require.True(t, math.IsNaN(got[2]))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := zarr.Open(dir)
	require.ErrorIs(t, err, container.ErrContainer)

	_, err = zarr.Open(filepath.Join(dir, "missing.zarr"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.zarr")
	writeJSON(t, filepath.Join(bad, ".zgroup"), map[string]any{"zarr_format": 2})
	meta := arrayMeta([]int{2}, []int{2}, "<f8", map[string]any{"id": "blosc"}, 0)
	writeJSON(t, filepath.Join(bad, "x", ".zarray"), meta)
	writeFile(t, filepath.Join(bad, "x", "0"), float64s(1, 2))
	s, err := zarr.Open(bad)
	require.NoError(t, err)
	defer s.Close()
	_, err = container.ToTree(s)
	require.ErrorIs(t, err, container.ErrContainer)

	meta["order"] = "F"
	writeJSON(t, filepath.Join(bad, "x", ".zarray"), meta)
	_, err = container.ToTree(s)
	require.ErrorIs(t, err, container.ErrContainer)
}
