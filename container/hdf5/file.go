//go:build cgo && hdf5

package hdf5

import (
	"errors"
	"fmt"
	"slices"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"

	h5 "gonum.org/v1/hdf5"
)

func init() {
	for _, ext := range exts {
		container.Register(ext, func(p string) (container.File, error) {
			f, err := Open(p)
			if err != nil {
				return nil, err
			}
			return f, nil
		})
	}
}

type closer interface {
	Close() error
}

// handles collects every HDF5 object opened through a File so that
// closing the file releases them.
type handles struct {
	open []closer
}

func (h *handles) add(c closer) {
	h.open = append(h.open, c)
}

func (h *handles) close() error {
	var errs []error
	for _, c := range slices.Backward(h.open) {
		errs = append(errs, c.Close())
	}
	h.open = nil
	return errors.Join(errs...)
}

// File is an open HDF5 file. Its root group is "/".
type File struct {
	*group
	f *h5.File
}

// Open opens the HDF5 file at path read-only.
func Open(path string) (*File, error) {
	f, err := h5.OpenFile(path, h5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", container.ErrContainer, path, err)
	}
	root, err := f.OpenGroup("/")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", container.ErrContainer, path, err)
	}
	h := &handles{}
	h.add(root)
	return &File{group: &group{h: h, g: root, path: "/"}, f: f}, nil
}

func (f *File) Close() error {
	return errors.Join(f.h.close(), f.f.Close())
}

type group struct {
	h     *handles
	g     *h5.Group
	path  string
	kinds map[string]h5.GType
}

func (g *group) Attrs() (*tree.Node, error) {
	return readAttrs(g.g.ID())
}

// Members returns the links of g in name order.
func (g *group) Members() ([]string, error) {
	n, err := g.g.NumObjects()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	kinds := make(map[string]h5.GType, n)
	for i := range n {
		name, err := g.g.ObjectNameByIndex(i)
		if err != nil {
			return nil, err
		}
		kind, err := g.g.ObjectTypeByIndex(i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		kinds[name] = kind
	}
	g.kinds = kinds
	return names, nil
}

func (g *group) Member(name string) (container.Object, error) {
	if g.kinds == nil {
		if _, err := g.Members(); err != nil {
			return nil, err
		}
	}
	kind, ok := g.kinds[name]
	if !ok {
		return nil, fmt.Errorf("no member %q", name)
	}
	switch kind {
	case h5.H5G_GROUP:
		sub, err := g.g.OpenGroup(name)
		if err != nil {
			return nil, err
		}
		g.h.add(sub)
		return &group{h: g.h, g: sub, path: g.path + name + "/"}, nil
	case h5.H5G_DATASET:
		ds, err := g.g.OpenDataset(name)
		if err != nil {
			return nil, err
		}
		g.h.add(ds)
		return newDataset(ds, g.path+name)
	}
	return nil, fmt.Errorf("member %q: unsupported object type %d", name, kind)
}

type dataset struct {
	ds    *h5.Dataset
	path  string
	shape []int
	dtype value.DType
}

func newDataset(ds *h5.Dataset, path string) (*dataset, error) {
	space := ds.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	shape := make([]int, len(dims))
	for i, d := range dims {
		shape[i] = int(d)
	}
	dt, err := ds.Datatype()
	if err != nil {
		return nil, err
	}
	defer dt.Close()
	dtype, err := dtypeOf(dt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if debug.Load() {
		debug.Logf("hdf5 dataset %s: %s %v\n", path, dtype, shape)
	}
	return &dataset{ds: ds, path: path, shape: shape, dtype: dtype}, nil
}

func dtypeOf(dt *h5.Datatype) (value.DType, error) {
	size := dt.Size()
	switch dt.Class() {
	case h5.T_INTEGER:
		signed := isSigned(dt.ID())
		switch {
		case size == 1 && signed:
			return value.Int8DType, nil
		case size == 1:
			return value.Uint8DType, nil
		case size == 2 && signed:
			return value.Int16DType, nil
		case size == 2:
			return value.Uint16DType, nil
		case size == 4 && signed:
			return value.Int32DType, nil
		case size == 4:
			return value.Uint32DType, nil
		case size == 8 && signed:
			return value.Int64DType, nil
		case size == 8:
			return value.Uint64DType, nil
		}
	case h5.T_FLOAT:
		switch size {
		case 4:
			return value.Float32DType, nil
		case 8:
			return value.Float64DType, nil
		}
	}
	return 0, fmt.Errorf("unsupported datatype class %d of size %d", dt.Class(), size)
}

func (d *dataset) Attrs() (*tree.Node, error) {
	return readAttrs(d.ds.ID())
}

func (d *dataset) Shape() []int {
	return slices.Clone(d.shape)
}

func (d *dataset) DType() value.DType {
	return d.dtype
}

func (d *dataset) Read() (*value.Array, error) {
	switch d.dtype {
	case value.Int8DType:
		return read[int8](d.ds, d.shape)
	case value.Int16DType:
		return read[int16](d.ds, d.shape)
	case value.Int32DType:
		return read[int32](d.ds, d.shape)
	case value.Int64DType:
		return read[int64](d.ds, d.shape)
	case value.Uint8DType:
		return read[uint8](d.ds, d.shape)
	case value.Uint16DType:
		return read[uint16](d.ds, d.shape)
	case value.Uint32DType:
		return read[uint32](d.ds, d.shape)
	case value.Uint64DType:
		return read[uint64](d.ds, d.shape)
	case value.Float32DType:
		return read[float32](d.ds, d.shape)
	case value.Float64DType:
		return read[float64](d.ds, d.shape)
	}
	return nil, fmt.Errorf("%s: cannot read %s", d.path, d.dtype)
}

// read realizes ds into an array of element type T; HDF5 converts from
// the stored byte order.
func read[T any](ds *h5.Dataset, shape []int) (*value.Array, error) {
	n := 1
	for _, d := range shape {
		n *= d
	}
	buf := make([]T, n)
	if n > 0 {
		if err := ds.Read(&buf); err != nil {
			return nil, err
		}
	}
	return value.NewArray(shape, buf)
}
