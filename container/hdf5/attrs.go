//go:build cgo && hdf5

package hdf5

/*
#cgo LDFLAGS: -lhdf5
#include <stdlib.h>
#include <hdf5.h>

static herr_t dd_count_attr(hid_t loc, const char *name, const H5A_info_t *info, void *data) {
	(*(int *)data)++;
	return 0;
}

static int dd_num_attrs(hid_t obj) {
	int n = 0;
	hsize_t idx = 0;
	if (H5Aiterate2(obj, H5_INDEX_NAME, H5_ITER_INC, &idx, dd_count_attr, &n) < 0) {
		return -1;
	}
	return n;
}

static hid_t dd_open_attr(hid_t obj, hsize_t idx) {
	return H5Aopen_by_idx(obj, ".", H5_INDEX_NAME, H5_ITER_INC, idx, H5P_DEFAULT, H5P_DEFAULT);
}

static int dd_attr_dims(hid_t attr, hsize_t *dims, int max) {
	hid_t space = H5Aget_space(attr);
	if (space < 0) {
		return -1;
	}
	int n = H5Sget_simple_extent_ndims(space);
	if (n >= 0 && n <= max) {
		n = H5Sget_simple_extent_dims(space, dims, NULL);
	} else if (n > max) {
		n = -1;
	}
	H5Sclose(space);
	return n;
}

static herr_t dd_read_int64(hid_t attr, long long *buf) {
	return H5Aread(attr, H5T_NATIVE_LLONG, buf);
}

static herr_t dd_read_uint64(hid_t attr, unsigned long long *buf) {
	return H5Aread(attr, H5T_NATIVE_ULLONG, buf);
}

static herr_t dd_read_double(hid_t attr, double *buf) {
	return H5Aread(attr, H5T_NATIVE_DOUBLE, buf);
}

static herr_t dd_read_vlen_strings(hid_t attr, char **buf) {
	hid_t t = H5Tcopy(H5T_C_S1);
	H5Tset_size(t, H5T_VARIABLE);
	herr_t err = H5Aread(attr, t, buf);
	H5Tclose(t);
	return err;
}

static int dd_is_signed(hid_t t) {
	return H5Tget_sign(t) != H5T_SGN_NONE;
}
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

const maxAttrDims = 32

func isSigned(typeID int64) bool {
	return C.dd_is_signed(C.hid_t(typeID)) != 0
}

// readAttrs reads every attribute of the object id in name order. It
// returns nil when there are none.
func readAttrs(id int64) (*tree.Node, error) {
	obj := C.hid_t(id)
	n := int(C.dd_num_attrs(obj))
	if n < 0 {
		return nil, fmt.Errorf("%w: listing attributes", errHDF5)
	}
	if n == 0 {
		return nil, nil
	}
	res := tree.New()
	for i := range n {
		name, v, err := readAttr(obj, i)
		if err != nil {
			return nil, err
		}
		res.Put(name, v)
	}
	return res, nil
}

func readAttr(obj C.hid_t, idx int) (string, value.Value, error) {
	attr := C.dd_open_attr(obj, C.hsize_t(idx))
	if attr < 0 {
		return "", value.Value{}, fmt.Errorf("%w: opening attribute %d", errHDF5, idx)
	}
	defer C.H5Aclose(attr)
	name, err := attrName(attr)
	if err != nil {
		return "", value.Value{}, err
	}
	shape, err := attrShape(attr)
	if err != nil {
		return "", value.Value{}, fmt.Errorf("attribute %q: %w", name, err)
	}
	typ := C.H5Aget_type(attr)
	if typ < 0 {
		return "", value.Value{}, fmt.Errorf("%w: type of attribute %q", errHDF5, name)
	}
	defer C.H5Tclose(typ)
	v, err := attrValue(attr, typ, shape)
	if err != nil {
		return "", value.Value{}, fmt.Errorf("attribute %q: %w", name, err)
	}
	return name, v, nil
}

func attrName(attr C.hid_t) (string, error) {
	n := C.H5Aget_name(attr, 0, nil)
	if n < 0 {
		return "", fmt.Errorf("%w: attribute name", errHDF5)
	}
	buf := make([]byte, int(n)+1)
	C.H5Aget_name(attr, C.size_t(len(buf)), (*C.char)(unsafe.Pointer(&buf[0])))
	return string(buf[:n]), nil
}

func attrShape(attr C.hid_t) ([]int, error) {
	var dims [maxAttrDims]C.hsize_t
	n := C.dd_attr_dims(attr, &dims[0], maxAttrDims)
	if n < 0 {
		return nil, fmt.Errorf("%w: attribute dataspace", errHDF5)
	}
	shape := make([]int, int(n))
	for i := range shape {
		shape[i] = int(dims[i])
	}
	return shape, nil
}

func attrValue(attr, typ C.hid_t, shape []int) (value.Value, error) {
	n := 1
	for _, d := range shape {
		n *= d
	}
	switch C.H5Tget_class(typ) {
	case C.H5T_INTEGER:
		if C.dd_is_signed(typ) == 0 {
			buf := make([]uint64, n)
			if n > 0 && C.dd_read_uint64(attr, (*C.ulonglong)(unsafe.Pointer(&buf[0]))) < 0 {
				return value.Value{}, errHDF5
			}
			return numeric(shape, buf)
		}
		buf := make([]int64, n)
		if n > 0 && C.dd_read_int64(attr, (*C.longlong)(unsafe.Pointer(&buf[0]))) < 0 {
			return value.Value{}, errHDF5
		}
		return numeric(shape, buf)
	case C.H5T_FLOAT:
		buf := make([]float64, n)
		if n > 0 && C.dd_read_double(attr, (*C.double)(unsafe.Pointer(&buf[0]))) < 0 {
			return value.Value{}, errHDF5
		}
		return numeric(shape, buf)
	case C.H5T_STRING:
		strs, err := readStrings(attr, typ, n)
		if err != nil {
			return value.Value{}, err
		}
		if len(shape) == 0 {
			return value.FromString(strs[0]), nil
		}
		return value.Of(strs), nil
	}
	return value.Value{}, fmt.Errorf("unsupported datatype class %d", C.H5Tget_class(typ))
}

// numeric returns a scalar for a 0-d attribute and an array otherwise.
func numeric[T int64 | uint64 | float64](shape []int, buf []T) (value.Value, error) {
	if len(shape) == 0 {
		return value.Of(buf[0]), nil
	}
	a, err := value.NewArray(shape, buf)
	if err != nil {
		return value.Value{}, err
	}
	return value.FromArray(a), nil
}

func readStrings(attr, typ C.hid_t, n int) ([]string, error) {
	res := make([]string, n)
	if n == 0 {
		return res, nil
	}
	if C.H5Tis_variable_str(typ) > 0 {
		ptrs := make([]*C.char, n)
		if C.dd_read_vlen_strings(attr, &ptrs[0]) < 0 {
			return nil, errHDF5
		}
		for i, p := range ptrs {
			if p == nil {
				continue
			}
			res[i] = C.GoString(p)
			C.H5free_memory(unsafe.Pointer(p))
		}
		return res, nil
	}
	size := int(C.H5Tget_size(typ))
	buf := make([]byte, size*n)
	if C.H5Aread(attr, typ, unsafe.Pointer(&buf[0])) < 0 {
		return nil, errHDF5
	}
	for i := range res {
		res[i] = strings.TrimRight(string(buf[i*size:(i+1)*size]), "\x00 ")
	}
	return res, nil
}
