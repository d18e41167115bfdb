package hdf5

import (
	"errors"
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/format"
)

var exts = []string{".h5", ".hdf5"}

// ErrNotBuilt reports that the binary was built without HDF5 support.
var ErrNotBuilt = fmt.Errorf("%w: hdf5 support not built in (rebuild with -tags hdf5, needs cgo and libhdf5)", format.ErrUnsupportedFormat)

var errHDF5 = errors.New("hdf5 library error")
