// Package load builds trees from files.
//
//	n, err := load.Load("run12/spectrum.dat")
//	n, err = load.Load("run12/raw.zarr", load.KeepSource(true))
//	defer n.Close()
//
// The format follows the extension, see format.FromPath. Containers are
// opened through the backends registered with package container; load
// registers the Zarr backend. No backend is available for HDF5 files,
// which fail with format.ErrUnsupportedFormat.
package load
