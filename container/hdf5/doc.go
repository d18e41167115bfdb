// Package hdf5 is a container backend for HDF5 files.
//
// Importing the package registers it for the ".h5" and ".hdf5"
// extensions:
//
//	import _ "github.com/SmnThms/Data-Analysis-Tools/container/hdf5"
//
// Reading HDF5 needs cgo and the HDF5 C library, so the backend is only
// built with the hdf5 build tag:
//
//	go build -tags hdf5 ./...
//
// Without the tag the extensions stay registered and opening a file
// fails with ErrNotBuilt, which wraps format.ErrUnsupportedFormat.
//
// Groups map to container groups and datasets of integer or float
// elements to container datasets. Attributes of groups and datasets may
// be integers, floats or strings; numeric attributes are widened to
// int64, uint64 or float64.
package hdf5
