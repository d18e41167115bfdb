// Package container reads grouped containers, hierarchical files where
// groups hold named groups and datasets and every object may carry
// attributes, such as HDF5 files or Zarr stores.
//
// Backends register an Opener per file extension; Open dispatches on the
// extension of its path. The Zarr backend is enabled with
//
//	import _ "github.com/SmnThms/Data-Analysis-Tools/container/zarr"
//
// ToTree realizes a whole container into a tree.Node.
package container
