// Package zarr is a container backend for Zarr v2 directory stores.
//
// Importing the package registers it for the ".zarr" extension:
//
//	import _ "github.com/SmnThms/Data-Analysis-Tools/container/zarr"
//
// Groups are directories holding a .zgroup file, arrays directories
// holding a .zarray file, and attributes are read from .zattrs. Chunks
// may be uncompressed or compressed with zstd, gzip or zlib. Only C order
// arrays without filters are supported.
package zarr
