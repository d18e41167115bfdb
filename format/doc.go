// Package format identifies the file formats a tree can be loaded from or
// saved to.
//
// # Usage
//
//	f, err := format.FromPath("run12/data.json") // format.JSONFormat
//	f, err = format.ParseFormat("csv")            // format.CSVFormat
//
// Dispatch is purely on the file name extension, compared case
// insensitively.
//
// # Related Packages
//
//   - github.com/SmnThms/Data-Analysis-Tools/load - loads trees by format
//   - github.com/SmnThms/Data-Analysis-Tools/encode - saves trees by format
package format
