// Package encode writes trees as JSON.
//
//	err := encode.Encode(n, os.Stdout)
//	err = encode.Save(n, "run12/summary.json")
//
// Every leaf is reduced to its portable form first (see
// tree.Node.ToPortable), so rationals, decimals and complex numbers are
// written as strings and arrays as nested lists.
//
// # Related Packages
//
//   - github.com/SmnThms/Data-Analysis-Tools/load - reads trees back
package encode
