// Package parse reads the text formats a tree can be loaded from.
//
//   - JSON: an object at top level, read in document order. Integers
//     become int leaves, other numbers float leaves, arrays list leaves.
//   - Table: numeric columns with a one line header naming them, as
//     written by acquisition software ("#t\tv1\tv2"). Each named column
//     becomes a float64 array leaf.
//   - CSV: fields of a delimited file, ';' by default, as a list of rows
//     of strings under the key "data".
//
// # Related Packages
//
//   - github.com/SmnThms/Data-Analysis-Tools/load - dispatches on file extension
package parse
