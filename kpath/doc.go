// Package kpath splits and joins keypaths.
//
// A keypath is a sequence of keys joined by a separator, "." unless the
// caller chooses otherwise:
//
//	head, rest, ok := kpath.Split("a.b.c", ".") // "a", "b.c", true
//	kpath.Join(".", "a", "b", "c")              // "a.b.c"
//	kpath.Parse("a..b", ".")                    // ErrEmptySegment
//
// The separator is reserved: a key containing it can still be used
// directly but cannot be addressed through a multi-segment keypath.
//
// # Related Packages
//
//   - github.com/SmnThms/Data-Analysis-Tools/tree - keypath navigation
package kpath
