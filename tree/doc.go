// Package tree provides the tree dictionary, an ordered nested mapping
// addressed by keypaths.
//
// # Overview
//
// A Node maps string keys to entries in insertion order. An Entry is
// either a leaf holding a value.Value or a child Node, so a tree of Nodes
// can hold arbitrarily nested heterogeneous data. Keypaths such as
// "a.b.c" address entries below the root by repeated descent.
//
// # Building Trees
//
//	n := tree.New()
//	n.Set("sample.temperature", 4.2)
//	n.Set("sample.runs", []int{1, 2, 3})
//	m, err := tree.From(map[string]any{"a": map[string]any{"b": 1}})
//
// Values stored with Set, From, Merge or Select are always copied, so a
// tree never aliases another tree or itself.
//
// # Navigation
//
// Get resolves a keypath and returns a default when it is absent; Lookup
// reports absence with a boolean. GetBelow and GetAbove find the closest
// direct key under a total order and fail with ErrLookup when no key
// satisfies the bound. Pop removes an entry and every ancestor it leaves
// empty.
//
// # Structural Operations
//
//   - Merge: structural union, failing with *MergeConflictError on
//     collisions unless Overwrite(true)
//   - Select: sub-tree holding a set of keypaths
//   - Search: keypaths of every key matching a name
//   - Rename: renames root-level keys in place
//
// # Encoding
//
// ToPortable maps every leaf onto the portable subset of value.Value,
// reporting the keypath of the first leaf that cannot be encoded.
//
// # Related Packages
//
//   - github.com/SmnThms/Data-Analysis-Tools/value - leaf values
//   - github.com/SmnThms/Data-Analysis-Tools/load - building trees from files
//   - github.com/SmnThms/Data-Analysis-Tools/encode - writing trees as JSON
package tree
