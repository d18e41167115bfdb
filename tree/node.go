package tree

import (
	"io"
	"iter"
	"slices"

	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// Node is an ordered mapping from keys to entries. Iteration follows
// insertion order; lookups go through an index.
//
// A Node owns its entries. Entries returned by accessors alias the tree,
// while every entry stored into a Node is a fresh copy, so a Node never
// contains itself or one of its ancestors.
type Node struct {
	keys    []string
	entries []Entry
	index   map[string]int

	source io.Closer
}

func New() *Node {
	return &Node{index: map[string]int{}}
}

type entryKind uint8

const (
	absentEntry entryKind = iota
	leafEntry
	nodeEntry
)

// Entry is either a leaf value or a child Node. The zero Entry is absent.
type Entry struct {
	kind  entryKind
	node  *Node
	value value.Value
}

// Leaf returns a leaf entry holding value.Of(v).
func Leaf(v any) Entry {
	return Entry{kind: leafEntry, value: value.Of(v)}
}

// Branch returns an entry holding n itself.
func Branch(n *Node) Entry {
	return Entry{kind: nodeEntry, node: n}
}

func (e Entry) Exists() bool { return e.kind != absentEntry }
func (e Entry) IsNode() bool { return e.kind == nodeEntry }
func (e Entry) IsLeaf() bool { return e.kind == leafEntry }

// Node returns the child node, or nil for leaves.
func (e Entry) Node() *Node {
	return e.node
}

// Value returns the leaf value, or null for nodes.
func (e Entry) Value() value.Value {
	return e.value
}

func (e Entry) Copy() Entry {
	switch e.kind {
	case nodeEntry:
		return Branch(e.node.Copy())
	case leafEntry:
		return Entry{kind: leafEntry, value: e.value.Copy()}
	}
	return e
}

func (e Entry) String() string {
	switch e.kind {
	case nodeEntry:
		return e.node.String()
	case leafEntry:
		return e.value.String()
	}
	return "<absent>"
}

// EntriesEqual reports whether a and b are structurally equal.
func EntriesEqual(a, b Entry) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case nodeEntry:
		return Equal(a.node, b.node)
	case leafEntry:
		return value.Equal(a.value, b.value)
	}
	return true
}

// Equal reports whether a and b hold the same keys in the same order with
// equal entries.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k || !EntriesEqual(a.entries[i], b.entries[i]) {
			return false
		}
	}
	return true
}

// EqualUnordered is Equal ignoring key order at every level.
func EqualUnordered(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		be, ok := b.direct(k)
		if !ok {
			return false
		}
		ae := a.entries[i]
		if ae.kind != be.kind {
			return false
		}
		if ae.IsNode() {
			if !EqualUnordered(ae.node, be.node) {
				return false
			}
			continue
		}
		if !value.Equal(ae.value, be.value) {
			return false
		}
	}
	return true
}

func (n *Node) Len() int {
	return len(n.keys)
}

// Keys returns the direct keys in insertion order.
func (n *Node) Keys() []string {
	return slices.Clone(n.keys)
}

// All iterates over direct entries in insertion order.
func (n *Node) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for i, k := range n.keys {
			if !yield(k, n.entries[i]) {
				return
			}
		}
	}
}

// Has reports whether key is a direct key of n.
func (n *Node) Has(key string) bool {
	_, ok := n.index[key]
	return ok
}

// Item returns the direct entry at key as a *Node or a value.Value, nil
// if absent. It makes *Node a Mapping.
func (n *Node) Item(key string) any {
	e, ok := n.direct(key)
	if !ok {
		return nil
	}
	if e.IsNode() {
		return e.node
	}
	return e.value
}

// Delete removes a direct key, reporting whether it was present.
func (n *Node) Delete(key string) bool {
	_, ok := n.remove(key)
	return ok
}

// Copy returns a deep copy of n. The copy does not own n's source.
func (n *Node) Copy() *Node {
	res := &Node{
		keys:    slices.Clone(n.keys),
		entries: make([]Entry, len(n.entries)),
		index:   make(map[string]int, len(n.keys)),
	}
	for i, k := range n.keys {
		res.entries[i] = n.entries[i].Copy()
		res.index[k] = i
	}
	return res
}

// Attach hands ownership of an external source handle to n, closing any
// previously attached one.
func (n *Node) Attach(c io.Closer) error {
	var err error
	if n.source != nil && n.source != c {
		err = n.source.Close()
	}
	n.source = c
	return err
}

// Source returns the attached source handle, if any.
func (n *Node) Source() io.Closer {
	return n.source
}

// Close releases the attached source handle. Entries already materialized
// stay valid. Close is idempotent.
func (n *Node) Close() error {
	if n.source == nil {
		return nil
	}
	err := n.source.Close()
	n.source = nil
	return err
}

func (n *Node) direct(key string) (Entry, bool) {
	i, ok := n.index[key]
	if !ok {
		return Entry{}, false
	}
	return n.entries[i], true
}

// put stores e at key, in place if the key exists.
func (n *Node) put(key string, e Entry) {
	if n.index == nil {
		n.index = map[string]int{}
	}
	if i, ok := n.index[key]; ok {
		n.entries[i] = e
		return
	}
	n.index[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.entries = append(n.entries, e)
}

func (n *Node) remove(key string) (Entry, bool) {
	i, ok := n.index[key]
	if !ok {
		return Entry{}, false
	}
	e := n.entries[i]
	n.keys = slices.Delete(n.keys, i, i+1)
	n.entries = slices.Delete(n.entries, i, i+1)
	delete(n.index, key)
	for j := i; j < len(n.keys); j++ {
		n.index[n.keys[j]] = j
	}
	return e, true
}
