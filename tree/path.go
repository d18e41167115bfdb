package tree

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// Set stores v at keypath. Nested-mapping-like values are converted to
// fresh Nodes, everything else is stored as a leaf via value.Of. Missing
// intermediate nodes are created; descending through a leaf is an error
// wrapping ErrNotNode.
//
// A keypath naming an existing direct key is overwritten in place even if
// it contains the separator.
func (n *Node) Set(keypath string, v any, opts ...PathOption) error {
	ps := pathOpts(opts)
	return n.set(keypath, entryOf(v), ps.sep, "")
}

func (n *Node) set(kp string, e Entry, sep, at string) error {
	if n.Has(kp) {
		n.put(kp, e)
		return nil
	}
	head, rest, ok := kpath.Split(kp, sep)
	if !ok {
		n.put(kp, e)
		return nil
	}
	at = kpath.Join(sep, at, head)
	child, present := n.direct(head)
	switch {
	case !present:
		c := New()
		if err := c.set(rest, e, sep, at); err != nil {
			return err
		}
		n.put(head, Branch(c))
		return nil
	case !child.IsNode():
		return fmt.Errorf("%w: %q holds a %s", ErrNotNode, at, child.value.Kind)
	}
	return child.node.set(rest, e, sep, at)
}

// Get resolves keypath and returns the entry found, or def. A direct key
// wins over a keypath; otherwise the keypath is split on its first
// separator and the remainder resolved in the head node.
//
// The returned entry aliases the tree.
func (n *Node) Get(keypath string, def Entry, opts ...PathOption) Entry {
	if e, ok := n.Lookup(keypath, opts...); ok {
		return e
	}
	return def
}

// Lookup is Get reporting absence with a boolean.
func (n *Node) Lookup(keypath string, opts ...PathOption) (Entry, bool) {
	return n.lookup(keypath, pathOpts(opts).sep)
}

func (n *Node) lookup(kp, sep string) (Entry, bool) {
	if e, ok := n.direct(kp); ok {
		return e, true
	}
	head, rest, ok := kpath.Split(kp, sep)
	if !ok {
		return Entry{}, false
	}
	child, ok := n.direct(head)
	if !ok || !child.IsNode() {
		return Entry{}, false
	}
	return child.node.lookup(rest, sep)
}

// GetAll resolves each keypath, returning the results in the same order.
func (n *Node) GetAll(keypaths []string, def Entry, opts ...PathOption) []Entry {
	sep := pathOpts(opts).sep
	res := make([]Entry, len(keypaths))
	for i, kp := range keypaths {
		e, ok := n.lookup(kp, sep)
		if !ok {
			e = def
		}
		res[i] = e
	}
	return res
}

// Value returns the leaf value at keypath. ok is false when keypath is
// absent or addresses a node.
func (n *Node) Value(keypath string, opts ...PathOption) (v value.Value, ok bool) {
	e, found := n.Lookup(keypath, opts...)
	if !found || !e.IsLeaf() {
		return value.Null(), false
	}
	return e.value, true
}

// Child returns the node at keypath, or nil.
func (n *Node) Child(keypath string, opts ...PathOption) *Node {
	e, _ := n.Lookup(keypath, opts...)
	return e.node
}

// Pop removes and returns the entry at keypath. Ancestors emptied by the
// removal are removed in turn, up to but excluding n. An unresolvable
// segment yields an error wrapping ErrKeyNotFound.
func (n *Node) Pop(keypath string, opts ...PathOption) (Entry, error) {
	ps := pathOpts(opts)
	e, ok := n.pop(keypath, ps.sep)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrKeyNotFound, keypath)
	}
	return e, nil
}

func (n *Node) pop(kp, sep string) (Entry, bool) {
	if e, ok := n.remove(kp); ok {
		return e, true
	}
	head, rest, ok := kpath.Split(kp, sep)
	if !ok {
		return Entry{}, false
	}
	child, ok := n.direct(head)
	if !ok || !child.IsNode() {
		return Entry{}, false
	}
	e, ok := child.node.pop(rest, sep)
	if ok && child.node.Len() == 0 {
		n.remove(head)
	}
	return e, ok
}

// Put stores v at the direct key, which is never interpreted as a
// keypath. Conversion follows Set.
func (n *Node) Put(key string, v any) {
	n.put(key, entryOf(v))
}
