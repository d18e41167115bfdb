package tree

import (
	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
)

// Merge merges other into n.
//
// Keys present on one side only are copied. Keys holding nodes on both
// sides are merged recursively. Any other key present on both sides is a
// collision: by default it fails with a *MergeConflictError naming the
// keypath; with Overwrite(true) the value from other replaces the one in
// n, unless the two are equal.
//
// Merge is atomic: on error n is left untouched. New keys are appended
// in other's order.
func (n *Node) Merge(other *Node, opts ...MergeOption) error {
	ms := mergeOpts(opts)
	if debug.Merge() {
		debug.Logf("merge overwrite=%t\n%s<<\n%s", ms.overwrite, n, other)
	}
	work := n.Copy()
	if err := work.merge(other, ms, ""); err != nil {
		if debug.Merge() {
			debug.Logf("merge failed: %v\n", err)
		}
		return err
	}
	n.keys, n.entries, n.index = work.keys, work.entries, work.index
	return nil
}

func (n *Node) merge(other *Node, ms *mergeState, at string) error {
	for i, k := range other.keys {
		oe := other.entries[i]
		e, ok := n.direct(k)
		if !ok {
			n.put(k, oe.Copy())
			continue
		}
		p := kpath.Join(ms.sep, at, k)
		if e.IsNode() && oe.IsNode() {
			if err := e.node.merge(oe.node, ms, p); err != nil {
				return err
			}
			continue
		}
		if !ms.overwrite {
			return &MergeConflictError{Path: p}
		}
		if !EntriesEqual(e, oe) {
			n.put(k, oe.Copy())
		}
	}
	return nil
}

// Merge merges trees left to right into a fresh tree, so that
// Merge([a, b, c]) == Merge([Merge([a, b]), c]). None of the inputs is
// modified.
func Merge(trees []*Node, opts ...MergeOption) (*Node, error) {
	res := New()
	for _, t := range trees {
		if t == nil {
			continue
		}
		if err := res.merge(t, mergeOpts(opts), ""); err != nil {
			return nil, err
		}
	}
	return res, nil
}
