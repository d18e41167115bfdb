package tree

import (
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
)

// Select returns a new tree holding only the given keypaths, each at its
// original relative position. Keypaths sharing a prefix share one
// subtree, and a keypath nested in another selected one is absorbed by
// it. A keypath absent from n is selected as a null leaf.
func (n *Node) Select(keypaths []string, opts ...PathOption) *Node {
	ps := pathOpts(opts)
	res := New()
	for _, kp := range keypaths {
		e, ok := n.lookup(kp, ps.sep)
		if ok {
			e = e.Copy()
		} else {
			e = Leaf(nil)
		}
		res.merge(nest(kpath.SplitAll(kp, ps.sep), e), &mergeState{overwrite: true, sep: ps.sep}, "")
	}
	return res
}

// nest wraps e in one node per key, innermost last.
func nest(keys []string, e Entry) *Node {
	for i := len(keys) - 1; i > 0; i-- {
		c := New()
		c.put(keys[i], e)
		e = Branch(c)
	}
	res := New()
	res.put(keys[0], e)
	return res
}
