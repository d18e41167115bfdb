package tree

import (
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/kpath"
)

// Search returns the keypaths of every entry whose key equals key, or
// contains it with Partial(true). Results follow a depth first walk in
// insertion order, a node's own keypath before those of its descendants.
func (n *Node) Search(key string, opts ...SearchOption) []string {
	ss := searchOpts(opts)
	var res []string
	n.Walk(func(kp string, k string, _ Entry) bool {
		if k == key || (ss.partial && strings.Contains(k, key)) {
			res = append(res, kp)
		}
		return true
	}, Separator(ss.sep))
	return res
}

// Walk calls fn for every entry of n depth first in insertion order,
// with the entry's keypath. Returning false from fn skips the entry's
// descendants.
func (n *Node) Walk(fn func(keypath, key string, e Entry) bool, opts ...PathOption) {
	n.walk(fn, pathOpts(opts).sep, "")
}

func (n *Node) walk(fn func(keypath, key string, e Entry) bool, sep, at string) {
	for i, k := range n.keys {
		e := n.entries[i]
		p := kpath.Join(sep, at, k)
		if !fn(p, k, e) || !e.IsNode() {
			continue
		}
		e.node.walk(fn, sep, p)
	}
}
