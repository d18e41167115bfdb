package tree

import (
	"errors"

	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// ToPortable returns a copy of n in which every leaf has been mapped onto
// the portable subset by value.Portable. The first leaf that cannot be
// mapped fails the whole conversion with a *value.EncodingError whose Key
// is the leaf's keypath. ToPortable is idempotent.
func (n *Node) ToPortable(opts ...PathOption) (*Node, error) {
	return n.toPortable(pathOpts(opts).sep, "")
}

func (n *Node) toPortable(sep, at string) (*Node, error) {
	res := &Node{
		keys:    make([]string, 0, len(n.keys)),
		entries: make([]Entry, 0, len(n.keys)),
		index:   make(map[string]int, len(n.keys)),
	}
	for i, k := range n.keys {
		e := n.entries[i]
		p := kpath.Join(sep, at, k)
		if e.IsNode() {
			c, err := e.node.toPortable(sep, p)
			if err != nil {
				return nil, err
			}
			res.put(k, Branch(c))
			continue
		}
		pv, err := value.Portable(e.value)
		if err != nil {
			var encErr *value.EncodingError
			if errors.As(err, &encErr) {
				encErr.Key = p + encErr.Key
			}
			return nil, err
		}
		res.put(k, Entry{kind: leafEntry, value: pv.Copy()})
	}
	return res, nil
}
