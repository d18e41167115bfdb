package tree

import (
	"errors"
	"fmt"
)

var errOddRename = errors.New("odd argument count")

// Rename renames direct keys of n. Arguments are old, new pairs applied
// in order. An old key that is absent is skipped; an entry already stored
// at new is replaced. The renamed entry keeps its position.
//
// Rename is not keypath aware: to rename a nested key, Rename its parent
// node.
func (n *Node) Rename(oldNew ...string) error {
	if len(oldNew)%2 == 1 {
		return fmt.Errorf("rename: %w %d", errOddRename, len(oldNew))
	}
	for i := 0; i < len(oldNew); i += 2 {
		from, to := oldNew[i], oldNew[i+1]
		if from == to || !n.Has(from) {
			continue
		}
		n.remove(to)
		j := n.index[from]
		n.keys[j] = to
		delete(n.index, from)
		n.index[to] = j
	}
	return nil
}
