package tree

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/notation"
)

const (
	uncertaintyPrefix = "u_"
	unitsKey          = "units"
)

// Measure renders the direct leaf key in shorthand scientific notation,
// as in "x = 1.23(4)E-2 keV". The uncertainty is read from the leaf
// "u_"+key and the unit from the leaf key of the child node "units", both
// optional.
func (n *Node) Measure(key string, opts ...notation.Option) (string, error) {
	e, ok := n.direct(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	v, ok := e.value.Float64()
	if !e.IsLeaf() || !ok {
		return "", fmt.Errorf("%q holds %s, not a real number", key, describe(e))
	}
	var unc float64
	if ue, ok := n.direct(uncertaintyPrefix + key); ok {
		if unc, ok = ue.value.Float64(); !ok || !ue.IsLeaf() {
			return "", fmt.Errorf("%q holds %s, not a real number", uncertaintyPrefix+key, describe(ue))
		}
	}
	unit := ""
	if units, ok := n.direct(unitsKey); ok && units.IsNode() {
		if ue, ok := units.node.direct(key); ok && ue.IsLeaf() {
			unit = ue.value.String()
		}
	}
	return notation.Measure(key, v, unc, unit, opts...), nil
}

func describe(e Entry) string {
	if e.IsNode() {
		return "a node"
	}
	return e.value.TypeString()
}
