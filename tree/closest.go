package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// GetBelow returns the direct entry with the greatest key <= key.
//
// Keys are compared as numbers when every key of n parses as one, and as
// strings otherwise. Unlike Get, a query with no satisfying key is an
// error wrapping ErrLookup rather than a default.
func (n *Node) GetBelow(key string) (Entry, error) {
	return n.closest(key, -1)
}

// GetAbove returns the direct entry with the least key >= key. See
// GetBelow for ordering and errors.
func (n *Node) GetAbove(key string) (Entry, error) {
	return n.closest(key, 1)
}

// closest scans the direct keys once. dir < 0 selects the greatest key
// not above key, dir > 0 the least key not below it.
func (n *Node) closest(key string, dir int) (Entry, error) {
	cmp, err := n.keyOrder(key)
	if err != nil {
		return Entry{}, err
	}
	best := -1
	for i, k := range n.keys {
		c := cmp(k, key)
		if c*dir < 0 {
			continue
		}
		if best < 0 || cmp(k, n.keys[best])*dir < 0 {
			best = i
		}
	}
	if best < 0 {
		bound := "<="
		if dir > 0 {
			bound = ">="
		}
		return Entry{}, fmt.Errorf("%w: no key %s %q", ErrLookup, bound, key)
	}
	return n.entries[best], nil
}

func (n *Node) keyOrder(key string) (func(a, b string) int, error) {
	if len(n.keys) == 0 {
		return nil, fmt.Errorf("%w: no keys", ErrLookup)
	}
	nums := make(map[string]float64, len(n.keys)+1)
	for _, k := range n.keys {
		f, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return strings.Compare, nil
		}
		nums[k] = f
	}
	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not comparable with numeric keys", ErrLookup, key)
	}
	nums[key] = f
	return func(a, b string) int {
		x, y := nums[a], nums[b]
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}, nil
}
