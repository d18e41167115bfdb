package tree

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/SmnThms/Data-Analysis-Tools/value"
)

// Mapping is implemented by nested-mapping-like sources. Item returns
// nested mappings for sub-trees and anything else for leaves.
type Mapping interface {
	Keys() []string
	Item(key string) any
}

// Rows is a row-indexed table: row i becomes the child keyed by the
// decimal form of i, holding that row's columns.
type Rows []map[string]any

func (r Rows) Keys() []string {
	res := make([]string, len(r))
	for i := range r {
		res[i] = strconv.Itoa(i)
	}
	return res
}

func (r Rows) Item(key string) any {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

// From converts a nested-mapping-like source into a fresh Node: another
// *Node (deep copy), a Mapping, or a Go map other than a set. Go map keys
// are rendered with fmt and sorted, numerically when they are numbers.
func From(src any) (*Node, error) {
	if n, ok := src.(*Node); ok {
		if n == nil {
			return New(), nil
		}
		return n.Copy(), nil
	}
	m, ok := asMapping(src)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMapping, src)
	}
	return fromMapping(m), nil
}

// MustFrom is From for sources known to be mappings, such as literals in
// tests and examples.
func MustFrom(src any) *Node {
	n, err := From(src)
	if err != nil {
		panic(err)
	}
	return n
}

func fromMapping(m Mapping) *Node {
	res := New()
	for _, k := range m.Keys() {
		res.put(k, entryOf(m.Item(k)))
	}
	return res
}

// entryOf converts v into a fresh entry that shares nothing with v.
func entryOf(v any) Entry {
	switch x := v.(type) {
	case Entry:
		if !x.Exists() {
			return Leaf(nil)
		}
		return x.Copy()
	case *Node:
		if x == nil {
			return Leaf(nil)
		}
		return Branch(x.Copy())
	}
	if m, ok := asMapping(v); ok {
		return Branch(fromMapping(m))
	}
	return Leaf(v)
}

func asMapping(v any) (Mapping, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case Mapping:
		return x, true
	case map[string]any:
		return goMap(reflect.ValueOf(x)), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || value.IsSet(rv.Type()) {
		return nil, false
	}
	return goMap(rv), true
}

type mapAdapter struct {
	keys  []string
	items map[string]any
}

func (m *mapAdapter) Keys() []string      { return m.keys }
func (m *mapAdapter) Item(key string) any { return m.items[key] }

func goMap(rv reflect.Value) *mapAdapter {
	type kv struct {
		key     string
		num     float64
		numeric bool
	}
	res := &mapAdapter{items: make(map[string]any, rv.Len())}
	kvs := make([]kv, 0, rv.Len())
	allNumeric := true
	iter := rv.MapRange()
	for iter.Next() {
		k := fmt.Sprint(iter.Key().Interface())
		res.items[k] = iter.Value().Interface()
		f, isNum := numericKey(iter.Key())
		allNumeric = allNumeric && isNum
		kvs = append(kvs, kv{key: k, num: f, numeric: isNum})
	}
	slices.SortFunc(kvs, func(a, b kv) int {
		if allNumeric {
			if c := cmp.Compare(a.num, b.num); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.key, b.key)
	})
	res.keys = make([]string, len(kvs))
	for i := range kvs {
		res.keys[i] = kvs[i].key
	}
	return res
}

func numericKey(k reflect.Value) (float64, bool) {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(k.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(k.Uint()), true
	case reflect.Float32, reflect.Float64:
		return k.Float(), true
	}
	return 0, false
}
