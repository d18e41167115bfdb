package container

import (
	"fmt"

	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
)

const (
	// AttrsKey holds the attributes of an object when they collide with
	// its members.
	AttrsKey = "attrs"
	// DataKey holds the array of a dataset carrying attributes.
	DataKey = "data"
)

// ToTree realizes g into a tree. Groups become nodes and datasets array
// leaves. Attributes are merged into the node of their object unless a
// name collides with a member, in which case they all go under AttrsKey;
// if a member is itself named AttrsKey the conversion fails.
// A dataset with attributes becomes a node holding its array under
// DataKey next to its attributes.
func ToTree(g Group) (*tree.Node, error) {
	return groupTree(g, "/")
}

func groupTree(g Group, at string) (*tree.Node, error) {
	names, err := g.Members()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrContainer, at, err)
	}
	if debug.Load() {
		debug.Logf("container group %s: %d members\n", at, len(names))
	}
	res := tree.New()
	for _, name := range names {
		obj, err := g.Member(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s: %w", ErrContainer, at, name, err)
		}
		switch o := obj.(type) {
		case Group:
			child, err := groupTree(o, at+name+"/")
			if err != nil {
				return nil, err
			}
			res.Put(name, child)
		case Dataset:
			if err := putDataset(res, name, o, at+name); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %s%s: unknown member %T", ErrContainer, at, name, obj)
		}
	}
	attrs, err := g.Attrs()
	if err != nil {
		return nil, fmt.Errorf("%w: %s attributes: %w", ErrContainer, at, err)
	}
	if err := mergeAttrs(res, attrs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrContainer, at, err)
	}
	return res, nil
}

func putDataset(parent *tree.Node, name string, d Dataset, at string) error {
	arr, err := d.Read()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContainer, at, err)
	}
	if debug.Load() {
		debug.Logf("container dataset %s: %s %v\n", at, arr.DType, arr.Shape)
	}
	attrs, err := d.Attrs()
	if err != nil {
		return fmt.Errorf("%w: %s attributes: %w", ErrContainer, at, err)
	}
	if attrs == nil || attrs.Len() == 0 {
		parent.Put(name, arr)
		return nil
	}
	node := tree.New()
	node.Put(DataKey, arr)
	if err := mergeAttrs(node, attrs); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContainer, at, err)
	}
	parent.Put(name, node)
	return nil
}

func mergeAttrs(n, attrs *tree.Node) error {
	if attrs == nil || attrs.Len() == 0 {
		return nil
	}
	for k := range attrs.All() {
		if !n.Has(k) {
			continue
		}
		if n.Has(AttrsKey) {
			return fmt.Errorf("attribute %q collides with a member and %q is taken", k, AttrsKey)
		}
		n.Put(AttrsKey, attrs)
		return nil
	}
	for k, e := range attrs.All() {
		n.Put(k, e)
	}
	return nil
}
