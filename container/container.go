package container

import (
	"errors"
	"io"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

var ErrContainer = errors.New("container error")

// Object is a member of a container: a Group or a Dataset. Attributes are
// returned as a tree, nil or empty when there are none.
type Object interface {
	Attrs() (*tree.Node, error)
}

// Group holds named members.
type Group interface {
	Object
	// Members returns member names in container order.
	Members() ([]string, error)
	// Member opens a member, which is a Group or a Dataset.
	Member(name string) (Object, error)
}

// Dataset is a typed multi-dimensional array.
type Dataset interface {
	Object
	Shape() []int
	DType() value.DType
	// Read realizes the whole dataset.
	Read() (*value.Array, error)
}

// File is an open container whose root is a Group.
type File interface {
	Group
	io.Closer
}
