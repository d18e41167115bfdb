package load

import (
	"fmt"
	"os"

	"github.com/SmnThms/Data-Analysis-Tools/container"
	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/format"
	"github.com/SmnThms/Data-Analysis-Tools/parse"
	"github.com/SmnThms/Data-Analysis-Tools/tree"

	_ "github.com/SmnThms/Data-Analysis-Tools/container/hdf5"
	_ "github.com/SmnThms/Data-Analysis-Tools/container/zarr"
)

type loadOpts struct {
	parse      []parse.ParseOption
	keepSource bool
}

type LoadOption func(*loadOpts)

// Delimiter sets the field delimiter of CSV files (default ';').
func Delimiter(r rune) LoadOption {
	return func(o *loadOpts) { o.parse = append(o.parse, parse.Delimiter(r)) }
}

// CommentMarker sets the marker stripped from the header of table files
// (default "#").
func CommentMarker(s string) LoadOption {
	return func(o *loadOpts) { o.parse = append(o.parse, parse.CommentMarker(s)) }
}

// KeepSource keeps a container open after loading, owned by the returned
// root: closing the root closes it. By default containers are closed as
// soon as their data is materialized.
func KeepSource(v bool) LoadOption {
	return func(o *loadOpts) { o.keepSource = v }
}

// Load reads the file at path into a tree, choosing the parser from the
// file extension. Unknown extensions yield format.ErrUnsupportedFormat.
func Load(path string, opts ...LoadOption) (*tree.Node, error) {
	o := &loadOpts{}
	for _, opt := range opts {
		opt(o)
	}
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("load %s as %s\n", path, f)
	}
	if f == format.ContainerFormat {
		return loadContainer(path, o)
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var n *tree.Node
	switch f {
	case format.JSONFormat:
		n, err = parse.JSONReader(r)
	case format.TableFormat:
		n, err = parse.Table(r, o.parse...)
	case format.CSVFormat:
		n, err = parse.CSV(r, o.parse...)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

func loadContainer(path string, o *loadOpts) (*tree.Node, error) {
	c, err := container.Open(path)
	if err != nil {
		return nil, err
	}
	n, err := container.ToTree(c)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !o.keepSource {
		if err := c.Close(); err != nil {
			return nil, err
		}
		return n, nil
	}
	if err := n.Attach(c); err != nil {
		c.Close()
		return nil, err
	}
	return n, nil
}
