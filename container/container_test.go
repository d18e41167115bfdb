package container

import (
	"errors"
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/format"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
	"github.com/google/go-cmp/cmp"
)

type memGroup struct {
	names   []string
	members map[string]Object
	attrs   *tree.Node
}

func (g *memGroup) Attrs() (*tree.Node, error) { return g.attrs, nil }
func (g *memGroup) Members() ([]string, error) { return g.names, nil }
func (g *memGroup) Member(name string) (Object, error) {
	o, ok := g.members[name]
	if !ok {
		return nil, errors.New("no such member")
	}
	return o, nil
}

type memDataset struct {
	arr   *value.Array
	attrs *tree.Node
}

func (d *memDataset) Attrs() (*tree.Node, error)  { return d.attrs, nil }
func (d *memDataset) Shape() []int                { return d.arr.Shape }
func (d *memDataset) DType() value.DType          { return d.arr.DType }
func (d *memDataset) Read() (*value.Array, error) { return d.arr, nil }

func group(attrs map[string]any, kv ...any) *memGroup {
	g := &memGroup{members: map[string]Object{}}
	if attrs != nil {
		g.attrs = tree.MustFrom(attrs)
	}
	for i := 0; i < len(kv); i += 2 {
		name := kv[i].(string)
		g.names = append(g.names, name)
		g.members[name] = kv[i+1].(Object)
	}
	return g
}

func TestToTree(t *testing.T) {
	signal := value.Vector([]float64{1, 2, 3})
	root := group(map[string]any{"experiment": "run1", "T": 4.2},
		"raw", group(nil,
			"signal", &memDataset{arr: signal},
			"counts", &memDataset{arr: value.Vector([]int32{7, 8}), attrs: tree.MustFrom(map[string]any{"unit": "n"})},
		),
		"meta", group(map[string]any{"meta": "collides", "x": 1}, "meta", &memDataset{arr: value.Vector([]bool{true})}),
	)
	n, err := ToTree(root)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"raw", "meta", "T", "experiment"}, n.Keys()); diff != "" {
		t.Errorf("root keys (-want +got):\n%s", diff)
	}
	v, _ := n.Value("raw.signal")
	if v.Kind != value.ArrayKind || !v.Array.Equal(signal) {
		t.Errorf("raw.signal = %s", v)
	}
	if diff := cmp.Diff([]string{"data", "unit"}, n.Child("raw.counts").Keys()); diff != "" {
		t.Errorf("dataset with attributes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"meta", "attrs"}, n.Child("meta").Keys()); diff != "" {
		t.Errorf("colliding attributes (-want +got):\n%s", diff)
	}
	if v, _ := n.Value("meta.attrs.meta"); v.Str != "collides" {
		t.Errorf("meta.attrs.meta = %s", v)
	}
}

func TestToTreeMemberError(t *testing.T) {
	g := &memGroup{names: []string{"ghost"}, members: map[string]Object{}}
	if _, err := ToTree(g); !errors.Is(err, ErrContainer) {
		t.Errorf("expected ErrContainer, got %v", err)
	}
}

func TestToTreeAttrsMemberTaken(t *testing.T) {
	g := group(map[string]any{"attrs": "x", "units": "m"},
		"attrs", &memDataset{arr: value.Vector([]int32{1})},
		"units", &memDataset{arr: value.Vector([]int32{2})},
	)
	if _, err := ToTree(g); !errors.Is(err, ErrContainer) {
		t.Errorf("expected ErrContainer, got %v", err)
	}
	d := group(nil, "d", &memDataset{
		arr:   value.Vector([]int32{1}),
		attrs: tree.MustFrom(map[string]any{"data": 1, "attrs": 2}),
	})
	n, err := ToTree(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"data", "attrs"}, n.Child("d").Keys()); diff != "" {
		t.Errorf("dataset attributes (-want +got):\n%s", diff)
	}
}

type memFile struct {
	*memGroup
	closed bool
}

func (f *memFile) Close() error {
	f.closed = true
	return nil
}

func TestRegistry(t *testing.T) {
	f := &memFile{memGroup: group(nil, "x", &memDataset{arr: value.Vector([]int8{1})})}
	Register(".mem", func(path string) (File, error) { return f, nil })
	got, err := Open("some/file.MEM")
	if err != nil {
		t.Fatal(err)
	}
	if got != File(f) {
		t.Errorf("unexpected file %v", got)
	}
	if _, err := Open("x.h5"); !errors.Is(err, format.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
