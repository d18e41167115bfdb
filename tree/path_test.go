package tree

import (
	"errors"
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/value"
	"github.com/google/go-cmp/cmp"
)

func TestSetGet(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"int", 3},
		{"float", 2.5},
		{"string", "hello"},
		{"null", nil},
		{"list", []any{1, "a", []any{true}}},
		{"vector", []float64{1, 2, 3}},
		{"complex", 3 + 4i},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			if err := n.Set("a.b.c", tt.v); err != nil {
				t.Fatal(err)
			}
			got, ok := n.Value("a.b.c")
			if !ok {
				t.Fatalf("a.b.c not found in\n%s", n)
			}
			if !value.Equal(got, value.Of(tt.v)) {
				t.Errorf("got %s, want %v", got, tt.v)
			}
			sel := n.Select([]string{"a.b.c"})
			if got := sel.Get("a.b.c", Entry{}); !value.Equal(got.Value(), value.Of(tt.v)) {
				t.Errorf("selected %s, want %v", got, tt.v)
			}
		})
	}
}

func TestSetSeparator(t *testing.T) {
	n := New()
	if err := n.Set("a/b", 1, Separator("/")); err != nil {
		t.Fatal(err)
	}
	if !n.Get("a", Entry{}).IsNode() {
		t.Fatalf("expected node at a:\n%s", n)
	}
	if _, ok := n.Lookup("a/b"); ok {
		t.Error("a/b should not resolve with the default separator")
	}
	if _, ok := n.Lookup("a.b"); !ok {
		t.Error("a.b should resolve with the default separator")
	}
	if _, ok := n.Lookup("a/b", Separator("/")); !ok {
		t.Error("a/b should resolve")
	}
}

func TestSetThroughLeaf(t *testing.T) {
	n := MustFrom(map[string]any{"a": 1})
	err := n.Set("a.b", 2)
	if !errors.Is(err, ErrNotNode) {
		t.Fatalf("expected ErrNotNode, got %v", err)
	}
	if v, _ := n.Value("a"); v.Int != 1 {
		t.Errorf("a changed to %s", v)
	}
}

func TestSetDirectKeyWithSeparator(t *testing.T) {
	n := New()
	n.put("x.y", Leaf(1))
	if err := n.Set("x.y", 2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x.y"}, n.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := n.Value("x.y"); v.Int != 2 {
		t.Errorf("x.y = %s", v)
	}
}

func TestSetCopies(t *testing.T) {
	sub := MustFrom(map[string]any{"k": 1})
	n := New()
	if err := n.Set("s", sub); err != nil {
		t.Fatal(err)
	}
	sub.Set("k", 99)
	if v, _ := n.Value("s.k"); v.Int != 1 {
		t.Errorf("s.k aliased its source: %s", v)
	}

	if err := n.Set("me", n); err != nil {
		t.Fatal(err)
	}
	me := n.Child("me")
	if me == nil || !Equal(me, MustFrom(map[string]any{"s": map[string]any{"k": 1}})) {
		t.Errorf("me:\n%s", me)
	}
	if me.Has("me") {
		t.Error("tree contains itself")
	}
}

func TestGet(t *testing.T) {
	n := MustFrom(map[string]any{
		"a": map[string]any{"b": 1},
		"c": 2,
	})
	def := Leaf("default")
	tests := []struct {
		kp   string
		want value.Value
	}{
		{"a.b", value.FromInt(1)},
		{"c", value.FromInt(2)},
		{"c.d", value.FromString("default")},
		{"a.x", value.FromString("default")},
		{"missing", value.FromString("default")},
		{"", value.FromString("default")},
	}
	for _, tt := range tests {
		t.Run(tt.kp, func(t *testing.T) {
			got := n.Get(tt.kp, def)
			if !value.Equal(got.Value(), tt.want) {
				t.Errorf("Get(%q) = %s, want %s", tt.kp, got, tt.want)
			}
		})
	}
	if e := n.Get("a", Entry{}); !e.IsNode() || e.Node().Len() != 1 {
		t.Errorf("Get(a) = %v", e)
	}
	if e := n.Get("nope", Entry{}); e.Exists() {
		t.Errorf("expected absent entry, got %v", e)
	}
}

func TestGetAll(t *testing.T) {
	n := MustFrom(map[string]any{"a": map[string]any{"b": 1}, "c": 2})
	got := n.GetAll([]string{"c", "x", "a.b"}, Leaf(0))
	want := []value.Value{value.FromInt(2), value.FromInt(0), value.FromInt(1)}
	if len(got) != len(want) {
		t.Fatalf("got %d entries", len(got))
	}
	for i := range want {
		if !value.Equal(got[i].Value(), want[i]) {
			t.Errorf("%d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPopCascade(t *testing.T) {
	n := MustFrom(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}})
	e, err := n.Pop("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if e.Value().Int != 1 {
		t.Errorf("popped %s", e)
	}
	if n.Len() != 0 {
		t.Errorf("expected empty root, got\n%s", n)
	}
}

func TestPopStopsAtNonEmpty(t *testing.T) {
	n := MustFrom(map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}, "d": 2}})
	if _, err := n.Pop("a.b.c"); err != nil {
		t.Fatal(err)
	}
	want := MustFrom(map[string]any{"a": map[string]any{"d": 2}})
	if !Equal(n, want) {
		t.Errorf("got\n%s\nwant\n%s", n, want)
	}
}

func TestPopMissing(t *testing.T) {
	n := MustFrom(map[string]any{"a": map[string]any{"b": 1}})
	for _, kp := range []string{"x", "a.x", "a.b.c", "x.b"} {
		if _, err := n.Pop(kp); !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("Pop(%q): expected ErrKeyNotFound, got %v", kp, err)
		}
	}
	if !Equal(n, MustFrom(map[string]any{"a": map[string]any{"b": 1}})) {
		t.Errorf("failed pops modified the tree:\n%s", n)
	}
}
