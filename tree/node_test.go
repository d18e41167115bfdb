package tree

import (
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/notation"
)

type closer struct{ n int }

func (c *closer) Close() error {
	c.n++
	return nil
}

func TestSourceLifecycle(t *testing.T) {
	n := MustFrom(map[string]any{"data": []float64{1, 2}})
	c := &closer{}
	if err := n.Attach(c); err != nil {
		t.Fatal(err)
	}
	if n.Copy().Source() != nil {
		t.Error("copy inherited the source handle")
	}
	if err := n.Close(); err != nil {
		t.Fatal(err)
	}
	if err := n.Close(); err != nil {
		t.Fatal(err)
	}
	if c.n != 1 {
		t.Errorf("source closed %d times", c.n)
	}
	if v, ok := n.Value("data"); !ok || v.Array.Len() != 2 {
		t.Errorf("leaf invalid after Close: %s", v)
	}
}

func TestCopyIsDeep(t *testing.T) {
	n := MustFrom(map[string]any{"a": map[string]any{"v": []float64{1, 2}}})
	cp := n.Copy()
	cp.Set("a.w", 1)
	v, _ := cp.Value("a.v")
	v.Array.Data().([]float64)[0] = 100
	if !Equal(n, MustFrom(map[string]any{"a": map[string]any{"v": []float64{1, 2}}})) {
		t.Errorf("copy shares state with original:\n%s", n)
	}
}

func TestDelete(t *testing.T) {
	n := New()
	n.Set("a", 1)
	n.Set("b", 2)
	n.Set("c", 3)
	if !n.Delete("b") || n.Delete("b") {
		t.Fatal("Delete result")
	}
	if v, _ := n.Value("c"); v.Int != 3 {
		t.Errorf("index broken after delete: %s", v)
	}
	var keys []string
	for k := range n.All() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("keys %v", keys)
	}
}

func TestMeasure(t *testing.T) {
	n := MustFrom(map[string]any{
		"truc":   -13.6e-3,
		"u_truc": 0.34e-3,
		"units":  map[string]any{"truc": "keV"},
		"bare":   2.5,
		"s":      "text",
	})
	tests := []struct {
		key  string
		opts []notation.Option
		want string
		err  bool
	}{
		{key: "truc", want: "truc = -1.360(34)E-2 keV"},
		{key: "truc", opts: []notation.Option{notation.WithName(false)}, want: "-1.360(34)E-2 keV"},
		{key: "bare", want: "bare = 2.5"},
		{key: "s", err: true},
		{key: "units", err: true},
		{key: "missing", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := n.Measure(tt.key, tt.opts...)
			if tt.err {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
