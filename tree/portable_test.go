package tree

import (
	"errors"
	"math/big"
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/value"
	"github.com/shopspring/decimal"
)

func TestToPortable(t *testing.T) {
	arr, err := value.NewArray([]int{2, 2}, []int32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	n := New()
	n.Set("z", 3+4i)
	n.Set("q.r", big.NewRat(1, 3))
	n.Set("q.d", decimal.New(125, -2))
	n.Set("m", arr)
	n.Set("set", map[string]struct{}{"b": {}, "a": {}})
	n.Set("ok", []any{1, 2.5, "s", nil})

	p, err := n.ToPortable()
	if err != nil {
		t.Fatal(err)
	}
	want := MustFrom(map[string]any{
		"z": "3+4i",
		"q": map[string]any{"r": "1/3", "d": "1.25"},
		"m": []any{[]any{1, 2}, []any{3, 4}},
		"set": []any{"a", "b"},
		"ok":  []any{1, 2.5, "s", nil},
	})
	if !EqualUnordered(p, want) {
		t.Errorf("got\n%s\nwant\n%s", p, want)
	}
	for kp, e := range p.All() {
		if e.IsLeaf() && !value.IsPortable(e.Value()) {
			t.Errorf("%s is not portable: %s", kp, e.Value().TypeString())
		}
	}

	again, err := p.ToPortable()
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(p, again) {
		t.Errorf("ToPortable is not idempotent:\n%s\n%s", p, again)
	}
	if v, _ := n.Value("z"); v.Kind != value.ComplexKind {
		t.Errorf("ToPortable modified its receiver: z is %s", v.Kind)
	}
}

func TestToPortableError(t *testing.T) {
	tests := []struct {
		name string
		kp   string
		v    any
		key  string
		typ  string
	}{
		{"struct", "a.b", struct{}{}, "a.b", "struct {}"},
		{"chan in list", "l", []any{1, make(chan int)}, "l[1]", "chan int"},
		{"func", "f", func() {}, "f", "func()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			n.Set("fine", 1)
			if err := n.Set(tt.kp, tt.v); err != nil {
				t.Fatal(err)
			}
			_, err := n.ToPortable()
			if !errors.Is(err, value.ErrEncoding) {
				t.Fatalf("expected ErrEncoding, got %v", err)
			}
			var encErr *value.EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("expected *EncodingError, got %T", err)
			}
			if encErr.Key != tt.key || encErr.Type != tt.typ {
				t.Errorf("got key %q type %q, want %q %q", encErr.Key, encErr.Type, tt.key, tt.typ)
			}
		})
	}
}
