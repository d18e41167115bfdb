package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/value"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	n := MustFrom(map[string]any{
		"a": 1,
		"b": map[string]any{"c": "x\ny", "d": []any{1, "s"}},
	})
	want := "> a:\t1\n" +
		"> b:\n" +
		"> > c:\tx\n" +
		"       y\n" +
		"> > d:\t[1, \"s\"]\n"
	if diff := cmp.Diff(want, n.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestStringElision(t *testing.T) {
	n := New()
	long := strings.Repeat("a", 300) + strings.Repeat("b", 300)
	n.Set("k", long)
	pad := strings.Repeat(" ", len("> k:\t"))
	want := "> k:\t" + strings.Repeat("a", 200) + "\n" +
		pad + "[...]\n" +
		pad + strings.Repeat("b", 200) + "\n"
	if diff := cmp.Diff(want, n.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}

	n.Set("k", strings.Repeat("é", 500))
	if got := n.String(); strings.Contains(got, "[...]") {
		t.Error("500 runes should not be elided")
	}
}

func TestKeysString(t *testing.T) {
	n := MustFrom(map[string]any{
		"a": 1,
		"b": map[string]any{"c": map[string]any{"d": true}},
	})
	want := "> a\n> b\n> > c\n> > > d\n"
	if diff := cmp.Diff(want, n.KeysString()); diff != "" {
		t.Errorf("KeysString mismatch (-want +got):\n%s", diff)
	}
}

func TestTypesString(t *testing.T) {
	arr, err := value.NewArray([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	n := New()
	n.Set("i", 1)
	n.Set("l", [][]int{{1, 2}, {3, 4}})
	n.Set("m", arr)
	n.Set("n.s", "x")
	want := "> i:\tint\n" +
		"> l:\tlist (2, 2)\n" +
		"> m:\tarray[float64] (2, 3)\n" +
		"> n:\n" +
		"> > s:\tstring\n"
	if diff := cmp.Diff(want, n.TypesString()); diff != "" {
		t.Errorf("TypesString mismatch (-want +got):\n%s", diff)
	}
}

func TestTypesStringColors(t *testing.T) {
	n := MustFrom(map[string]any{"p": "50%"})
	c := &Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[Colorable]func(string, ...any) string{
			{Kind: value.StringKind, Attr: TypeColor}:  func(f string, a ...any) string { return "<t>" + fmt.Sprintf(f, a...) + "</t>" },
			{Kind: value.StringKind, Attr: ValueColor}: func(f string, a ...any) string { return "<v>" + fmt.Sprintf(f, a...) + "</v>" },
		},
	}
	if diff := cmp.Diff("> p:\t<t>string</t>\n", n.TypesString(WithColors(c))); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("> p:\t<v>50%</v>\n", n.Render(showValue, WithColors(c))); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestRenderColors(t *testing.T) {
	n := MustFrom(map[string]any{"a": 1})
	c := NewColors()
	got := n.Render(func(v value.Value) string { return v.String() }, WithColors(c))
	if !strings.Contains(got, "a") || !strings.Contains(got, "1") {
		t.Errorf("colored rendering lost content: %q", got)
	}
}
