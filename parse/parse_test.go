package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	n, err := JSON([]byte(`{
		"z": 1,
		"a": {"y": 2.0, "b": [1, 2.5, "s", null, [true]]},
		"big": 123456789012345678901234567890,
		"e": 1e3
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "big", "e"}, n.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y", "b"}, n.Child("a").Keys()); diff != "" {
		t.Errorf("nested key order (-want +got):\n%s", diff)
	}
	checks := []struct {
		kp   string
		want value.Value
	}{
		{"z", value.FromInt(1)},
		{"a.y", value.FromFloat(2)},
		{"e", value.FromFloat(1000)},
		{"a.b", value.FromList(
			value.FromInt(1), value.FromFloat(2.5), value.FromString("s"), value.Null(),
			value.FromList(value.FromBool(true)),
		)},
	}
	for _, c := range checks {
		got, ok := n.Value(c.kp)
		if !ok || !value.Equal(got, c.want) {
			t.Errorf("%s = %s (%s), want %s", c.kp, got, got.Kind, c.want)
		}
	}
	if v, _ := n.Value("big"); v.Kind != value.BigIntKind || v.String() != "123456789012345678901234567890" {
		t.Errorf("big = %s (%s)", v, v.Kind)
	}
}

func TestJSONDottedKey(t *testing.T) {
	n, err := JSON([]byte(`{"a.b": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.b"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"array top level", `[1, 2]`, tree.ErrNotMapping},
		{"scalar top level", `3`, tree.ErrNotMapping},
		{"object in array", `{"a": [{"b": 1}]}`, ErrObjectInArray},
		{"truncated", `{"a": [1, 2`, ErrParse},
		{"empty", ``, ErrParse},
		{"trailing data", `{} {}`, ErrParse},
		{"syntax", `{"a" 1}`, ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON([]byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestTable(t *testing.T) {
	in := "#t\tv1\t\tv3\n" +
		"0\t1.5\t9\t-2\n" +
		"# calibration pause\n" +
		"\n" +
		"1 2.5 9 1e-3\n"
	n, err := Table(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"t", "v1", "v3"}, n.Keys()); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}
	v, _ := n.Value("v3")
	got, err := v.Array.Float64s()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{-2, 1e-3}, got); diff != "" {
		t.Errorf("v3 (-want +got):\n%s", diff)
	}
	if v.Array.DType != value.Float64DType {
		t.Errorf("dtype %s", v.Array.DType)
	}
}

func TestTableWhitespaceHeader(t *testing.T) {
	n, err := Table(strings.NewReader("% x  y\n1 2\n3 4\n"), CommentMarker("%"))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := n.Value("y")
	got, _ := v.Array.Float64s()
	if diff := cmp.Diff([]float64{2, 4}, got); diff != "" {
		t.Errorf("y (-want +got):\n%s", diff)
	}
}

func TestTableErrors(t *testing.T) {
	_, err := Table(strings.NewReader("#a\tb\n1\n"))
	var pe *Error
	if !errors.As(err, &pe) || pe.Line != 2 || !errors.Is(err, ErrParse) {
		t.Errorf("short row: %v", err)
	}
	if _, err := Table(strings.NewReader("#a\nx\n")); !errors.Is(err, ErrParse) {
		t.Errorf("non numeric: %v", err)
	}
	if _, err := Table(strings.NewReader("")); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("empty: %v", err)
	}
}

func TestCSV(t *testing.T) {
	n, err := CSV(strings.NewReader("a;b;c\n1;2\n\"x;y\";z;w\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, _ := n.Value(CSVKey)
	row := func(fs ...string) value.Value {
		vs := make([]value.Value, len(fs))
		for i, f := range fs {
			vs[i] = value.FromString(f)
		}
		return value.FromList(vs...)
	}
	want := value.FromList(row("a", "b", "c"), row("1", "2"), row("x;y", "z", "w"))
	if !value.Equal(v, want) {
		t.Errorf("got %s, want %s", v, want)
	}

	n, err = CSV(strings.NewReader("a,b\n"), Delimiter(','))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := n.Value(CSVKey); !value.Equal(v, value.FromList(row("a", "b"))) {
		t.Errorf("comma delimited: %s", v)
	}
}
