package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		kp, sep    string
		head, rest string
		ok         bool
	}{
		{"a.b.c", ".", "a", "b.c", true},
		{"a", ".", "a", "", false},
		{"a/b", "/", "a", "b", true},
		{"a::b::c", "::", "a", "b::c", true},
		{"a.b", "", "a.b", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.kp, func(t *testing.T) {
			head, rest, ok := Split(tt.kp, tt.sep)
			if head != tt.head || rest != tt.rest || ok != tt.ok {
				t.Errorf("Split(%q, %q) = %q, %q, %v", tt.kp, tt.sep, head, rest, ok)
			}
		})
	}
}

func TestSplitAllJoin(t *testing.T) {
	segs := SplitAll("c.c2.c21", ".")
	if diff := cmp.Diff([]string{"c", "c2", "c21"}, segs); diff != "" {
		t.Errorf("SplitAll mismatch (-want +got):\n%s", diff)
	}
	if got := Join(".", segs...); got != "c.c2.c21" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(".", "", "a"); got != "a" {
		t.Errorf("Join with empty root = %q", got)
	}
}

func TestCheckKey(t *testing.T) {
	if err := CheckKey("plain", "."); err != nil {
		t.Error(err)
	}
	if err := CheckKey("a.b", "."); !errors.Is(err, ErrSeparatorInKey) {
		t.Errorf("expected ErrSeparatorInKey, got %v", err)
	}
}

func TestParse(t *testing.T) {
	segs, err := Parse("a/b/c", "/")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, segs); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	for _, kp := range []string{"a..b", "a.", ".a", ""} {
		if _, err := Parse(kp, "."); !errors.Is(err, ErrEmptySegment) {
			t.Errorf("Parse(%q): expected ErrEmptySegment, got %v", kp, err)
		}
	}
}
