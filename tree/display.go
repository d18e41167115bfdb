package tree

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/SmnThms/Data-Analysis-Tools/value"
)

const (
	indentUnit = "> "
	keySep     = ":\t"

	elideOver = 500
	elideKeep = 200
	elision   = "\n[...]\n"
)

// DisplayFunc renders the content of a leaf. An empty result renders the
// key alone.
type DisplayFunc func(v value.Value) string

type displayState struct {
	colors   *Colors
	keysOnly bool
	// content is the color role of leaf content.
	content ColorAttr
}

type DisplayOption func(*displayState)

// WithColors colors keys, separators and values.
func WithColors(c *Colors) DisplayOption {
	return func(ds *displayState) { ds.colors = c }
}

func keysOnly() DisplayOption {
	return func(ds *displayState) { ds.keysOnly = true }
}

func typeContent() DisplayOption {
	return func(ds *displayState) { ds.content = TypeColor }
}

// Render renders n one line per entry, each line prefixed by one "> " per
// nesting level. Leaf content longer than 500 runes is elided to its
// first and last 200 runes; continuation lines of multi-line content are
// aligned under its first line.
func (n *Node) Render(show DisplayFunc, opts ...DisplayOption) string {
	ds := &displayState{colors: &Colors{Default: colorDefault}, content: ValueColor}
	for _, opt := range opts {
		opt(ds)
	}
	b := &strings.Builder{}
	n.render(b, show, ds, 1)
	return b.String()
}

func (n *Node) render(b *strings.Builder, show DisplayFunc, ds *displayState, depth int) {
	c := ds.colors
	indent := strings.Repeat(indentUnit, depth)
	for i, k := range n.keys {
		e := n.entries[i]
		b.WriteString(c.Color(value.NullKind, IndentColor, indent))
		if e.IsNode() {
			b.WriteString(c.Color(value.NullKind, NodeKeyColor, k))
			if !ds.keysOnly {
				b.WriteString(c.Color(value.NullKind, SepColor, ":"))
			}
			b.WriteByte('\n')
			e.node.render(b, show, ds, depth+1)
			continue
		}
		kind := e.value.Kind
		b.WriteString(c.Color(kind, KeyColor, k))
		content := ""
		if !ds.keysOnly {
			content = elide(show(e.value))
		}
		if content == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(c.Color(kind, SepColor, keySep))
		pad := "\n" + strings.Repeat(" ", utf8.RuneCountInString(indent+k+keySep))
		b.WriteString(c.Color(kind, ds.content, strings.ReplaceAll(content, "\n", pad)))
		b.WriteByte('\n')
	}
}

func elide(s string) string {
	if utf8.RuneCountInString(s) <= elideOver {
		return s
	}
	r := []rune(s)
	return string(r[:elideKeep]) + elision + string(r[len(r)-elideKeep:])
}

func showValue(v value.Value) string { return v.String() }
func showType(v value.Value) string  { return v.TypeString() }

func (n *Node) String() string {
	return n.Render(showValue)
}

// KeysString renders the key hierarchy only.
func (n *Node) KeysString(opts ...DisplayOption) string {
	return n.Render(showValue, append(opts, keysOnly())...)
}

// TypesString renders the kind of every leaf, with the element type and
// shape of arrays and the shape of rectangular lists. Types are colored
// with TypeColor.
func (n *Node) TypesString(opts ...DisplayOption) string {
	return n.Render(showType, append(opts, typeContent())...)
}

func (n *Node) PrintKeys(w io.Writer, opts ...DisplayOption) error {
	_, err := io.WriteString(w, n.KeysString(opts...))
	return err
}

func (n *Node) PrintTypes(w io.Writer, opts ...DisplayOption) error {
	_, err := io.WriteString(w, n.TypesString(opts...))
	return err
}
