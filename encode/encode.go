package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/debug"
	"github.com/SmnThms/Data-Analysis-Tools/kpath"
	"github.com/SmnThms/Data-Analysis-Tools/tree"
	"github.com/SmnThms/Data-Analysis-Tools/value"
)

type EncState struct {
	depth, indent int
	sep           string

	Color func(value.Kind, tree.ColorAttr, string) string
}

// Encode writes n as JSON. Leaves are first mapped onto the portable
// subset with tree.ToPortable; a leaf that cannot be mapped fails the
// encoding with a *value.EncodingError, and so does a NaN or infinite
// float, which JSON cannot carry. Floats are always written with a
// fraction or an exponent so that they read back as floats. Keys keep
// their order.
func Encode(n *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, sep: kpath.DefaultSeparator}
	for _, opt := range opts {
		opt(es)
	}
	p, err := n.ToPortable(tree.Separator(es.sep))
	if err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode portable tree\n%s", p)
	}
	buf := &bytes.Buffer{}
	if err := encodeNode(p, buf, es, ""); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// MustString encodes n, panicking on error.
func MustString(n *tree.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (es *EncState) color(k value.Kind, a tree.ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) newline(w *bytes.Buffer) {
	if es.indent == 0 {
		return
	}
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func encodeNode(n *tree.Node, w *bytes.Buffer, es *EncState, at string) error {
	if n.Len() == 0 {
		w.WriteString(es.color(value.NullKind, tree.SepColor, "{}"))
		return nil
	}
	w.WriteString(es.color(value.NullKind, tree.SepColor, "{"))
	es.depth++
	i := 0
	for k, e := range n.All() {
		if i > 0 {
			w.WriteString(es.color(value.NullKind, tree.SepColor, ","))
			if es.indent == 0 {
				w.WriteByte(' ')
			}
		}
		i++
		es.newline(w)
		p := kpath.Join(es.sep, at, k)
		attr, kind := tree.KeyColor, e.Value().Kind
		if e.IsNode() {
			attr, kind = tree.NodeKeyColor, value.NullKind
		}
		w.WriteString(es.color(kind, attr, quoteString(k)))
		w.WriteString(es.color(kind, tree.SepColor, ":"))
		w.WriteByte(' ')
		if e.IsNode() {
			if err := encodeNode(e.Node(), w, es, p); err != nil {
				return err
			}
			continue
		}
		if err := encodeValue(e.Value(), w, es, p); err != nil {
			return err
		}
	}
	es.depth--
	es.newline(w)
	w.WriteString(es.color(value.NullKind, tree.SepColor, "}"))
	return nil
}

func encodeValue(v value.Value, w *bytes.Buffer, es *EncState, at string) error {
	var s string
	switch v.Kind {
	case value.NullKind:
		s = "null"
	case value.BoolKind:
		s = strconv.FormatBool(v.Bool)
	case value.IntKind:
		s = strconv.FormatInt(v.Int, 10)
	case value.BigIntKind:
		if v.BigInt == nil {
			return &value.EncodingError{Key: at, Type: "bigint <nil>"}
		}
		s = v.BigInt.String()
	case value.FloatKind:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return &value.EncodingError{Key: at, Type: "float64 " + strconv.FormatFloat(v.Float, 'g', -1, 64)}
		}
		s = formatFloat(v.Float)
	case value.StringKind:
		s = quoteString(v.Str)
	case value.ListKind:
		w.WriteString(es.color(value.ListKind, tree.SepColor, "["))
		for i, e := range v.List {
			if i > 0 {
				w.WriteString(es.color(value.ListKind, tree.SepColor, ", "))
			}
			if err := encodeValue(e, w, es, at+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		w.WriteString(es.color(value.ListKind, tree.SepColor, "]"))
		return nil
	default:
		return &value.EncodingError{Key: at, Type: v.Kind.String()}
	}
	w.WriteString(es.color(v.Kind, tree.ValueColor, s))
	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func quoteString(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		panic(fmt.Sprintf("encode: quoting string: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
