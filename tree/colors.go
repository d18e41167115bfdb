package tree

import (
	"strings"

	"github.com/SmnThms/Data-Analysis-Tools/value"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind value.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	NodeKeyColor
	ValueColor
	TypeColor
	SepColor
	IndentColor
)

// Colors maps a leaf kind and the role of a piece of text to a color
// function. Node keys and indentation use the Null kind.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range value.Kinds() {
		able := Colorable{Kind: k, Attr: KeyColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = TypeColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	colors.Map[Colorable{Attr: NodeKeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Attr: IndentColor}] = color.RGB(96, 96, 96).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	for _, k := range []value.Kind{value.IntKind, value.BigIntKind, value.FloatKind, value.RationalKind, value.DecimalKind, value.ComplexKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = value.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = value.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = value.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = value.ArrayKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Kind = value.ListKind
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Kind = value.OpaqueKind
	colors.Map[able] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s in the color of k and a. s is never interpreted as a
// format.
func (c *Colors) Color(k value.Kind, a ColorAttr, s string) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default(s)
	}
	return f("%s", s)
}

func (c *Colors) Get(k value.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
