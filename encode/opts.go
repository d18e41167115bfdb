package encode

import "github.com/SmnThms/Data-Analysis-Tools/tree"

type EncodeOption func(*EncState)

// Indent sets the indentation width; 0 writes the whole document on one
// line.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *tree.Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeSeparator sets the keypath separator used in error messages.
func EncodeSeparator(sep string) EncodeOption {
	return func(es *EncState) { es.sep = sep }
}
