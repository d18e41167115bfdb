package value

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	// BigIntKind holds integers outside the int64 range.
	BigIntKind
	FloatKind
	StringKind
	ListKind
	ArrayKind
	RationalKind
	DecimalKind
	ComplexKind
	// OpaqueKind records a runtime value outside the representable set.
	// It is never portable.
	OpaqueKind
)

var kindNames = map[Kind]string{
	NullKind:     "null",
	BoolKind:     "bool",
	IntKind:      "int",
	BigIntKind:   "bigint",
	FloatKind:    "float",
	StringKind:   "string",
	ListKind:     "list",
	ArrayKind:    "array",
	RationalKind: "rational",
	DecimalKind:  "decimal",
	ComplexKind:  "complex",
	OpaqueKind:   "opaque",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		BigIntKind,
		FloatKind,
		StringKind,
		ListKind,
		ArrayKind,
		RationalKind,
		DecimalKind,
		ComplexKind,
		OpaqueKind,
	}
}

// IsPortable reports whether values of kind k survive JSON export
// unchanged (lists still need their elements checked).
func (k Kind) IsPortable() bool {
	switch k {
	case NullKind, BoolKind, IntKind, BigIntKind, FloatKind, StringKind, ListKind:
		return true
	default:
		return false
	}
}
