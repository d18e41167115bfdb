package notation

// State holds formatting parameters. The zero State is not usable; start
// from NewState.
type State struct {
	UDigits  int
	ExpSep   string
	DecSep   string
	NameSep  string
	WithName bool
}

type Option func(*State)

func NewState(opts ...Option) *State {
	s := &State{UDigits: 2, ExpSep: "x10^", DecSep: ".", NameSep: " = ", WithName: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UncertaintyDigits sets the number of digits written in parentheses
// (default 2).
func UncertaintyDigits(n int) Option {
	return func(s *State) { s.UDigits = n }
}

// ExponentSeparator sets the text introducing the exponent, such as
// "x10^" (the default for Short), "E" or "e".
func ExponentSeparator(sep string) Option {
	return func(s *State) { s.ExpSep = sep }
}

func DecimalSeparator(sep string) Option {
	return func(s *State) { s.DecSep = sep }
}

// NameSeparator sets the text between name and value in Measure.
func NameSeparator(sep string) Option {
	return func(s *State) { s.NameSep = sep }
}

// WithName controls whether Measure prefixes the name.
func WithName(v bool) Option {
	return func(s *State) { s.WithName = v }
}
