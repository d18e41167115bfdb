package notation

import (
	"math"
	"strconv"
)

// Short renders value with its uncertainty (0 for none) in shorthand
// scientific notation. The exponent is the decade of value, and the
// mantissa carries as many digits as needed for the uncertainty to be
// written on UncertaintyDigits digits.
func Short(value, uncertainty float64, opts ...Option) string {
	return NewState(opts...).short(value, uncertainty)
}

func (s *State) short(value, unc float64) string {
	var valStr, uncStr string
	var expV int
	if value != 0 {
		expU := exponent(unc)
		expV = exponent(value)
		scale := -min(expV, expU) + s.UDigits - 1
		valStr = mantissa(value, scale)
		uncStr = mantissa(math.Abs(unc), scale)
		if expU < expV || s.UDigits != 1 {
			at := 1
			if value < 0 {
				at = 2
			}
			valStr = s.separate(valStr, at)
		}
		if s.UDigits != 1 {
			switch {
			case expU == expV:
				uncStr = s.separate(uncStr, 1)
			case expU > expV:
				uncStr = s.separate(uncStr, 1-s.UDigits)
			}
		}
	} else {
		valStr = "0"
		expV = exponent(unc)
		uncStr = mantissa(math.Abs(unc), -expV+s.UDigits-1)
		if s.UDigits != 1 {
			uncStr = s.separate(uncStr, 1)
		}
	}
	if unc != 0 {
		valStr += "(" + uncStr + ")"
	}
	if expV != 0 {
		valStr += s.ExpSep + strconv.Itoa(expV)
	}
	return valStr
}

// Measure renders name, value and unit, as in "x = 1.23(4)E-2 keV". The
// name is omitted with WithName(false), the unit when empty. Measure
// uses "E" as exponent separator unless opts set another.
func Measure(name string, value, uncertainty float64, unit string, opts ...Option) string {
	s := NewState(append([]Option{ExponentSeparator("E")}, opts...)...)
	res := s.short(value, uncertainty)
	if unit != "" {
		res += " " + unit
	}
	if s.WithName {
		res = name + s.NameSep + res
	}
	return res
}

func exponent(x float64) int {
	if x == 0 {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(x))))
}

// mantissa returns x*10^scale rounded half to even, as an integer string.
func mantissa(x float64, scale int) string {
	r := math.RoundToEven(x * math.Pow10(scale))
	if r == 0 {
		// no "-0"
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// separate inserts the decimal separator before rune offset i of digits.
// A negative i counts from the end; offsets are clamped to the string.
func (s *State) separate(digits string, i int) string {
	n := len(digits)
	if i < 0 {
		i = max(n+i, 0)
	}
	i = min(i, n)
	return digits[:i] + s.DecSep + digits[i:]
}
