// Package notation formats measured values in shorthand scientific
// notation, where the uncertainty on the last digits of the mantissa is
// written in parentheses:
//
//	notation.Short(-13.6e-3, 0.34e-3)                 // "-1.360(34)x10^-2"
//	notation.Short(-13.6e-3, 0.34e-3, notation.ExponentSeparator("E"))
//	                                                  // "-1.360(34)E-2"
//
// Mantissa digits are rounded half to even.
package notation
