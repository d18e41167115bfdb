// Package value defines the leaf values a tree dictionary may hold.
//
// # Overview
//
// A Value is a closed tagged union. The Kind field selects which of the
// other fields is meaningful:
//
//   - NullKind: no payload
//   - BoolKind: Bool
//   - IntKind: Int (int64)
//   - BigIntKind: BigInt, integers outside the int64 range
//   - FloatKind: Float (float64)
//   - StringKind: Str
//   - ListKind: List, an ordered list of Values
//   - ArrayKind: Array, a multi-dimensional typed numeric buffer
//   - RationalKind: Rat (math/big)
//   - DecimalKind: Decimal (arbitrary precision)
//   - ComplexKind: Complex (complex128)
//   - OpaqueKind: Raw, a runtime value with no representation
//
// # Conversion
//
// Of converts arbitrary Go values into the union:
//
//	v := value.Of([]float64{1, 2, 3})  // ArrayKind, shape (3,)
//	v = value.Of(big.NewRat(1, 7))     // RationalKind
//	v = value.Of(struct{}{})           // OpaqueKind
//
// # Portable encoding
//
// Portable reduces a Value to the subset safe for JSON export: null, bool,
// integers, float, string and lists of those. Arrays become nested lists that
// reproduce their shape, rationals, decimals and complex numbers become
// canonical strings, and opaque values fail with an *EncodingError:
//
//	p, err := value.Portable(value.FromComplex(3 + 4i)) // "3+4i"
//
// Portable is exhaustive over Kind; adding a kind means adding a case.
package value
