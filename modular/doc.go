// Package modular provides arithmetic over residues modulo a prime q.
//
// It is the sole arithmetic substrate for the rest of the module: every
// higher-level computation routes through these functions so that no
// intermediate value escapes the field. All functions take the modulus
// explicitly, never mutate their arguments, and normalize results into
// the range [0, q).
//
// Failures are reported through sentinel errors rather than panics:
// [Div] returns [ErrNotInvertible] when the divisor shares a factor with
// the modulus, and [Pow] returns [ErrNegativeExponent] for exponents that
// were not reduced to a non-negative residue first.
package modular
