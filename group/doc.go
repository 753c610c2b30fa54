// Package group defines the shared group parameters for FROST-style
// threshold signing over a prime field.
//
// A [Context] bundles the prime modulus q with a generator g. It is the
// process-wide read-only configuration for a signing deployment: created
// once, validated once, and passed explicitly into every operation. The
// parameters are never ambient globals, so sessions over different
// groups can coexist in one process.
//
// The modulus doubles as the scalar field order: all scalar arithmetic
// (binding factors, challenges, responses) and all group exponentiation
// reduce modulo the same q. Choose parameters with that conflation in
// mind.
//
// [BN254Fr] provides a ready-made parameter set over the BN254 scalar
// field, with the prime sourced from gnark-crypto.
package group
