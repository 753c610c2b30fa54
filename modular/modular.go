package modular

import (
	"errors"
	"math/big"
)

var (
	// ErrNotInvertible is returned by [Div] when the divisor has no
	// multiplicative inverse modulo q, i.e. gcd(b, q) != 1.
	ErrNotInvertible = errors.New("modular: divisor is not invertible")

	// ErrNegativeExponent is returned by [Pow] when the exponent is
	// negative. Exponents must be reduced to a non-negative residue
	// before exponentiation.
	ErrNegativeExponent = errors.New("modular: negative exponent")
)

// Add returns a + b mod q.
func Add(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, q)
}

// Sub returns a - b mod q. The result is normalized into [0, q).
func Sub(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, q)
}

// Mul returns a * b mod q.
func Mul(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, q)
}

// Div returns a / b mod q, computed as a times the modular inverse of b.
// Returns [ErrNotInvertible] if b has no inverse modulo q.
func Div(a, b, q *big.Int) (*big.Int, error) {
	bb := new(big.Int).Mod(b, q)
	inv := new(big.Int).ModInverse(bb, q)
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return Mul(a, inv, q), nil
}

// Pow returns base^exp mod q. The exponent must be non-negative;
// [ErrNegativeExponent] is returned otherwise.
func Pow(base, exp, q *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	return new(big.Int).Exp(base, exp, q), nil
}
