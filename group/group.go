package group

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// primeRounds is the number of Miller-Rabin rounds used to validate the
// modulus. 64 rounds give a false-positive probability below 2^-128.
const primeRounds = 64

// Context holds the shared group parameters for a signing deployment:
// the prime modulus Q (also treated as the scalar field order) and the
// generator G used for all exponentiations.
//
// A Context is created once per protocol deployment, is immutable for
// the lifetime of every signing session that uses it, and is passed by
// reference into every operation. Callers must treat the fields as
// read-only. Multiple sessions over different parameters can run
// concurrently because no state is shared beyond the Context itself.
type Context struct {
	// Q is the prime modulus.
	Q *big.Int
	// G is the generator element, in the range [1, Q).
	G *big.Int
}

// New creates a Context from the prime modulus q and generator g.
// The inputs are copied, so later mutation by the caller does not
// affect the Context.
func New(q, g *big.Int) (*Context, error) {
	if q == nil || g == nil {
		return nil, errors.New("group: nil parameter")
	}
	if !q.ProbablyPrime(primeRounds) {
		return nil, fmt.Errorf("group: modulus %s is not prime", q)
	}
	if g.Sign() < 1 || g.Cmp(q) >= 0 {
		return nil, fmt.Errorf("group: generator %s out of range [1, q)", g)
	}
	return &Context{
		Q: new(big.Int).Set(q),
		G: new(big.Int).Set(g),
	}, nil
}

// BN254Fr returns a Context over the BN254 scalar field: Q is the field
// modulus sourced from gnark-crypto and G is 5, the smallest generator
// of the field's multiplicative group.
func BN254Fr() *Context {
	return &Context{
		Q: fr.Modulus(),
		G: big.NewInt(5),
	}
}

// RandomScalar returns a scalar in [0, Q) read from r. It is intended
// for callers generating secret nonces or shares; the single-use
// lifecycle of those values is the caller's responsibility.
func (c *Context) RandomScalar(r io.Reader) (*big.Int, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := new(big.Int).SetBytes(buf[:])
	return s.Mod(s, c.Q), nil
}
