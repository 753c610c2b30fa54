package frost

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/fq/group"
)

// Frost evaluates the signing-round mathematics of the threshold scheme
// over a fixed [group.Context] and hash function. All methods are pure:
// they read their inputs, allocate their outputs, and keep no state, so
// a single Frost value can be shared by any number of goroutines.
type Frost struct {
	ctx    *group.Context
	hasher Hasher
}

// NoncePair holds a participant's secret nonce pair (d, e), the private
// companion to the published [PublicCommitment]. A pair must be consumed
// by exactly one call to [Frost.ComputeResponse]; reusing it for a
// second message lets an observer recover the private share. The session
// package enforces this lifecycle.
type NoncePair struct {
	D *big.Int
	E *big.Int
}

// Signature is the final aggregate output: the group commitment R and
// the summed response Z. It is immutable once produced.
type Signature struct {
	R *big.Int
	Z *big.Int
}

// New creates a Frost instance over ctx using the default SHA-256 hasher.
func New(ctx *group.Context) (*Frost, error) {
	return NewWithHasher(ctx, SHA256Hasher{})
}

// NewWithHasher creates a Frost instance with a custom hash function.
// All parties in a session must use the same hasher or their binding
// values and challenges will disagree.
func NewWithHasher(ctx *group.Context, h Hasher) (*Frost, error) {
	if ctx == nil {
		return nil, errors.New("frost: nil group context")
	}
	if h == nil {
		return nil, errors.New("frost: nil hasher")
	}
	return &Frost{ctx: ctx, hasher: h}, nil
}

// Context returns the group parameters this instance operates over.
func (f *Frost) Context() *group.Context {
	return f.ctx
}

// hashToScalar hashes the input string and interprets the hex digest as
// a base-16 integer reduced mod q. A digest that fails to parse is an
// arithmetic failure; it cannot occur for the built-in hashers but is
// surfaced rather than assumed impossible.
func (f *Frost) hashToScalar(input string) (*big.Int, error) {
	digest := f.hasher.Sum(input)
	v, ok := new(big.Int).SetString(digest, 16)
	if !ok {
		return nil, fmt.Errorf("frost: digest %q is not a base-16 integer", digest)
	}
	return v.Mod(v, f.ctx.Q), nil
}
