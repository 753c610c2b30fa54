package frost

import (
	"fmt"
	"math/big"

	"github.com/f3rmion/fq/modular"
)

// PublicCommitment is a participant's published contribution to one
// signing round: its identifier, the commitments D = g^d and E = g^e to
// its secret nonce pair, and its public key share Y = g^s. It is
// immutable after publication. The secret pair (d, e) itself is never
// part of a PublicCommitment; see [NoncePair].
type PublicCommitment struct {
	ParticipantID *big.Int
	D             *big.Int
	E             *big.Int
	PublicShare   *big.Int
}

// NewPublicCommitment builds a commitment from its parts.
func NewPublicCommitment(participantID, d, e, publicShare *big.Int) *PublicCommitment {
	return &PublicCommitment{
		ParticipantID: participantID,
		D:             d,
		E:             e,
		PublicShare:   publicShare,
	}
}

// String returns the canonical form "<id>::<d>::<e>" with each field in
// decimal. This exact encoding is baked into the binding-value hash, so
// any wire format carrying commitments between participants must
// reproduce it byte for byte.
func (pc *PublicCommitment) String() string {
	return fmt.Sprintf("%s::%s::%s", pc.ParticipantID, pc.D, pc.E)
}

// BindingValue computes the participant's binding factor
//
//	rho_i = H(id || "::::" || message || "::::" || id::D::E) mod q
//
// which ties the nonce commitments to the message and the participant's
// own identity, preventing a signer from substituting another's nonces.
// Deterministic: recomputed wherever needed rather than stored.
func (f *Frost) BindingValue(pc *PublicCommitment, message string) (*big.Int, error) {
	return f.hashToScalar(fmt.Sprintf("%s::::%s::::%s", pc.ParticipantID, message, pc))
}

// GroupCommitmentAndChallenge folds the published commitments into the
// group commitment
//
//	R = prod_i D_i * E_i^rho_i mod q
//
// and derives the Fiat-Shamir challenge
//
//	c = H(R || "::::" || groupPublicKey || "::::" || message) mod q.
//
// The product is commutative, so R does not depend on the ordering of
// commitments, but every party must fold over the same set. An empty
// commitment list yields R = 1.
func (f *Frost) GroupCommitmentAndChallenge(
	commitments []*PublicCommitment,
	message string,
	groupPublicKey *big.Int,
) (*big.Int, *big.Int, error) {
	q := f.ctx.Q
	r := big.NewInt(1)
	for _, pc := range commitments {
		rho, err := f.BindingValue(pc, message)
		if err != nil {
			return nil, nil, err
		}
		blinded, err := modular.Pow(pc.E, rho, q)
		if err != nil {
			return nil, nil, err
		}
		r = modular.Mul(modular.Mul(r, pc.D, q), blinded, q)
	}
	c, err := f.hashToScalar(fmt.Sprintf("%s::::%s::::%s", r, groupPublicKey, message))
	if err != nil {
		return nil, nil, err
	}
	return r, c, nil
}

// LagrangeCoefficient computes the weight reconstructing a shared
// secret's contribution at evaluation point 0:
//
//	lambda_i = prod_{j in 0..n-1, j != id} j / (j - id) mod q
//
// The fold runs over the fixed index range 0..n-1, not over the set of
// identifiers actually present in the session; participants are
// 0-indexed under this convention. n = 0 yields the empty product 1.
func (f *Frost) LagrangeCoefficient(participantID *big.Int, n int) (*big.Int, error) {
	q := f.ctx.Q
	acc := big.NewInt(1)
	for j := 0; j < n; j++ {
		jv := big.NewInt(int64(j))
		if jv.Cmp(participantID) == 0 {
			continue
		}
		term, err := modular.Div(jv, modular.Sub(jv, participantID, q), q)
		if err != nil {
			return nil, fmt.Errorf("frost: lagrange term %d: %w", j, err)
		}
		acc = modular.Mul(acc, term, q)
	}
	return acc, nil
}

// ComputeResponse turns a participant's secret material into its
// signature share
//
//	z_i = d + e*rho_i + lambda*s*c mod q
//
// where rho_i is recomputed from the participant's own published
// commitment. The nonce pair must be fresh for this message: calling
// ComputeResponse twice with the same nonces and different messages is
// a key-recovery vulnerability. Use the session package when the
// single-use lifecycle should be enforced by construction.
func (f *Frost) ComputeResponse(
	own *PublicCommitment,
	privateShare *big.Int,
	nonces *NoncePair,
	lambda, challenge *big.Int,
	message string,
) (*big.Int, error) {
	rho, err := f.BindingValue(own, message)
	if err != nil {
		return nil, err
	}
	q := f.ctx.Q
	blinded := modular.Mul(nonces.E, rho, q)
	keyed := modular.Mul(modular.Mul(lambda, privateShare, q), challenge, q)
	return modular.Add(nonces.D, modular.Add(blinded, keyed, q), q), nil
}

// VerifyParticipants recomputes g^response and, for every published
// commitment, checks its partial term
//
//	r_i * Y_i^(c * lambda_i)  ==  g^response
//
// where r_i = D_i * E_i^rho_i. The boolean result reports a mismatch;
// an error is returned only for arithmetic failures. Callers decide how
// to react to a false result, e.g. by excluding a participant and
// retrying with a different subset.
//
// Note that every participant's partial term is compared against the
// one response value. This holds for a single participant checking its
// own share, but rejects honest multi-participant aggregates, which
// standard threshold verification would check once against the summed
// response; see [Frost.VerifySignature] for that check.
func (f *Frost) VerifyParticipants(
	commitments []*PublicCommitment,
	message string,
	response, challenge *big.Int,
	n int,
) (bool, error) {
	q := f.ctx.Q
	gz, err := modular.Pow(f.ctx.G, response, q)
	if err != nil {
		return false, err
	}
	for _, pc := range commitments {
		rho, err := f.BindingValue(pc, message)
		if err != nil {
			return false, err
		}
		blinded, err := modular.Pow(pc.E, rho, q)
		if err != nil {
			return false, err
		}
		ri := modular.Mul(pc.D, blinded, q)

		lambda, err := f.LagrangeCoefficient(pc.ParticipantID, n)
		if err != nil {
			return false, err
		}
		keyTerm, err := modular.Pow(pc.PublicShare, modular.Mul(challenge, lambda, q), q)
		if err != nil {
			return false, err
		}
		if modular.Mul(ri, keyTerm, q).Cmp(gz) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// AggregateResponse sums the participants' signature shares mod q,
// producing the scheme's final scalar. Combined with the group
// commitment R it forms the signature. The sum is commutative, so share
// ordering is irrelevant; each share must be included exactly once.
func (f *Frost) AggregateResponse(responses []*big.Int) *big.Int {
	sum := big.NewInt(0)
	for _, z := range responses {
		sum = modular.Add(sum, z, f.ctx.Q)
	}
	return sum
}

// VerifySignature checks the aggregate Schnorr relation
//
//	g^Z == R * Y^c mod q
//
// with the challenge recomputed from R, the group public key and the
// message. This is the whole-signature check; per-share validation is
// [Frost.VerifyParticipants].
func (f *Frost) VerifySignature(sig *Signature, groupPublicKey *big.Int, message string) (bool, error) {
	q := f.ctx.Q
	c, err := f.hashToScalar(fmt.Sprintf("%s::::%s::::%s", sig.R, groupPublicKey, message))
	if err != nil {
		return false, err
	}
	gz, err := modular.Pow(f.ctx.G, sig.Z, q)
	if err != nil {
		return false, err
	}
	yc, err := modular.Pow(groupPublicKey, c, q)
	if err != nil {
		return false, err
	}
	return gz.Cmp(modular.Mul(sig.R, yc, q)) == 0, nil
}
