// Package frost implements the signing-round mathematics of a FROST-style
// threshold Schnorr signature scheme over the multiplicative group of
// residues modulo a prime q.
//
// Given participants that each hold a secret share of a distributed
// signing key, the package computes per-participant binding factors, the
// aggregated group commitment, the Fiat-Shamir challenge, individual
// signature shares, partial verification of those shares, and the final
// aggregated response. Everything else — transport between participants,
// the key-generation ceremony, persistence, authentication — is an
// external collaborator.
//
// # Signing round
//
// Each signer publishes a [PublicCommitment] to a fresh secret
// [NoncePair], then:
//
//	f, _ := frost.New(ctx)
//
//	// every party, over the same commitment set:
//	R, c, _ := f.GroupCommitmentAndChallenge(commitments, message, groupKey)
//
//	// each signer, with its own secret material:
//	lambda, _ := f.LagrangeCoefficient(myID, len(commitments))
//	z, _ := f.ComputeResponse(myCommitment, myShare, myNonces, lambda, c, message)
//
//	// the coordinator:
//	Z := f.AggregateResponse(shares)
//	sig := &frost.Signature{R: R, Z: Z}
//
// All functions are pure and side-effect-free over immutable inputs;
// signers' response computations may run concurrently with no
// coordination beyond read access to the shared context and commitment
// list.
//
// # Hash framing
//
// Binding values and challenges hash the decimal textual representation
// of their fields joined by the literal "::::" separator, with
// commitments canonicalized as "<id>::<d>::<e>". A reimplementation must
// match this framing exactly or its digests will disagree.
//
// # Nonce lifecycle
//
// A [NoncePair] must be consumed by exactly one [Frost.ComputeResponse]
// call. Reuse across two messages reveals the private share. This
// package trusts its caller on that point; the session package enforces
// it by construction.
package frost
