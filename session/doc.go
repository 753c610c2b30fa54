// Package session provides a higher-level API over the frost package
// that enforces the secret nonce lifecycle. The frost core documents
// that a nonce pair must be consumed exactly once; this package makes
// that a structural guarantee instead of a convention.
//
// A [Participant] holds a signer's identifier and private share. Each
// message is signed through a [SigningSession], which draws a fresh
// nonce pair, publishes the matching commitment, and produces exactly
// one response:
//
//	p, err := session.NewParticipant(f, id, share)
//	if err != nil {
//		return err
//	}
//
//	sess, err := p.NewSigningSession(rand.Reader, message)
//	if err != nil {
//		return err
//	}
//
//	// Broadcast sess.Commitment() and collect the other signers'
//	// commitments, then:
//	z, err := sess.Sign(allCommitments, groupKey)
//
// Calling Sign a second time returns an error: the session is consumed
// and its nonces dropped after the first call, preventing the nonce
// reuse that would expose the private share.
//
// The coordinator combines shares with [Aggregate] and checks the result
// with [Verify]. [QuickSign] drives a whole round in-process for tests
// and single-machine setups.
//
// This package does not handle communication between participants.
// Distribute commitments and shares with whatever transport suits the
// deployment; the package only manages per-round state.
package session
