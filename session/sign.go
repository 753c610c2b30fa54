package session

import (
	"errors"
	"io"
	"math/big"
	"sync"

	"github.com/f3rmion/fq/frost"
	"github.com/f3rmion/fq/modular"
)

// SigningSession manages one participant's part of a single signing
// round with built-in nonce safety. Each session holds a fresh secret
// nonce pair and can produce exactly one response; a second Sign call
// returns an error, so a nonce pair cannot be consumed twice by
// construction.
//
// Create sessions with [Participant.NewSigningSession].
type SigningSession struct {
	mu          sync.Mutex
	frost       *frost.Frost
	participant *Participant
	message     string
	nonces      *frost.NoncePair
	commitment  *frost.PublicCommitment
	consumed    bool
}

// NewSigningSession creates a signing session for the given message,
// drawing a fresh nonce pair from rng. The returned session must be used
// for exactly one Sign call; creating a second session for the same
// message draws new nonces, which is always safe.
func (p *Participant) NewSigningSession(rng io.Reader, message string) (*SigningSession, error) {
	ctx := p.frost.Context()

	d, err := ctx.RandomScalar(rng)
	if err != nil {
		return nil, err
	}
	e, err := ctx.RandomScalar(rng)
	if err != nil {
		return nil, err
	}

	bigD, err := modular.Pow(ctx.G, d, ctx.Q)
	if err != nil {
		return nil, err
	}
	bigE, err := modular.Pow(ctx.G, e, ctx.Q)
	if err != nil {
		return nil, err
	}

	return &SigningSession{
		frost:       p.frost,
		participant: p,
		message:     message,
		nonces:      &frost.NoncePair{D: d, E: e},
		commitment:  frost.NewPublicCommitment(p.ID(), bigD, bigE, p.PublicShare()),
	}, nil
}

// Commitment returns the public commitment to broadcast to the other
// signers before Sign is called.
func (s *SigningSession) Commitment() *frost.PublicCommitment {
	return s.commitment
}

// Message returns the message this session signs.
func (s *SigningSession) Message() string {
	return s.message
}

// Sign produces this participant's signature share over the full set of
// published commitments, which must include this session's own.
//
// Sign consumes the session: a second call returns an error and the
// secret nonces are dropped after the first call, whether or not it
// succeeded.
func (s *SigningSession) Sign(allCommitments []*frost.PublicCommitment, groupPublicKey *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return nil, errors.New("session: already consumed, nonce reuse prevented")
	}
	// Mark consumed before anything that can fail.
	s.consumed = true
	defer func() { s.nonces = nil }()

	found := false
	for _, pc := range allCommitments {
		if pc.ParticipantID.Cmp(s.commitment.ParticipantID) == 0 {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("session: own commitment not found in commitment list")
	}

	_, challenge, err := s.frost.GroupCommitmentAndChallenge(allCommitments, s.message, groupPublicKey)
	if err != nil {
		return nil, err
	}

	lambda, err := s.frost.LagrangeCoefficient(s.participant.id, len(allCommitments))
	if err != nil {
		return nil, err
	}

	return s.frost.ComputeResponse(
		s.commitment,
		s.participant.privateShare,
		s.nonces,
		lambda,
		challenge,
		s.message,
	)
}

// IsConsumed reports whether this session has already produced its share.
func (s *SigningSession) IsConsumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}

// Aggregate combines the participants' responses into a final signature,
// recomputing the group commitment from the published commitment set.
// Typically called by a coordinator after collecting all shares.
func Aggregate(
	f *frost.Frost,
	commitments []*frost.PublicCommitment,
	message string,
	groupPublicKey *big.Int,
	responses []*big.Int,
) (*frost.Signature, error) {
	if len(commitments) == 0 {
		return nil, errors.New("session: no commitments provided")
	}
	if len(responses) == 0 {
		return nil, errors.New("session: no responses provided")
	}
	if len(responses) != len(commitments) {
		return nil, errors.New("session: number of responses must match number of commitments")
	}

	r, _, err := f.GroupCommitmentAndChallenge(commitments, message, groupPublicKey)
	if err != nil {
		return nil, err
	}
	return &frost.Signature{R: r, Z: f.AggregateResponse(responses)}, nil
}

// Verify checks a final signature against the group public key. Returns
// nil when valid and an error describing the failure otherwise.
func Verify(f *frost.Frost, sig *frost.Signature, groupPublicKey *big.Int, message string) error {
	ok, err := f.VerifySignature(sig, groupPublicKey, message)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("session: signature verification failed")
	}
	return nil
}

// QuickSign runs a complete signing round when all participants are
// local: one session per participant, everyone signs over the combined
// commitment set, and the shares are aggregated. Useful for tests and
// single-machine threshold setups; distributed signers should drive
// [SigningSession] directly.
func QuickSign(
	f *frost.Frost,
	rng io.Reader,
	participants []*Participant,
	message string,
	groupPublicKey *big.Int,
) (*frost.Signature, error) {
	if len(participants) == 0 {
		return nil, errors.New("session: no participants provided")
	}

	sessions := make([]*SigningSession, len(participants))
	commitments := make([]*frost.PublicCommitment, len(participants))
	for i, p := range participants {
		sess, err := p.NewSigningSession(rng, message)
		if err != nil {
			return nil, err
		}
		sessions[i] = sess
		commitments[i] = sess.Commitment()
	}

	responses := make([]*big.Int, len(sessions))
	for i, sess := range sessions {
		z, err := sess.Sign(commitments, groupPublicKey)
		if err != nil {
			return nil, err
		}
		responses[i] = z
	}

	return Aggregate(f, commitments, message, groupPublicKey, responses)
}
