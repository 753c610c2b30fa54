package session

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/fq/frost"
	"github.com/f3rmion/fq/modular"
)

// Participant holds one signer's long-lived key material: its identifier,
// its private share of the group secret, and the derived public share
// g^share. Create instances with [NewParticipant].
//
// The private share never leaves the Participant; signing happens through
// short-lived [SigningSession] values created per message.
type Participant struct {
	id           *big.Int
	frost        *frost.Frost
	privateShare *big.Int
	publicShare  *big.Int
}

// NewParticipant creates a participant from its identifier and private
// share. The public share is derived as g^privateShare. The identifier
// must be non-negative and the share must lie in [0, q).
//
// Identifiers index into the Lagrange coefficient's 0-based range, so a
// session of n signers conventionally uses the identifiers 0..n-1.
func NewParticipant(f *frost.Frost, id, privateShare *big.Int) (*Participant, error) {
	if f == nil {
		return nil, errors.New("session: nil frost instance")
	}
	if id == nil || id.Sign() < 0 {
		return nil, errors.New("session: participant id must be a non-negative integer")
	}
	ctx := f.Context()
	if privateShare == nil || privateShare.Sign() < 0 || privateShare.Cmp(ctx.Q) >= 0 {
		return nil, fmt.Errorf("session: private share out of range [0, q)")
	}

	pub, err := modular.Pow(ctx.G, privateShare, ctx.Q)
	if err != nil {
		return nil, err
	}

	return &Participant{
		id:           new(big.Int).Set(id),
		frost:        f,
		privateShare: new(big.Int).Set(privateShare),
		publicShare:  pub,
	}, nil
}

// ID returns the participant's identifier.
func (p *Participant) ID() *big.Int {
	return new(big.Int).Set(p.id)
}

// PublicShare returns the participant's public key share g^share.
func (p *Participant) PublicShare() *big.Int {
	return new(big.Int).Set(p.publicShare)
}

// Frost returns the underlying instance for advanced use cases.
func (p *Participant) Frost() *frost.Frost {
	return p.frost
}
