package frost

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hasher produces the digests from which binding values and challenges
// are derived. Implementations must be deterministic and fixed-length.
//
// The field framing fed into Sum (the "::::" separator between fields
// and the "::" separator inside the commitment form) is fixed by the
// protocol and independent of the hasher; only the digest function
// varies. All parties must agree on the hasher for digests to match.
type Hasher interface {
	// Sum returns the lowercase hex digest of the UTF-8 encoding of input.
	Sum(input string) string
}

// SHA256Hasher is the default hasher.
type SHA256Hasher struct{}

// Sum implements Hasher using SHA-256.
func (SHA256Hasher) Sum(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Blake2b256Hasher hashes with BLAKE2b-256. Digests are the same length
// as SHA-256 but disagree with it, so the two hashers are not
// interoperable within one session.
type Blake2b256Hasher struct{}

// Sum implements Hasher using BLAKE2b-256.
func (Blake2b256Hasher) Sum(input string) string {
	sum := blake2b.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
