// Package common defines the signature scheme-agnostic interfaces the BLS
// adapter implements, so call sites never import the blst bindings
// directly.
package common

import "github.com/pkg/errors"

// ErrZeroKey is returned when a key is the all-zero byte string, which is
// never a valid BLS secret key.
var ErrZeroKey = errors.New("received secret key is zero")

// SecretKeyIsZero reports whether a secret key's serialized form is the
// zero key, a scalar the BLS scheme forbids.
func SecretKeyIsZero(secretKey []byte) bool {
	for _, b := range secretKey {
		if b != 0 {
			return false
		}
	}
	return true
}

// SecretKey signs messages and derives its public key.
type SecretKey interface {
	PublicKey() PublicKey
	Sign(msg []byte) Signature
	Marshal() []byte
}

// PublicKey verifies signatures and aggregates with other public keys.
type PublicKey interface {
	Marshal() []byte
	Copy() PublicKey
	Aggregate(other PublicKey) PublicKey
	Verify(sig Signature, msg []byte) bool
}

// Signature verifies against a public key and aggregates with other
// signatures.
type Signature interface {
	Marshal() []byte
	Verify(pubKey PublicKey, msg []byte) bool
	AggregateVerify(pubKeys []PublicKey, msgs [][32]byte) bool
	FastAggregateVerify(pubKeys []PublicKey, msg [32]byte) bool
}
