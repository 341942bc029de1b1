// Package bls implements the BLS12-381 signature scheme Ethereum 2.0 uses
// for block, attestation and voluntary exit signatures. It exposes one
// backend, github.com/supranational/blst.
package bls

import (
	"github.com/driftchain/beacon-node/shared/bls/blst"
	"github.com/driftchain/beacon-node/shared/bls/common"
)

// SecretKey signs messages and derives its public key.
type SecretKey = common.SecretKey

// PublicKey verifies signatures and aggregates with other public keys.
type PublicKey = common.PublicKey

// Signature verifies against a public key and aggregates with other
// signatures.
type Signature = common.Signature

// RandKey generates a new random secret key.
func RandKey() (SecretKey, error) {
	return blst.RandKey()
}

// SecretKeyFromBytes deserializes a 32-byte big-endian secret key.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	return blst.SecretKeyFromBytes(b)
}

// PublicKeyFromBytes deserializes a compressed 48-byte public key.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	return blst.PublicKeyFromBytes(b)
}

// SignatureFromBytes deserializes a compressed 96-byte signature.
func SignatureFromBytes(b []byte) (Signature, error) {
	return blst.SignatureFromBytes(b)
}

// AggregatePublicKeys sums a slice of compressed public keys.
func AggregatePublicKeys(pubkeys [][]byte) (PublicKey, error) {
	return blst.AggregatePublicKeys(pubkeys)
}

// AggregateSignatures combines a slice of signatures into one.
func AggregateSignatures(sigs []Signature) (Signature, error) {
	return blst.AggregateSignatures(sigs)
}

// VerifySignature checks a single signature against a public key and
// message in one call, the common case for block/exit signatures.
func VerifySignature(sig []byte, msg [32]byte, pubKey []byte) (bool, error) {
	s, err := SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	p, err := PublicKeyFromBytes(pubKey)
	if err != nil {
		return false, err
	}
	return s.Verify(p, msg[:]), nil
}
