package blst

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
	blst "github.com/supranational/blst/bindings/go"
	"github.com/driftchain/beacon-node/shared/bls/common"
)

const secretKeyLength = 32

// bls12SecretKey wraps a blst scalar secret key on the BLS12-381 curve.
type bls12SecretKey struct {
	p *blst.SecretKey
}

// RandKey generates a new random secret key.
func RandKey() (common.SecretKey, error) {
	var ikm [32]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return nil, errors.Wrap(err, "could not read randomness")
	}
	secKey := &bls12SecretKey{p: blst.KeyGen(ikm[:])}
	if common.SecretKeyIsZero(secKey.Marshal()) {
		return nil, common.ErrZeroKey
	}
	return secKey, nil
}

// SecretKeyFromBytes creates a BLS private key from a big-endian byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != secretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", secretKeyLength)
	}
	if common.SecretKeyIsZero(privKey) {
		return nil, common.ErrZeroKey
	}
	secKey := new(blst.SecretKey).Deserialize(privKey)
	if secKey == nil {
		return nil, errors.New("could not unmarshal bytes into secret key")
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey derives the public key corresponding to this secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: new(blstPublicKey).From(s.p)}
}

// Sign signs msg with this secret key, returning a G2 signature.
//
// Spec pseudocode definition:
//  def Sign(SK: int, message: Bytes) -> BLSSignature
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := new(blstSignature).Sign(s.p, msg, dst)
	return &Signature{s: signature}
}

// Marshal serializes the secret key to a big-endian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	keyBytes := s.p.Serialize()
	if len(keyBytes) < secretKeyLength {
		padded := make([]byte, secretKeyLength-len(keyBytes))
		keyBytes = append(padded, keyBytes...)
	}
	return keyBytes
}
