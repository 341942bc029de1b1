package blst

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/shared/bls/common"
)

const signatureLength = 96

// Signature wraps a blst G2 affine point.
type Signature struct {
	s *blstSignature
}

// SignatureFromBytes deserializes a compressed 96-byte G2 signature.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != signatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", signatureLength)
	}
	s := new(blstSignature).Uncompress(sig)
	if s == nil {
		return nil, errors.New("could not unmarshal bytes into signature")
	}
	if !s.SigValidate(false) {
		return nil, errors.New("signature failed group validation")
	}
	return &Signature{s: s}, nil
}

// Marshal serializes the signature to its compressed 96-byte form.
func (s *Signature) Marshal() []byte {
	return s.s.Compress()
}

// Verify checks the signature against a single public key and message.
//
// Spec pseudocode definition:
//  def Verify(PK: BLSPubkey, message: Bytes, signature: BLSSignature) -> bool
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	pk := pubKey.(*PublicKey)
	return s.s.Verify(true, pk.p, false, msg, dst)
}

// AggregateVerify checks an aggregate signature against one message per
// public key, in matching order.
//
// Spec pseudocode definition:
//  def AggregateVerify(pubkeys: Sequence[BLSPubkey], messages: Sequence[Bytes], signature: BLSSignature) -> bool
func (s *Signature) AggregateVerify(pubKeys []common.PublicKey, msgs [][32]byte) bool {
	if len(pubKeys) != len(msgs) {
		return false
	}
	rawKeys := make([]*blstPublicKey, len(pubKeys))
	rawMsgs := make([][]byte, len(msgs))
	for i, pk := range pubKeys {
		rawKeys[i] = pk.(*PublicKey).p
		m := msgs[i]
		rawMsgs[i] = m[:]
	}
	return s.s.AggregateVerify(true, rawKeys, false, rawMsgs, dst)
}

// FastAggregateVerify checks an aggregate signature against a single
// message shared by every public key (the attestation aggregate case).
//
// Spec pseudocode definition:
//  def FastAggregateVerify(pubkeys: Sequence[BLSPubkey], message: Bytes, signature: BLSSignature) -> bool
func (s *Signature) FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) bool {
	if len(pubKeys) == 0 {
		return false
	}
	rawKeys := make([]*blstPublicKey, len(pubKeys))
	for i, pk := range pubKeys {
		rawKeys[i] = pk.(*PublicKey).p
	}
	return s.s.FastAggregateVerify(true, rawKeys, msg[:], dst)
}

// AggregateSignatures combines a slice of signatures into a single
// aggregate signature.
func AggregateSignatures(sigs []common.Signature) (common.Signature, error) {
	if len(sigs) == 0 {
		return nil, errors.New("no signatures to aggregate")
	}
	agg := new(blstAggregateSignature)
	for i, raw := range sigs {
		sig := raw.(*Signature)
		if !agg.Add(sig.s, false) {
			return nil, fmt.Errorf("could not aggregate signature at index %d", i)
		}
	}
	return &Signature{s: agg.ToAffine()}, nil
}
