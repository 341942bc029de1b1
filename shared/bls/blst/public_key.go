package blst

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/shared/bls/common"
)

const publicKeyLength = 48

// PublicKey wraps a blst G1 affine point.
type PublicKey struct {
	p *blstPublicKey
}

// PublicKeyFromBytes deserializes a compressed 48-byte G1 public key.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	if len(pubKey) != publicKeyLength {
		return nil, fmt.Errorf("public key must be %d bytes", publicKeyLength)
	}
	p := new(blstPublicKey).Uncompress(pubKey)
	if p == nil {
		return nil, errors.New("could not unmarshal bytes into public key")
	}
	if !p.KeyValidate() {
		return nil, errors.New("public key failed group validation")
	}
	return &PublicKey{p: p}, nil
}

// Marshal serializes the public key to its compressed 48-byte form.
func (p *PublicKey) Marshal() []byte {
	return p.p.Compress()
}

// Copy returns an independent copy of the public key.
func (p *PublicKey) Copy() common.PublicKey {
	copied := *p.p
	return &PublicKey{p: &copied}
}

// Aggregate combines this public key with another, returning the sum.
//
// Spec pseudocode definition:
//  def eth_aggregate_pubkeys(pubkeys: Sequence[BLSPubkey]) -> BLSPubkey
func (p *PublicKey) Aggregate(other common.PublicKey) common.PublicKey {
	o := other.(*PublicKey)
	agg := new(blstAggregatePublicKey)
	agg.Add(p.p, false)
	agg.Add(o.p, false)
	combined := agg.ToAffine()
	return &PublicKey{p: combined}
}

// Verify checks a signature against this public key and message.
func (p *PublicKey) Verify(sig common.Signature, msg []byte) bool {
	return sig.Verify(p, msg)
}

// AggregatePublicKeys sums a slice of public keys into one.
func AggregatePublicKeys(pubkeys [][]byte) (common.PublicKey, error) {
	if len(pubkeys) == 0 {
		return nil, errors.New("no public keys to aggregate")
	}
	keys := make([]*blstPublicKey, len(pubkeys))
	for i, raw := range pubkeys {
		k, err := PublicKeyFromBytes(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "could not unmarshal public key at index %d", i)
		}
		keys[i] = k.(*PublicKey).p
	}
	agg := new(blstAggregatePublicKey)
	for _, k := range keys {
		agg.Add(k, false)
	}
	return &PublicKey{p: agg.ToAffine()}, nil
}
