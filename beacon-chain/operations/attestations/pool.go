// Package attestations implements the attestation pool: a fingerprint-keyed
// store of aggregate attestations that dedups and merges incoming votes
// before they're offered up for block inclusion.
package attestations

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/params"
)

// fingerprint identifies the (slot, committee_index, beacon_block_root,
// source, target) vote an attestation casts; every attestation sharing a
// fingerprint aggregates into the same pool entry.
type fingerprint [32]byte

func fingerprintOf(data *types.AttestationData) (fingerprint, error) {
	root, err := data.HashTreeRoot()
	if err != nil {
		return fingerprint{}, err
	}
	return fingerprint(root), nil
}

// Pool is the mutex-guarded aggregate attestation cache. A newly received
// attestation whose fingerprint is absent is inserted; if present, and its
// bit-set is a strict subset of the stored bit-set, it is dropped as
// redundant; if it adds at least one new bit, the stored aggregate is
// replaced by the BLS aggregate and the union of bit-sets.
type Pool struct {
	lock sync.RWMutex
	atts map[fingerprint]*types.Attestation
}

// NewPool returns an empty attestation pool.
func NewPool() *Pool {
	return &Pool{atts: make(map[fingerprint]*types.Attestation)}
}

// Save inserts att into the pool, merging it into any existing aggregate for
// the same fingerprint.
func (p *Pool) Save(att *types.Attestation) error {
	fp, err := fingerprintOf(att.Data)
	if err != nil {
		return errors.Wrap(err, "could not fingerprint attestation")
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	existing, ok := p.atts[fp]
	if !ok {
		p.atts[fp] = att
		return nil
	}
	if existing.AggregationBits.Contains(att.AggregationBits) {
		return nil
	}

	existingSig, err := bls.SignatureFromBytes(existing.Signature[:])
	if err != nil {
		return errors.Wrap(err, "could not deserialize stored aggregate signature")
	}
	incomingSig, err := bls.SignatureFromBytes(att.Signature[:])
	if err != nil {
		return errors.Wrap(err, "could not deserialize incoming signature")
	}
	merged, err := bls.AggregateSignatures([]bls.Signature{existingSig, incomingSig})
	if err != nil {
		return errors.Wrap(err, "could not aggregate signatures")
	}

	var sig [96]byte
	copy(sig[:], merged.Marshal())
	p.atts[fp] = &types.Attestation{
		AggregationBits: existing.AggregationBits.Or(att.AggregationBits),
		Data:            existing.Data,
		Signature:       sig,
	}
	return nil
}

// Count returns the number of distinct fingerprints currently aggregated.
func (p *Pool) Count() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.atts)
}

// Aggregates returns every aggregate currently held in the pool.
func (p *Pool) Aggregates() []*types.Attestation {
	p.lock.RLock()
	defer p.lock.RUnlock()
	out := make([]*types.Attestation, 0, len(p.atts))
	for _, a := range p.atts {
		out = append(out, a)
	}
	return out
}

// AggregatesForBlock returns at most MAX_ATTESTATIONS aggregates eligible
// for inclusion in a block at slot: those whose data.slot +
// MIN_ATTESTATION_INCLUSION_DELAY <= slot and data.slot + SLOTS_PER_EPOCH >=
// slot.
func (p *Pool) AggregatesForBlock(slot uint64) []*types.Attestation {
	cfg := params.BeaconConfig()

	p.lock.RLock()
	defer p.lock.RUnlock()

	eligible := make([]*types.Attestation, 0, len(p.atts))
	for _, a := range p.atts {
		if a.Data.Slot+cfg.MinAttestationInclusionDelay > slot {
			continue
		}
		if a.Data.Slot+cfg.SlotsPerEpoch < slot {
			continue
		}
		eligible = append(eligible, a)
	}
	if uint64(len(eligible)) > cfg.MaxAttestations {
		eligible = eligible[:cfg.MaxAttestations]
	}
	return eligible
}
