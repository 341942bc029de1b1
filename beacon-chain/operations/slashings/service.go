// Package slashings implements the proposer and attester slashing pools:
// dedup-by-validator-index caches that re-verify their contents against the
// latest state on read and evict whatever no longer checks out.
package slashings

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/blocks"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/sliceutil"
)

// NewPool returns an empty proposer and attester slashing pool.
func NewPool() *Pool {
	return &Pool{
		pendingProposerSlashing: make([]*types.ProposerSlashing, 0),
		pendingAttesterSlashing: make([]*PendingAttesterSlashing, 0),
		included:                make(map[uint64]bool),
	}
}

// PendingAttesterSlashings returns up to MaxAttesterSlashings slashings still
// valid against st, evicting any that no longer verify. A slashing whose
// validator has already been claimed by an earlier slashing in this pass
// is left out of the result but kept in the pool.
func (p *Pool) PendingAttesterSlashings(st *types.BeaconState) []*types.AttesterSlashing {
	p.lock.Lock()
	defer p.lock.Unlock()

	numPendingAttesterSlashings.Set(float64(len(p.pendingAttesterSlashing)))

	claimed := make(map[uint64]bool)
	pending := make([]*types.AttesterSlashing, 0, params.BeaconConfig().MaxAttesterSlashings)
	remaining := p.pendingAttesterSlashing[:0]
	for _, slashing := range p.pendingAttesterSlashing {
		if claimed[slashing.validatorToSlash] {
			remaining = append(remaining, slashing)
			continue
		}
		if _, err := blocks.VerifyAttesterSlashing(st, slashing.attesterSlashing); err != nil {
			numPendingAttesterSlashingFailedVerify.Inc()
			continue
		}
		remaining = append(remaining, slashing)
		if uint64(len(pending)) >= params.BeaconConfig().MaxAttesterSlashings {
			continue
		}
		slashedVal := sliceutil.IntersectionUint64(
			slashing.attesterSlashing.Attestation1.AttestingIndices,
			slashing.attesterSlashing.Attestation2.AttestingIndices,
		)
		for _, idx := range slashedVal {
			claimed[idx] = true
		}
		pending = append(pending, slashing.attesterSlashing)
	}
	p.pendingAttesterSlashing = remaining
	return pending
}

// PendingProposerSlashings returns up to MaxProposerSlashings slashings still
// valid against st, evicting any that no longer verify.
func (p *Pool) PendingProposerSlashings(st *types.BeaconState) []*types.ProposerSlashing {
	p.lock.Lock()
	defer p.lock.Unlock()

	numPendingProposerSlashings.Set(float64(len(p.pendingProposerSlashing)))

	pending := make([]*types.ProposerSlashing, 0, params.BeaconConfig().MaxProposerSlashings)
	remaining := p.pendingProposerSlashing[:0]
	for _, slashing := range p.pendingProposerSlashing {
		if err := blocks.VerifyProposerSlashing(st, slashing); err != nil {
			numPendingProposerSlashingFailedVerify.Inc()
			continue
		}
		remaining = append(remaining, slashing)
		if uint64(len(pending)) < params.BeaconConfig().MaxProposerSlashings {
			pending = append(pending, slashing)
		}
	}
	p.pendingProposerSlashing = remaining
	return pending
}

// InsertAttesterSlashing adds slashing to the pool, once per slashable
// validator index, unless that index has already exited, was already
// slashed, or was already included in a block.
func (p *Pool) InsertAttesterSlashing(state *types.BeaconState, slashing *types.AttesterSlashing) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	slashedVal := sliceutil.IntersectionUint64(slashing.Attestation1.AttestingIndices, slashing.Attestation2.AttestingIndices)
	for _, val := range slashedVal {
		ok, err := p.validatorSlashingPreconditionCheck(state, val)
		if err != nil {
			return err
		}
		if !ok {
			attesterSlashingReattempts.Inc()
			return errors.Errorf("validator at index %d cannot be slashed", val)
		}

		found := sort.Search(len(p.pendingAttesterSlashing), func(i int) bool {
			return p.pendingAttesterSlashing[i].validatorToSlash >= val
		})
		if found != len(p.pendingAttesterSlashing) && p.pendingAttesterSlashing[found].validatorToSlash == val {
			continue
		}

		p.pendingAttesterSlashing = append(p.pendingAttesterSlashing, &PendingAttesterSlashing{
			attesterSlashing: slashing,
			validatorToSlash: val,
		})
		sort.Slice(p.pendingAttesterSlashing, func(i, j int) bool {
			return p.pendingAttesterSlashing[i].validatorToSlash < p.pendingAttesterSlashing[j].validatorToSlash
		})
	}
	return nil
}

// InsertProposerSlashing adds slashing to the pool, unless its proposer has
// already exited, was already slashed, already included, or already has a
// pending slashing queued.
func (p *Pool) InsertProposerSlashing(state *types.BeaconState, slashing *types.ProposerSlashing) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	idx := slashing.Header1.Header.ProposerIndex
	ok, err := p.validatorSlashingPreconditionCheck(state, idx)
	if err != nil {
		return err
	}
	if !ok {
		proposerSlashingReattempts.Inc()
		return errors.Errorf("validator at index %d cannot be slashed", idx)
	}

	found := sort.Search(len(p.pendingProposerSlashing), func(i int) bool {
		return p.pendingProposerSlashing[i].Header1.Header.ProposerIndex >= idx
	})
	if found != len(p.pendingProposerSlashing) && p.pendingProposerSlashing[found].Header1.Header.ProposerIndex == idx {
		return errors.New("proposer slashing already exists in the pool")
	}

	p.pendingProposerSlashing = append(p.pendingProposerSlashing, slashing)
	sort.Slice(p.pendingProposerSlashing, func(i, j int) bool {
		return p.pendingProposerSlashing[i].Header1.Header.ProposerIndex < p.pendingProposerSlashing[j].Header1.Header.ProposerIndex
	})
	return nil
}

// MarkIncludedAttesterSlashing removes every validator index as proves
// slashable from the pending pool and marks it included, once a block
// carrying the slashing has been imported.
func (p *Pool) MarkIncludedAttesterSlashing(as *types.AttesterSlashing) {
	p.lock.Lock()
	defer p.lock.Unlock()
	slashedVal := sliceutil.IntersectionUint64(as.Attestation1.AttestingIndices, as.Attestation2.AttestingIndices)
	for _, val := range slashedVal {
		i := sort.Search(len(p.pendingAttesterSlashing), func(i int) bool {
			return p.pendingAttesterSlashing[i].validatorToSlash >= val
		})
		if i != len(p.pendingAttesterSlashing) && p.pendingAttesterSlashing[i].validatorToSlash == val {
			p.pendingAttesterSlashing = append(p.pendingAttesterSlashing[:i], p.pendingAttesterSlashing[i+1:]...)
		}
		p.included[val] = true
		numAttesterSlashingsIncluded.Inc()
	}
}

// MarkIncludedProposerSlashing removes ps's proposer from the pending pool
// and marks it included, once a block carrying the slashing has been
// imported.
func (p *Pool) MarkIncludedProposerSlashing(ps *types.ProposerSlashing) {
	p.lock.Lock()
	defer p.lock.Unlock()
	idx := ps.Header1.Header.ProposerIndex
	i := sort.Search(len(p.pendingProposerSlashing), func(i int) bool {
		return p.pendingProposerSlashing[i].Header1.Header.ProposerIndex >= idx
	})
	if i != len(p.pendingProposerSlashing) && p.pendingProposerSlashing[i].Header1.Header.ProposerIndex == idx {
		p.pendingProposerSlashing = append(p.pendingProposerSlashing[:i], p.pendingProposerSlashing[i+1:]...)
	}
	p.included[idx] = true
	numProposerSlashingsIncluded.Inc()
}

// validatorSlashingPreconditionCheck reports whether valIdx is still a valid
// slashing target: not already included, not already exited, not already
// slashed.
func (p *Pool) validatorSlashingPreconditionCheck(state *types.BeaconState, valIdx uint64) (bool, error) {
	if p.included[valIdx] {
		return false, nil
	}
	if int(valIdx) >= len(state.Validators) {
		return false, errors.Errorf("validator index %d out of bounds", valIdx)
	}
	validator := state.Validators[valIdx]
	if validator.ExitEpoch < helpers.CurrentEpoch(state) {
		return false, nil
	}
	if validator.Slashed {
		return false, nil
	}
	return true, nil
}
