// Package voluntaryexits implements the voluntary exit pool: a
// dedup-by-validator-index cache that re-verifies its contents against the
// latest state on read and evicts whatever no longer checks out.
package voluntaryexits

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/blocks"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// NewPool returns an empty voluntary exit pool.
func NewPool() *Pool {
	return &Pool{
		pending:  make([]*types.SignedVoluntaryExit, 0),
		included: make(map[uint64]bool),
	}
}

// PendingExits returns up to MaxVoluntaryExits exits still valid against
// st, evicting any that no longer verify.
func (p *Pool) PendingExits(st *types.BeaconState) []*types.SignedVoluntaryExit {
	p.lock.Lock()
	defer p.lock.Unlock()

	numPendingVoluntaryExits.Set(float64(len(p.pending)))

	pending := make([]*types.SignedVoluntaryExit, 0, params.BeaconConfig().MaxVoluntaryExits)
	remaining := p.pending[:0]
	for _, exit := range p.pending {
		if err := blocks.VerifyVoluntaryExit(st, exit); err != nil {
			numPendingVoluntaryExitFailedVerify.Inc()
			continue
		}
		remaining = append(remaining, exit)
		if uint64(len(pending)) < params.BeaconConfig().MaxVoluntaryExits {
			pending = append(pending, exit)
		}
	}
	p.pending = remaining
	return pending
}

// InsertVoluntaryExit adds exit to the pool, replacing any exit already
// pending for the same validator index, unless that index has already
// exited, was already included, or was already slashed.
func (p *Pool) InsertVoluntaryExit(state *types.BeaconState, exit *types.SignedVoluntaryExit) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	idx := exit.Exit.ValidatorIndex
	ok, err := p.validatorExitPreconditionCheck(state, idx)
	if err != nil {
		return err
	}
	if !ok {
		voluntaryExitReattempts.Inc()
		return errors.Errorf("validator at index %d cannot exit", idx)
	}

	found := sort.Search(len(p.pending), func(i int) bool {
		return p.pending[i].Exit.ValidatorIndex >= idx
	})
	if found != len(p.pending) && p.pending[found].Exit.ValidatorIndex == idx {
		p.pending[found] = exit
		return nil
	}

	p.pending = append(p.pending, exit)
	sort.Slice(p.pending, func(i, j int) bool {
		return p.pending[i].Exit.ValidatorIndex < p.pending[j].Exit.ValidatorIndex
	})
	return nil
}

// MarkIncluded removes exit's validator from the pending pool and marks it
// included, once a block carrying the exit has been imported.
func (p *Pool) MarkIncluded(exit *types.SignedVoluntaryExit) {
	p.lock.Lock()
	defer p.lock.Unlock()
	idx := exit.Exit.ValidatorIndex
	i := sort.Search(len(p.pending), func(i int) bool {
		return p.pending[i].Exit.ValidatorIndex >= idx
	})
	if i != len(p.pending) && p.pending[i].Exit.ValidatorIndex == idx {
		p.pending = append(p.pending[:i], p.pending[i+1:]...)
	}
	p.included[idx] = true
	numVoluntaryExitsIncluded.Inc()
}

// validatorExitPreconditionCheck reports whether valIdx is still eligible to
// request a voluntary exit: not already included, not already exited, not
// slashed.
func (p *Pool) validatorExitPreconditionCheck(state *types.BeaconState, valIdx uint64) (bool, error) {
	if p.included[valIdx] {
		return false, nil
	}
	if int(valIdx) >= len(state.Validators) {
		return false, errors.Errorf("validator index %d out of bounds", valIdx)
	}
	validator := state.Validators[valIdx]
	if validator.ExitEpoch != types.FarFutureEpoch {
		return false, nil
	}
	if validator.Slashed {
		return false, nil
	}
	return true, nil
}
