package blockchain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	corestate "github.com/driftchain/beacon-node/beacon-chain/core/state"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/operations"
)

// onBlock runs the state transition function on signed, inserts the block
// into the fork-choice store, and notifies the operation pools of whatever
// the block carried. It does not recompute the head; callers follow it with
// updateHead.
//
// Spec pseudocode definition:
//  pre_state = store.block_states[block.parent_root].copy()
//  assert store.time >= pre_state.genesis_time + block.slot * SECONDS_PER_SLOT
//  state = state_transition(pre_state, block)
//  store.blocks[signing_root(block)] = block
//  store.block_states[signing_root(block)] = state
//  ... update justified/finalized checkpoints ...
func (s *Service) onBlock(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) (*types.BeaconState, error) {
	if signed == nil || signed.Block == nil {
		return nil, errors.New("nil block")
	}
	b := signed.Block

	preState, err := s.statePostBlock(ctx, b.ParentRoot)
	if err != nil {
		return nil, errors.Wrap(err, "could not get pre-state for block")
	}
	postState := preState.Copy()

	log.WithFields(logrus.Fields{
		"slot": b.Slot,
		"root": blockRoot,
	}).Debug("Executing state transition on block")

	if err := corestate.ExecuteStateTransition(ctx, postState, b, corestate.DefaultConfig()); err != nil {
		return nil, errors.Wrap(err, "could not execute state transition")
	}

	if s.db != nil {
		if err := s.db.SaveBlock(ctx, signed); err != nil {
			return nil, errors.Wrapf(err, "could not save block from slot %d", b.Slot)
		}
		if err := s.db.SaveState(ctx, postState, blockRoot); err != nil {
			return nil, errors.Wrap(err, "could not save state")
		}
	}
	s.cacheState(blockRoot, postState)
	s.cacheBlock(blockRoot, signed)

	if err := s.store.OnBlock(blockRoot, b, postState); err != nil {
		return nil, errors.Wrapf(err, "could not insert block %d into fork choice store", b.Slot)
	}

	if s.ops != nil {
		if err := s.feedBlockAttestations(b, postState); err != nil {
			return nil, errors.Wrap(err, "could not feed block attestations to fork choice")
		}
	}

	if postState.Slot >= s.nextEpochBoundarySlot {
		reportEpochMetrics(postState)
		s.nextEpochBoundarySlot = types.StartSlot(helpers.NextEpoch(postState))
	}

	if s.ops != nil {
		s.ops.IncomingProcessedBlockFeed().Send(&operations.ImportedBlock{Root: blockRoot, Block: b})
	}

	processedBlockSlot.Set(float64(b.Slot))
	return postState, nil
}

// feedBlockAttestations derives each attestation's attesting indices from
// committee membership and passes each to AttestationManager.Add at the
// block's slot, which applies it to the fork-choice store or queues it
// exactly as it does any other attestation.
func (s *Service) feedBlockAttestations(b *types.BeaconBlock, postState *types.BeaconState) error {
	for _, a := range b.Body.Attestations {
		committee, err := helpers.BeaconCommittee(postState, a.Data.Slot, a.Data.CommitteeIndex)
		if err != nil {
			return err
		}
		indices, err := helpers.AttestingIndices(a.AggregationBits, committee)
		if err != nil {
			return err
		}
		indexed := &types.IndexedAttestation{
			AttestingIndices: indices,
			Data:             a.Data,
			Signature:        a.Signature,
		}
		if err := s.ops.AttestationManager.Add(b.Slot, indexed); err != nil {
			return err
		}
	}
	return nil
}

// updateHead recomputes the fork-choice head and, if it changed, swaps it
// into the service's cached head block/state.
func (s *Service) updateHead(ctx context.Context) error {
	headRoot, err := s.store.Head()
	if err != nil {
		return errors.Wrap(err, "could not compute head from fork choice store")
	}

	s.headLock.RLock()
	unchanged := headRoot == s.headRoot
	s.headLock.RUnlock()
	if unchanged {
		return nil
	}

	headState, err := s.statePostBlock(ctx, headRoot)
	if err != nil {
		return errors.Wrap(err, "could not get state for new head")
	}

	headBlock, err := s.blockByRoot(ctx, headRoot)
	if err != nil {
		return errors.Wrap(err, "could not get block for new head")
	}

	s.headLock.Lock()
	s.headRoot = headRoot
	s.headState = headState
	s.headBlock = headBlock
	s.headLock.Unlock()

	headSlotGauge.Set(float64(headState.Slot))
	return nil
}
