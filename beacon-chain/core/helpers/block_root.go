package helpers

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// BlockRootAtSlot returns the block root recorded at slot, read from the
// state's rolling BlockRoots vector.
//
// Spec pseudocode definition:
//  def get_block_root_at_slot(state: BeaconState, slot: Slot) -> Root:
//    assert slot < state.slot <= slot + SLOTS_PER_HISTORICAL_ROOT
//    return state.block_roots[slot % SLOTS_PER_HISTORICAL_ROOT]
func BlockRootAtSlot(state *types.BeaconState, slot uint64) ([32]byte, error) {
	span := params.BeaconConfig().SlotsPerHistoricalRoot
	if slot >= state.Slot || state.Slot > slot+span {
		return [32]byte{}, errors.Errorf("slot %d out of bounds for current slot %d", slot, state.Slot)
	}
	return state.BlockRoots[slot%span], nil
}

// BlockRoot returns the block root of the first slot of epoch.
//
// Spec pseudocode definition:
//  def get_block_root(state: BeaconState, epoch: Epoch) -> Root:
//    return get_block_root_at_slot(state, compute_start_slot_at_epoch(epoch))
func BlockRoot(state *types.BeaconState, epoch uint64) ([32]byte, error) {
	return BlockRootAtSlot(state, StartSlot(epoch))
}
