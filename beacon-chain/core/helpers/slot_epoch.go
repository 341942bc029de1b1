package helpers

import (
	"time"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// SlotToEpoch returns the epoch number of the input slot.
//
// Spec pseudocode definition:
//  def compute_epoch_at_slot(slot: Slot) -> Epoch:
//    return Epoch(slot // SLOTS_PER_EPOCH)
func SlotToEpoch(slot uint64) uint64 {
	return slot / params.BeaconConfig().SlotsPerEpoch
}

// CurrentEpoch returns the current epoch number calculated from the slot
// number stored in beacon state.
//
// Spec pseudocode definition:
//  def get_current_epoch(state: BeaconState) -> Epoch:
//    return compute_epoch_at_slot(state.slot)
func CurrentEpoch(state *types.BeaconState) uint64 {
	return SlotToEpoch(state.Slot)
}

// PrevEpoch returns the previous epoch number calculated from the slot
// number stored in beacon state, clamped at the genesis epoch.
//
// Spec pseudocode definition:
//  def get_previous_epoch(state: BeaconState) -> Epoch:
//    current_epoch = get_current_epoch(state)
//    return GENESIS_EPOCH if current_epoch == GENESIS_EPOCH else Epoch(current_epoch - 1)
func PrevEpoch(state *types.BeaconState) uint64 {
	current := CurrentEpoch(state)
	if current == 0 {
		return 0
	}
	return current - 1
}

// NextEpoch returns the next epoch number calculated from the slot number
// stored in beacon state.
func NextEpoch(state *types.BeaconState) uint64 {
	return CurrentEpoch(state) + 1
}

// StartSlot returns the first slot number of the given epoch.
//
// Spec pseudocode definition:
//  def compute_start_slot_at_epoch(epoch: Epoch) -> Slot:
//    return Slot(epoch * SLOTS_PER_EPOCH)
func StartSlot(epoch uint64) uint64 {
	return epoch * params.BeaconConfig().SlotsPerEpoch
}

// IsEpochStart returns true if the given slot is the first slot of an epoch.
func IsEpochStart(slot uint64) bool {
	return slot%params.BeaconConfig().SlotsPerEpoch == 0
}

// IsEpochEnd returns true if the given slot is the last slot of an epoch.
func IsEpochEnd(slot uint64) bool {
	return IsEpochStart(slot + 1)
}

// SlotToTime returns the wall-clock time a slot starts at, given the
// genesis time it counts from.
func SlotToTime(genesisTime uint64, slot uint64) (time.Time, error) {
	secondsPerSlot := params.BeaconConfig().SecondsPerSlot
	if slot > (1<<63-1)/secondsPerSlot {
		return time.Time{}, errors.Errorf("slot %d out of bounds", slot)
	}
	return time.Unix(int64(genesisTime+slot*secondsPerSlot), 0), nil
}
