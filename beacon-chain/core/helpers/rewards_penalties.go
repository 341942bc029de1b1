package helpers

import (
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// TotalBalance returns the combined effective balance of the given
// validator indices, in Gwei.
//
// Spec pseudocode definition:
//  def get_total_balance(state: BeaconState, indices: Set[ValidatorIndex]) -> Gwei:
//    return Gwei(max(EFFECTIVE_BALANCE_INCREMENT, sum([state.validators[index].effective_balance for index in indices])))
func TotalBalance(state *types.BeaconState, indices []uint64) uint64 {
	total := uint64(0)
	for _, idx := range indices {
		total += state.Validators[idx].EffectiveBalance
	}
	if increment := params.BeaconConfig().EffectiveBalanceIncrement; total < increment {
		return increment
	}
	return total
}

// TotalActiveBalance returns the combined effective balance of every
// validator active at the state's current epoch.
func TotalActiveBalance(state *types.BeaconState) (uint64, error) {
	epoch := CurrentEpoch(state)
	total := uint64(0)
	for _, v := range state.Validators {
		if IsActiveValidator(v, epoch) {
			total += v.EffectiveBalance
		}
	}
	return total, nil
}

// IncreaseBalance adds delta Gwei to validator idx's balance.
//
// Spec pseudocode definition:
//  def increase_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//    state.balances[index] += delta
func IncreaseBalance(state *types.BeaconState, idx uint64, delta uint64) {
	state.Balances[idx] += delta
}

// DecreaseBalance subtracts delta Gwei from validator idx's balance,
// floored at zero.
//
// Spec pseudocode definition:
//  def decrease_balance(state: BeaconState, index: ValidatorIndex, delta: Gwei) -> None:
//    state.balances[index] = 0 if delta > state.balances[index] else state.balances[index] - delta
func DecreaseBalance(state *types.BeaconState, idx uint64, delta uint64) {
	if delta > state.Balances[idx] {
		state.Balances[idx] = 0
		return
	}
	state.Balances[idx] -= delta
}

// FinalityDelay returns the number of epochs since the last finalized
// checkpoint, as measured from the previous epoch.
//
// Spec pseudocode definition:
//  finality_delay = previous_epoch - state.finalized_checkpoint.epoch
func FinalityDelay(prevEpoch, finalizedEpoch uint64) uint64 {
	return prevEpoch - finalizedEpoch
}

// IsInInactivityLeak reports whether the chain is in an inactivity leak,
// which applies extra penalties to offline validators the longer
// finality has been stalled.
//
// Spec pseudocode definition:
//  finality_delay > MIN_EPOCHS_TO_INACTIVITY_PENALTY
func IsInInactivityLeak(prevEpoch, finalizedEpoch uint64) bool {
	return FinalityDelay(prevEpoch, finalizedEpoch) > params.BeaconConfig().MinEpochsToInactivityPenalty
}
