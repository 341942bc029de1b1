// Package epoch processes epoch transitions: justification and
// finalization, reward and penalty application, registry updates,
// slashing resolution, and the bookkeeping resets a new epoch starts
// with.
package epoch

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/epoch/precompute"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// ProcessEpoch runs every epoch-transition routine in spec order against
// state, mutating it in place. It performs no slot check of its own: the
// caller decides when an epoch transition is due.
func ProcessEpoch(ctx context.Context, state *types.BeaconState) error {
	vp, bal := precompute.New(ctx, state)
	vp, bal, err := precompute.ProcessAttestations(state, vp, bal)
	if err != nil {
		return errors.Wrap(err, "could not precompute attestations")
	}

	if err := ProcessJustificationAndFinalization(state, bal); err != nil {
		return errors.Wrap(err, "could not process justification and finalization")
	}
	if err := precompute.ProcessRewardsAndPenaltiesPrecompute(state, bal, vp); err != nil {
		return errors.Wrap(err, "could not process rewards and penalties")
	}
	if err := ProcessRegistryUpdates(state); err != nil {
		return errors.Wrap(err, "could not process registry updates")
	}
	if err := ProcessSlashings(state); err != nil {
		return errors.Wrap(err, "could not process slashings")
	}
	ProcessFinalUpdates(state)
	return nil
}

// ProcessJustificationAndFinalization updates the state's justified and
// finalized checkpoints from the previous and current epochs' attesting
// balances, then finalizes whichever checkpoint the resulting
// justification-bit pattern allows.
//
// Spec pseudocode definition:
//  def process_justification_and_finalization(state: BeaconState) -> None:
//    if get_current_epoch(state) <= GENESIS_EPOCH + 1:
//        return
//    ...
func ProcessJustificationAndFinalization(state *types.BeaconState, bal *precompute.Balance) error {
	currentEpoch := helpers.CurrentEpoch(state)
	if currentEpoch <= 1 {
		return nil
	}
	prevEpoch := helpers.PrevEpoch(state)

	oldPrevJustified := state.PreviousJustifiedCheckpoint
	oldCurrJustified := state.CurrentJustifiedCheckpoint
	state.PreviousJustifiedCheckpoint = state.CurrentJustifiedCheckpoint

	state.JustificationBits[0] <<= 1
	state.JustificationBits[0] &= 0x0F

	if 3*bal.PrevEpochTargetAttested >= 2*bal.CurrentEpoch {
		root, err := helpers.BlockRoot(state, prevEpoch)
		if err != nil {
			return errors.Wrap(err, "could not get block root for previous epoch")
		}
		state.CurrentJustifiedCheckpoint = &types.Checkpoint{Epoch: prevEpoch, Root: root}
		state.JustificationBits[0] |= 2
	}
	// The current epoch's matching-target balance is not tracked by the
	// precompute pass (it only covers the previous epoch), so current-epoch
	// justification is evaluated directly off current-epoch attestations.
	currTargetAttested, err := currentEpochTargetAttestingBalance(state, currentEpoch)
	if err != nil {
		return errors.Wrap(err, "could not compute current epoch target attesting balance")
	}
	if 3*currTargetAttested >= 2*bal.CurrentEpoch {
		root, err := helpers.BlockRoot(state, currentEpoch)
		if err != nil {
			return errors.Wrap(err, "could not get block root for current epoch")
		}
		state.CurrentJustifiedCheckpoint = &types.Checkpoint{Epoch: currentEpoch, Root: root}
		state.JustificationBits[0] |= 1
	}

	bits := state.JustificationBits[0]
	if oldPrevJustified.Epoch+3 == currentEpoch && (bits>>1)%8 == 7 {
		state.FinalizedCheckpoint = oldPrevJustified
	}
	if oldPrevJustified.Epoch+2 == currentEpoch && (bits>>1)%4 == 3 {
		state.FinalizedCheckpoint = oldPrevJustified
	}
	if oldCurrJustified.Epoch+2 == currentEpoch && bits%8 == 7 {
		state.FinalizedCheckpoint = oldCurrJustified
	}
	if oldCurrJustified.Epoch+1 == currentEpoch && bits%4 == 3 {
		state.FinalizedCheckpoint = oldCurrJustified
	}
	return nil
}

// currentEpochTargetAttestingBalance sums the effective balance of every
// unslashed validator whose current-epoch attestation matched epoch's
// target root.
func currentEpochTargetAttestingBalance(state *types.BeaconState, epoch uint64) (uint64, error) {
	targetRoot, err := helpers.BlockRoot(state, epoch)
	if err != nil {
		return 0, err
	}
	counted := make(map[uint64]bool)
	var total uint64
	for _, att := range state.CurrentEpochAttestations {
		if att.Data.Target.Root != targetRoot {
			continue
		}
		committee, err := helpers.BeaconCommittee(state, att.Data.Slot, att.Data.CommitteeIndex)
		if err != nil {
			return 0, err
		}
		indices, err := helpers.AttestingIndices(att.AggregationBits, committee)
		if err != nil {
			return 0, err
		}
		for _, idx := range indices {
			if counted[idx] || state.Validators[idx].Slashed {
				continue
			}
			counted[idx] = true
			total += state.Validators[idx].EffectiveBalance
		}
	}
	return total, nil
}

// ProcessRegistryUpdates processes activation eligibility, ejects
// validators who have fallen below the ejection balance, and activates
// queued validators up to the churn limit.
//
// Spec pseudocode definition:
//  def process_registry_updates(state: BeaconState) -> None:
func ProcessRegistryUpdates(state *types.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := helpers.CurrentEpoch(state)

	for idx, v := range state.Validators {
		if v.ActivationEligibilityEpoch == types.FarFutureEpoch && v.EffectiveBalance >= cfg.MaxEffectiveBalance {
			v.ActivationEligibilityEpoch = currentEpoch
		}
		if helpers.IsActiveValidator(v, currentEpoch) && v.EffectiveBalance <= cfg.EjectionBalance {
			if err := initiateValidatorExit(state, uint64(idx)); err != nil {
				return errors.Wrapf(err, "could not eject validator %d", idx)
			}
		}
	}

	var activationQueue []uint64
	for idx, v := range state.Validators {
		if v.ActivationEligibilityEpoch != types.FarFutureEpoch &&
			v.ActivationEpoch >= helpers.DelayedActivationExitEpoch(state.FinalizedCheckpoint.Epoch) {
			activationQueue = append(activationQueue, uint64(idx))
		}
	}
	sort.Slice(activationQueue, func(i, j int) bool {
		return state.Validators[activationQueue[i]].ActivationEligibilityEpoch <
			state.Validators[activationQueue[j]].ActivationEligibilityEpoch
	})

	activeCount, err := helpers.ActiveValidatorCount(state, currentEpoch)
	if err != nil {
		return errors.Wrap(err, "could not get active validator count")
	}
	limit := int(helpers.ValidatorChurnLimit(activeCount))
	if limit > len(activationQueue) {
		limit = len(activationQueue)
	}
	for _, idx := range activationQueue[:limit] {
		v := state.Validators[idx]
		if v.ActivationEpoch == types.FarFutureEpoch {
			v.ActivationEpoch = helpers.DelayedActivationExitEpoch(currentEpoch)
		}
	}
	return nil
}

// initiateValidatorExit is the registry-update entry point into the
// shared exit-queue logic also used by voluntary exits.
func initiateValidatorExit(state *types.BeaconState, index uint64) error {
	validator := state.Validators[index]
	if validator.ExitEpoch != types.FarFutureEpoch {
		return nil
	}
	exitQueueEpoch := helpers.DelayedActivationExitEpoch(helpers.CurrentEpoch(state))
	for _, v := range state.Validators {
		if v.ExitEpoch != types.FarFutureEpoch && v.ExitEpoch > exitQueueEpoch {
			exitQueueEpoch = v.ExitEpoch
		}
	}
	churn := uint64(0)
	for _, v := range state.Validators {
		if v.ExitEpoch == exitQueueEpoch {
			churn++
		}
	}
	activeCount, err := helpers.ActiveValidatorCount(state, helpers.CurrentEpoch(state))
	if err != nil {
		return err
	}
	if churn >= helpers.ValidatorChurnLimit(activeCount) {
		exitQueueEpoch++
	}
	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + params.BeaconConfig().MinValidatorWithdrawabilityDelay
	return nil
}

// ProcessSlashings applies the proportional slashing penalty to every
// slashed validator reaching the midpoint of its slashing-exposure window
// this epoch.
//
// Spec pseudocode definition:
//  def process_slashings(state: BeaconState) -> None:
func ProcessSlashings(state *types.BeaconState) error {
	cfg := params.BeaconConfig()
	currentEpoch := helpers.CurrentEpoch(state)
	totalBalance, err := helpers.TotalActiveBalance(state)
	if err != nil {
		return errors.Wrap(err, "could not get total active balance")
	}

	exitLength := cfg.EpochsPerSlashingsVector
	var totalSlashings uint64
	for _, s := range state.Slashings {
		totalSlashings += s
	}
	adjustedTotalSlashing := totalSlashings * cfg.ProportionalSlashingMultiplier
	if adjustedTotalSlashing > totalBalance {
		adjustedTotalSlashing = totalBalance
	}
	increment := cfg.EffectiveBalanceIncrement

	for idx, v := range state.Validators {
		if !v.Slashed || currentEpoch != v.WithdrawableEpoch-exitLength/2 {
			continue
		}
		penalty := (v.EffectiveBalance / increment) * adjustedTotalSlashing / totalBalance * increment
		helpers.DecreaseBalance(state, uint64(idx), penalty)
	}
	return nil
}

// ProcessFinalUpdates resets the per-epoch accumulators (eth1 vote window,
// slashings ring, RANDAO mix, historical roots) and rotates the pending
// attestation lists, preparing state for the next epoch.
//
// Spec pseudocode definition:
//  def process_final_updates(state: BeaconState) -> None:
func ProcessFinalUpdates(state *types.BeaconState) {
	cfg := params.BeaconConfig()
	currentEpoch := helpers.CurrentEpoch(state)
	nextEpoch := currentEpoch + 1

	if (state.Slot+1)%cfg.SlotsPerEth1VotingPeriod == 0 {
		state.Eth1DataVotes = nil
	}

	for idx, v := range state.Validators {
		balance := state.Balances[idx]
		halfInc := cfg.EffectiveBalanceIncrement / 2
		if balance < v.EffectiveBalance || v.EffectiveBalance+3*halfInc < balance {
			v.EffectiveBalance = balance - balance%cfg.EffectiveBalanceIncrement
			if v.EffectiveBalance > cfg.MaxEffectiveBalance {
				v.EffectiveBalance = cfg.MaxEffectiveBalance
			}
		}
	}

	slashedExitLength := cfg.EpochsPerSlashingsVector
	state.Slashings[nextEpoch%slashedExitLength] = 0

	randaoLength := cfg.EpochsPerHistoricalVector
	state.RandaoMixes[nextEpoch%randaoLength] = helpers.RandaoMix(state, currentEpoch)

	epochsPerHistoricalRoot := cfg.HistoricalRootsLimit / cfg.SlotsPerEpoch
	if nextEpoch%epochsPerHistoricalRoot == 0 {
		batchRoot := ssz.Merkleize([][32]byte{
			types.HashVector(state.BlockRoots),
			types.HashVector(state.StateRoots),
		})
		state.HistoricalRoots = append(state.HistoricalRoots, batchRoot)
	}

	state.PreviousEpochAttestations = state.CurrentEpochAttestations
	state.CurrentEpochAttestations = nil
}
