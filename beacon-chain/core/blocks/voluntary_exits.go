package blocks

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/params"
)

// ProcessVoluntaryExits verifies and applies every voluntary exit a block
// includes.
func ProcessVoluntaryExits(state *types.BeaconState, exits []*types.SignedVoluntaryExit) error {
	for i, exit := range exits {
		if err := ProcessVoluntaryExit(state, exit); err != nil {
			return errors.Wrapf(err, "invalid voluntary exit at index %d", i)
		}
	}
	return nil
}

// ProcessVoluntaryExit checks a validator's exit is well-formed,
// currently active, past its minimum shard-committee tenure, and signed
// by that validator, then initiates its exit.
//
// Spec pseudocode definition:
//  def process_voluntary_exit(state: BeaconState, signed_voluntary_exit: SignedVoluntaryExit) -> None:
//    voluntary_exit = signed_voluntary_exit.message
//    validator = state.validators[voluntary_exit.validator_index]
//    assert is_active_validator(validator, get_current_epoch(state))
//    assert validator.exit_epoch == FAR_FUTURE_EPOCH
//    assert get_current_epoch(state) >= voluntary_exit.epoch
//    assert get_current_epoch(state) >= validator.activation_epoch + SHARD_COMMITTEE_PERIOD
//    domain = get_domain(state, DOMAIN_VOLUNTARY_EXIT, voluntary_exit.epoch)
//    signing_root = compute_signing_root(voluntary_exit, domain)
//    assert bls.Verify(validator.pubkey, signing_root, signed_voluntary_exit.signature)
//    initiate_validator_exit(state, voluntary_exit.validator_index)
func ProcessVoluntaryExit(state *types.BeaconState, signed *types.SignedVoluntaryExit) error {
	if err := verifyVoluntaryExit(state, signed); err != nil {
		return err
	}
	return InitiateValidatorExit(state, signed.Exit.ValidatorIndex)
}

// VerifyVoluntaryExit checks signed against state without initiating the
// exit, so callers can re-validate a pool entry non-destructively.
func VerifyVoluntaryExit(state *types.BeaconState, signed *types.SignedVoluntaryExit) error {
	return verifyVoluntaryExit(state, signed)
}

func verifyVoluntaryExit(state *types.BeaconState, signed *types.SignedVoluntaryExit) error {
	exit := signed.Exit
	if int(exit.ValidatorIndex) >= len(state.Validators) {
		return errors.New("validator index out of bounds")
	}
	validator := state.Validators[exit.ValidatorIndex]
	currentEpoch := helpers.CurrentEpoch(state)

	if !helpers.IsActiveValidator(validator, currentEpoch) {
		return errors.New("validator is not active")
	}
	if validator.ExitEpoch != types.FarFutureEpoch {
		return errors.New("validator has already initiated exit")
	}
	if currentEpoch < exit.Epoch {
		return errors.New("voluntary exit is not yet valid")
	}
	if currentEpoch < validator.ActivationEpoch+params.BeaconConfig().ShardCommitteePeriod {
		return errors.New("validator has not served the minimum shard committee period")
	}

	domain, err := helpers.Domain(state, params.BeaconConfig().DomainVoluntaryExit, exit.Epoch)
	if err != nil {
		return errors.Wrap(err, "could not compute domain")
	}
	exitRoot, err := exit.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash voluntary exit")
	}
	sr := signingRoot(exitRoot, domain)
	ok, err := bls.VerifySignature(signed.Signature[:], sr, validator.PublicKey[:])
	if err != nil {
		return errors.Wrap(err, "could not verify exit signature")
	}
	if !ok {
		return errors.New("invalid voluntary exit signature")
	}
	return nil
}

// InitiateValidatorExit sets a validator's exit epoch to the next
// available slot in the per-epoch churn limit, and its withdrawable epoch
// MIN_VALIDATOR_WITHDRAWABILITY_DELAY after that.
//
// Spec pseudocode definition:
//  def initiate_validator_exit(state: BeaconState, index: ValidatorIndex) -> None:
//    validator = state.validators[index]
//    if validator.exit_epoch != FAR_FUTURE_EPOCH: return
//    exit_epochs = [v.exit_epoch for v in state.validators if v.exit_epoch != FAR_FUTURE_EPOCH]
//    exit_queue_epoch = max(exit_epochs + [compute_activation_exit_epoch(get_current_epoch(state))])
//    ... respect the churn limit, bump exit_queue_epoch if full
//    validator.exit_epoch = exit_queue_epoch
//    validator.withdrawable_epoch = Epoch(validator.exit_epoch + MIN_VALIDATOR_WITHDRAWABILITY_DELAY)
func InitiateValidatorExit(state *types.BeaconState, index uint64) error {
	validator := state.Validators[index]
	if validator.ExitEpoch != types.FarFutureEpoch {
		return nil
	}

	exitQueueEpoch := helpers.DelayedActivationExitEpoch(helpers.CurrentEpoch(state))
	exitQueueChurn := uint64(0)
	for _, v := range state.Validators {
		if v.ExitEpoch == types.FarFutureEpoch {
			continue
		}
		if v.ExitEpoch > exitQueueEpoch {
			exitQueueEpoch = v.ExitEpoch
		}
	}
	for _, v := range state.Validators {
		if v.ExitEpoch == exitQueueEpoch {
			exitQueueChurn++
		}
	}

	activeCount, err := helpers.ActiveValidatorCount(state, helpers.CurrentEpoch(state))
	if err != nil {
		return errors.Wrap(err, "could not get active validator count")
	}
	if exitQueueChurn >= helpers.ValidatorChurnLimit(activeCount) {
		exitQueueEpoch++
	}

	validator.ExitEpoch = exitQueueEpoch
	validator.WithdrawableEpoch = exitQueueEpoch + params.BeaconConfig().MinValidatorWithdrawabilityDelay
	return nil
}
