package epoch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/epoch/precompute"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// ValidatorParticipation reports how much of the active stake attested
// correctly for the target checkpoint during an epoch, the metric used to
// judge how close the chain is to justifying and finalizing.
type ValidatorParticipation struct {
	Epoch                   uint64
	Finalized               bool
	GlobalParticipationRate float32
	VotedEther              uint64
	EligibleEther           uint64
}

// ComputeValidatorParticipation derives the previous epoch's attestation
// participation rate from state's pending attestations.
func ComputeValidatorParticipation(ctx context.Context, state *types.BeaconState) (*ValidatorParticipation, error) {
	prevEpoch := helpers.PrevEpoch(state)
	finalized := prevEpoch == state.FinalizedCheckpoint.Epoch

	vp, bal := precompute.New(ctx, state)
	_, bal, err := precompute.ProcessAttestations(state, vp, bal)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute attesting balances")
	}

	var rate float32
	if bal.PrevEpoch > 0 {
		rate = float32(bal.PrevEpochTargetAttested) / float32(bal.PrevEpoch)
	}
	return &ValidatorParticipation{
		Epoch:                   prevEpoch,
		Finalized:               finalized,
		GlobalParticipationRate: rate,
		VotedEther:              bal.PrevEpochTargetAttested,
		EligibleEther:           bal.PrevEpoch,
	}, nil
}
