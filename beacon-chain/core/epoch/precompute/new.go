package precompute

import (
	"context"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// New walks the validator registry once and returns a Validator record per
// validator plus the epoch-wide Balance totals, classifying each validator
// by its activity and slashing status this epoch and the previous one.
// ProcessAttestations later fills in the attestation-derived fields.
func New(ctx context.Context, state *types.BeaconState) ([]*Validator, *Balance) {
	currentEpoch := helpers.CurrentEpoch(state)
	prevEpoch := helpers.PrevEpoch(state)

	vp := make([]*Validator, len(state.Validators))
	bal := &Balance{}
	for i, v := range state.Validators {
		if ctx.Err() != nil {
			break
		}
		p := &Validator{
			IsSlashed:                    v.Slashed,
			IsWithdrawableCurrentEpoch:   currentEpoch >= v.WithdrawableEpoch,
			IsActiveCurrentEpoch:         helpers.IsActiveValidator(v, currentEpoch),
			IsActivePrevEpoch:            helpers.IsActiveValidator(v, prevEpoch),
			CurrentEpochEffectiveBalance: v.EffectiveBalance,
			InclusionSlot:                types.FarFutureEpoch,
			InclusionDistance:            types.FarFutureEpoch,
		}
		vp[i] = p
		if p.IsActiveCurrentEpoch {
			bal.CurrentEpoch += v.EffectiveBalance
		}
		if p.IsActivePrevEpoch {
			bal.PrevEpoch += v.EffectiveBalance
		}
	}
	return vp, bal
}
