package precompute

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// ProcessAttestations folds the previous epoch's pending attestations into
// vp and bal: for every validator index attesting correctly to source,
// target or head, it marks the corresponding flag, tracks the earliest
// inclusion slot/delay/proposer, and accumulates the attesting balance.
func ProcessAttestations(state *types.BeaconState, vp []*Validator, bal *Balance) ([]*Validator, *Balance, error) {
	prevEpoch := helpers.PrevEpoch(state)
	targetRoot, err := helpers.BlockRoot(state, prevEpoch)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not get target root for previous epoch")
	}

	for _, att := range state.PreviousEpochAttestations {
		committee, err := helpers.BeaconCommittee(state, att.Data.Slot, att.Data.CommitteeIndex)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not get beacon committee")
		}
		indices, err := helpers.AttestingIndices(att.AggregationBits, committee)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not get attesting indices")
		}

		matchesTarget := att.Data.Target.Root == targetRoot
		headRoot, err := helpers.BlockRootAtSlot(state, att.Data.Slot)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not get head root for attestation slot")
		}
		matchesHead := att.Data.BeaconBlockRoot == headRoot

		for _, idx := range indices {
			v := vp[idx]
			if v.IsSlashed {
				continue
			}
			if !v.IsPrevEpochAttester {
				bal.PrevEpochAttested += v.CurrentEpochEffectiveBalance
			}
			v.IsPrevEpochAttester = true
			if att.InclusionDelay < v.InclusionDistance {
				v.InclusionDistance = att.InclusionDelay
				v.InclusionSlot = att.Data.Slot + att.InclusionDelay
				v.ProposerIndex = att.ProposerIndex
			}
			if matchesTarget {
				if !v.IsPrevEpochTargetAttester {
					bal.PrevEpochTargetAttested += v.CurrentEpochEffectiveBalance
				}
				v.IsPrevEpochTargetAttester = true
				if matchesHead {
					if !v.IsPrevEpochHeadAttester {
						bal.PrevEpochHeadAttested += v.CurrentEpochEffectiveBalance
					}
					v.IsPrevEpochHeadAttester = true
				}
			}
		}
	}
	return vp, bal, nil
}
