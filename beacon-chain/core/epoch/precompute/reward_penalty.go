package precompute

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/mathutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// ProcessRewardsAndPenaltiesPrecompute applies the rewards and penalties
// computed from vp and bal to every validator's balance, mutating state in
// place.
func ProcessRewardsAndPenaltiesPrecompute(state *types.BeaconState, bal *Balance, vp []*Validator) error {
	if helpers.CurrentEpoch(state) == 0 {
		return nil
	}
	if len(vp) != len(state.Validators) {
		return errors.New("precomputed validator records do not match state registry length")
	}

	attRewards, attPenalties := AttestationsDelta(state, bal, vp)
	proposerRewards := ProposersDelta(bal, vp, len(state.Validators))

	for i := range state.Validators {
		helpers.IncreaseBalance(state, uint64(i), attRewards[i]+proposerRewards[i])
		helpers.DecreaseBalance(state, uint64(i), attPenalties[i])
	}
	return nil
}

// AttestationsDelta computes the per-validator reward and penalty owed for
// source, target and head votes cast in the previous epoch, plus the
// inactivity-leak penalty when finality has stalled.
func AttestationsDelta(state *types.BeaconState, bal *Balance, vp []*Validator) ([]uint64, []uint64) {
	rewards := make([]uint64, len(vp))
	penalties := make([]uint64, len(vp))
	prevEpoch := helpers.PrevEpoch(state)
	finalizedEpoch := state.FinalizedCheckpoint.Epoch

	for i, v := range vp {
		rewards[i], penalties[i] = attestationDelta(bal, v, prevEpoch, finalizedEpoch)
	}
	return rewards, penalties
}

func attestationDelta(bal *Balance, v *Validator, prevEpoch, finalizedEpoch uint64) (uint64, uint64) {
	if !EligibleForRewards(v) || bal.PrevEpoch == 0 {
		return 0, 0
	}

	cfg := params.BeaconConfig()
	vb := v.CurrentEpochEffectiveBalance
	br := vb * cfg.BaseRewardFactor / mathutil.IntegerSquareRoot(bal.PrevEpoch) / cfg.BaseRewardsPerEpoch
	r, p := uint64(0), uint64(0)
	increment := cfg.EffectiveBalanceIncrement
	leaking := helpers.IsInInactivityLeak(prevEpoch, finalizedEpoch)

	if v.IsPrevEpochAttester && !v.IsSlashed {
		proposerReward := br / cfg.ProposerRewardQuotient
		maxAttesterReward := br - proposerReward
		r += maxAttesterReward / v.InclusionDistance
		if leaking {
			r += br
		} else {
			r += br * (bal.PrevEpochAttested / increment) / (bal.PrevEpoch / increment)
		}
	} else {
		p += br
	}

	if v.IsPrevEpochTargetAttester && !v.IsSlashed {
		if leaking {
			r += br
		} else {
			r += br * (bal.PrevEpochTargetAttested / increment) / (bal.PrevEpoch / increment)
		}
	} else {
		p += br
	}

	if v.IsPrevEpochHeadAttester && !v.IsSlashed {
		if leaking {
			r += br
		} else {
			r += br * (bal.PrevEpochHeadAttested / increment) / (bal.PrevEpoch / increment)
		}
	} else {
		p += br
	}

	if leaking {
		proposerReward := br / cfg.ProposerRewardQuotient
		p += cfg.BaseRewardsPerEpoch*br - proposerReward
		if !v.IsPrevEpochTargetAttester || v.IsSlashed {
			finalityDelay := helpers.FinalityDelay(prevEpoch, finalizedEpoch)
			p += vb * finalityDelay / cfg.InactivityPenaltyQuotient
		}
	}
	return r, p
}

// ProposersDelta computes the inclusion reward owed to whichever proposer
// first included each validator's matching attestation.
func ProposersDelta(bal *Balance, vp []*Validator, numValidators int) []uint64 {
	rewards := make([]uint64, numValidators)
	cfg := params.BeaconConfig()

	balanceSqrt := mathutil.IntegerSquareRoot(bal.PrevEpoch)
	if balanceSqrt == 0 {
		balanceSqrt = 1
	}
	for _, v := range vp {
		if v.IsPrevEpochAttester && !v.IsSlashed {
			baseReward := v.CurrentEpochEffectiveBalance * cfg.BaseRewardFactor / balanceSqrt / cfg.BaseRewardsPerEpoch
			rewards[v.ProposerIndex] += baseReward / cfg.ProposerRewardQuotient
		}
	}
	return rewards
}

// EligibleForRewards reports whether v is eligible for rewards/penalties
// this epoch transition: active the previous epoch, or slashed but not yet
// withdrawable.
//
// Spec pseudocode definition:
//  if is_active_validator(v, previous_epoch) or (v.slashed and previous_epoch + 1 < v.withdrawable_epoch)
func EligibleForRewards(v *Validator) bool {
	return v.IsActivePrevEpoch || (v.IsSlashed && !v.IsWithdrawableCurrentEpoch)
}
