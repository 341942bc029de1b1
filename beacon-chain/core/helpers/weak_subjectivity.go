package helpers

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// ComputeWeakSubjectivityPeriod returns the number of epochs a checkpoint
// sync client must stay online to remain safe from long-range attacks,
// taking validator churn and balance top-ups into account.
//
// Reference spec implementation:
// https://github.com/ethereum/eth2.0-specs/blob/master/specs/phase0/weak-subjectivity.md#calculating-the-weak-subjectivity-period
func ComputeWeakSubjectivityPeriod(state *types.BeaconState) (uint64, error) {
	cfg := params.BeaconConfig()
	wsp := cfg.MinValidatorWithdrawabilityDelay

	n, err := ActiveValidatorCount(state, CurrentEpoch(state))
	if err != nil {
		return 0, errors.Wrap(err, "could not get active validator count")
	}
	if n == 0 {
		return wsp, nil
	}

	totalActive, err := TotalActiveBalance(state)
	if err != nil {
		return 0, errors.Wrap(err, "could not get total active balance")
	}
	t := totalActive / n / cfg.GweiPerEth
	bigT := cfg.MaxEffectiveBalance / cfg.GweiPerEth
	delta := ValidatorChurnLimit(n)
	bigDelta := cfg.MaxDeposits * cfg.SlotsPerEpoch
	d := cfg.SafetyDecay

	if bigT*(200+3*d) < t*(200+12*d) {
		epochsForChurn := n * (t*(200+12*d) - bigT*(200+3*d)) / (600 * delta * (2*t + bigT))
		epochsForTopUps := n * (200 + 3*d) / (600 * bigDelta)
		if epochsForChurn > epochsForTopUps {
			wsp += epochsForChurn
		} else {
			wsp += epochsForTopUps
		}
	} else {
		wsp += 3 * n * d * t / (200 * bigDelta * (bigT - t))
	}
	return wsp, nil
}
