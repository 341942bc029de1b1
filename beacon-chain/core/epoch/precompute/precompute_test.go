package precompute_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/epoch/precompute"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

func TestNew_ClassifiesValidators(t *testing.T) {
	ffe := types.FarFutureEpoch
	state := &types.BeaconState{
		Slot: params.BeaconConfig().SlotsPerEpoch,
		Validators: []*types.Validator{
			{Slashed: true, WithdrawableEpoch: ffe, EffectiveBalance: 100},
			{WithdrawableEpoch: 0, ExitEpoch: 0, EffectiveBalance: 100},
			{WithdrawableEpoch: ffe, ExitEpoch: ffe, EffectiveBalance: 100},
			{WithdrawableEpoch: ffe, ExitEpoch: 1, EffectiveBalance: 100},
		},
	}

	vp, bal := precompute.New(context.Background(), state)

	assert.True(t, vp[0].IsSlashed)
	assert.False(t, vp[0].IsActiveCurrentEpoch)

	assert.True(t, vp[1].IsWithdrawableCurrentEpoch)
	assert.False(t, vp[1].IsActiveCurrentEpoch)

	assert.True(t, vp[2].IsActiveCurrentEpoch)
	assert.True(t, vp[2].IsActivePrevEpoch)

	assert.False(t, vp[3].IsActiveCurrentEpoch)
	assert.True(t, vp[3].IsActivePrevEpoch)

	assert.Equal(t, uint64(100), bal.CurrentEpoch)
	assert.Equal(t, uint64(200), bal.PrevEpoch)
}

func TestEligibleForRewards(t *testing.T) {
	assert.True(t, precompute.EligibleForRewards(&precompute.Validator{IsActivePrevEpoch: true}))
	assert.True(t, precompute.EligibleForRewards(&precompute.Validator{IsSlashed: true, IsWithdrawableCurrentEpoch: false}))
	assert.False(t, precompute.EligibleForRewards(&precompute.Validator{IsSlashed: true, IsWithdrawableCurrentEpoch: true}))
	assert.False(t, precompute.EligibleForRewards(&precompute.Validator{}))
}

func rewardTestState(finalizedEpoch uint64) *types.BeaconState {
	cfg := params.BeaconConfig()
	return &types.BeaconState{
		Slot:                (finalizedEpoch + 2) * cfg.SlotsPerEpoch,
		FinalizedCheckpoint: &types.Checkpoint{Epoch: finalizedEpoch},
	}
}

func TestAttestationsDelta_FullyAttestingValidatorEarnsReward(t *testing.T) {
	state := rewardTestState(0)
	bal := &precompute.Balance{
		PrevEpoch:               3200000000000,
		PrevEpochAttested:       3200000000000,
		PrevEpochTargetAttested: 3200000000000,
		PrevEpochHeadAttested:   3200000000000,
	}
	vp := []*precompute.Validator{
		{
			IsActivePrevEpoch:            true,
			IsPrevEpochAttester:          true,
			IsPrevEpochTargetAttester:    true,
			IsPrevEpochHeadAttester:      true,
			CurrentEpochEffectiveBalance: params.BeaconConfig().MaxEffectiveBalance,
			InclusionDistance:            1,
		},
	}

	rewards, penalties := precompute.AttestationsDelta(state, bal, vp)

	require.Len(t, rewards, 1)
	require.Len(t, penalties, 1)
	assert.True(t, rewards[0] > 0, "fully attesting validator should earn a nonzero reward")
	assert.Equal(t, uint64(0), penalties[0])
}

func TestAttestationsDelta_NonAttesterIsPenalizedNotRewarded(t *testing.T) {
	state := rewardTestState(0)
	bal := &precompute.Balance{
		PrevEpoch:               3200000000000,
		PrevEpochAttested:       1600000000000,
		PrevEpochTargetAttested: 1600000000000,
		PrevEpochHeadAttested:   1600000000000,
	}
	vp := []*precompute.Validator{
		{
			IsActivePrevEpoch:            true,
			CurrentEpochEffectiveBalance: params.BeaconConfig().MaxEffectiveBalance,
		},
	}

	rewards, penalties := precompute.AttestationsDelta(state, bal, vp)

	assert.Equal(t, uint64(0), rewards[0])
	assert.True(t, penalties[0] > 0, "non-attesting validator should be penalized")
}

func TestAttestationsDelta_IneligibleValidatorEarnsNothing(t *testing.T) {
	state := rewardTestState(0)
	bal := &precompute.Balance{PrevEpoch: 3200000000000}
	vp := []*precompute.Validator{{}}

	rewards, penalties := precompute.AttestationsDelta(state, bal, vp)

	assert.Equal(t, uint64(0), rewards[0])
	assert.Equal(t, uint64(0), penalties[0])
}

func TestProposersDelta_CreditsIncludingProposer(t *testing.T) {
	bal := &precompute.Balance{PrevEpoch: 3200000000000}
	vp := []*precompute.Validator{
		{
			IsActivePrevEpoch:            true,
			IsPrevEpochAttester:          true,
			CurrentEpochEffectiveBalance: params.BeaconConfig().MaxEffectiveBalance,
			ProposerIndex:                2,
		},
	}

	rewards := precompute.ProposersDelta(bal, vp, 3)

	require.Len(t, rewards, 3)
	assert.Equal(t, uint64(0), rewards[0])
	assert.Equal(t, uint64(0), rewards[1])
	assert.True(t, rewards[2] > 0, "proposer of the included attestation should be credited")
}

func TestProposersDelta_SlashedAttesterEarnsNoCredit(t *testing.T) {
	bal := &precompute.Balance{PrevEpoch: 3200000000000}
	vp := []*precompute.Validator{
		{
			IsActivePrevEpoch:            true,
			IsPrevEpochAttester:          true,
			IsSlashed:                    true,
			CurrentEpochEffectiveBalance: params.BeaconConfig().MaxEffectiveBalance,
			ProposerIndex:                0,
		},
	}

	rewards := precompute.ProposersDelta(bal, vp, 1)

	assert.Equal(t, uint64(0), rewards[0])
}

func TestProcessRewardsAndPenaltiesPrecompute_NoOpAtGenesis(t *testing.T) {
	state := &types.BeaconState{
		Slot:       0,
		Validators: []*types.Validator{{EffectiveBalance: params.BeaconConfig().MaxEffectiveBalance}},
		Balances:   []uint64{params.BeaconConfig().MaxEffectiveBalance},
	}
	vp := []*precompute.Validator{{}}
	bal := &precompute.Balance{}

	require.NoError(t, precompute.ProcessRewardsAndPenaltiesPrecompute(state, bal, vp))
	assert.Equal(t, params.BeaconConfig().MaxEffectiveBalance, state.Balances[0])
}

func TestProcessRewardsAndPenaltiesPrecompute_RejectsMismatchedLength(t *testing.T) {
	state := rewardTestState(0)
	state.Validators = []*types.Validator{{}, {}}
	state.Balances = []uint64{0, 0}
	vp := []*precompute.Validator{{}}
	bal := &precompute.Balance{}

	err := precompute.ProcessRewardsAndPenaltiesPrecompute(state, bal, vp)
	assert.Error(t, err)
}

func TestProcessRewardsAndPenaltiesPrecompute_AppliesRewardToBalance(t *testing.T) {
	state := rewardTestState(0)
	effectiveBalance := params.BeaconConfig().MaxEffectiveBalance
	state.Validators = []*types.Validator{{EffectiveBalance: effectiveBalance}}
	state.Balances = []uint64{effectiveBalance}
	vp := []*precompute.Validator{
		{
			IsActivePrevEpoch:            true,
			IsPrevEpochAttester:          true,
			IsPrevEpochTargetAttester:    true,
			IsPrevEpochHeadAttester:      true,
			CurrentEpochEffectiveBalance: effectiveBalance,
			InclusionDistance:            1,
			ProposerIndex:                0,
		},
	}
	bal := &precompute.Balance{
		PrevEpoch:               effectiveBalance,
		PrevEpochAttested:       effectiveBalance,
		PrevEpochTargetAttested: effectiveBalance,
		PrevEpochHeadAttested:   effectiveBalance,
	}

	require.NoError(t, precompute.ProcessRewardsAndPenaltiesPrecompute(state, bal, vp))
	assert.True(t, state.Balances[0] > effectiveBalance, "validator balance should grow from its reward")
}
