package epoch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/epoch"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

func freshEpochState(t *testing.T, validatorCount int) *types.BeaconState {
	t.Helper()
	cfg := params.BeaconConfig()
	validators := make([]*types.Validator, validatorCount)
	balances := make([]uint64, validatorCount)
	for i := 0; i < validatorCount; i++ {
		validators[i] = &types.Validator{
			ActivationEpoch:            0,
			ActivationEligibilityEpoch: types.FarFutureEpoch,
			ExitEpoch:                  types.FarFutureEpoch,
			WithdrawableEpoch:          types.FarFutureEpoch,
			EffectiveBalance:           cfg.MaxEffectiveBalance,
		}
		balances[i] = cfg.MaxEffectiveBalance
	}
	return &types.BeaconState{
		Slot:                        cfg.SlotsPerEpoch*3 - 1,
		Fork:                        &types.Fork{},
		Validators:                  validators,
		Balances:                    balances,
		RandaoMixes:                 make([][32]byte, cfg.EpochsPerHistoricalVector),
		Slashings:                   make([]uint64, cfg.EpochsPerSlashingsVector),
		BlockRoots:                  make([][32]byte, cfg.SlotsPerHistoricalRoot),
		StateRoots:                  make([][32]byte, cfg.SlotsPerHistoricalRoot),
		JustificationBits:           [1]byte{},
		PreviousJustifiedCheckpoint: &types.Checkpoint{},
		CurrentJustifiedCheckpoint:  &types.Checkpoint{},
		FinalizedCheckpoint:         &types.Checkpoint{},
		Eth1Data:                    &types.Eth1Data{},
	}
}

func TestProcessRegistryUpdates_EjectsBelowThreshold(t *testing.T) {
	state := freshEpochState(t, 8)
	state.Validators[0].EffectiveBalance = params.BeaconConfig().EjectionBalance
	require.NoError(t, epoch.ProcessRegistryUpdates(state))
	assert.NotEqual(t, types.FarFutureEpoch, state.Validators[0].ExitEpoch)
}

func TestProcessRegistryUpdates_ActivatesEligible(t *testing.T) {
	state := freshEpochState(t, 4)
	state.Validators[0].ActivationEligibilityEpoch = 0
	state.Validators[0].ActivationEpoch = types.FarFutureEpoch
	require.NoError(t, epoch.ProcessRegistryUpdates(state))
	assert.NotEqual(t, types.FarFutureEpoch, state.Validators[0].ActivationEpoch)
}

func TestProcessSlashings_PenalizesAtMidpoint(t *testing.T) {
	state := freshEpochState(t, 8)
	cfg := params.BeaconConfig()
	currentEpoch := state.Slot / cfg.SlotsPerEpoch
	state.Validators[0].Slashed = true
	state.Validators[0].WithdrawableEpoch = currentEpoch + cfg.EpochsPerSlashingsVector/2
	state.Slashings[currentEpoch%cfg.EpochsPerSlashingsVector] = cfg.MaxEffectiveBalance

	before := state.Balances[0]
	require.NoError(t, epoch.ProcessSlashings(state))
	assert.Less(t, state.Balances[0], before)
}

func TestProcessFinalUpdates_RotatesAttestationsAndMixes(t *testing.T) {
	state := freshEpochState(t, 4)
	state.CurrentEpochAttestations = []*types.PendingAttestation{{}}
	epoch.ProcessFinalUpdates(state)
	assert.Empty(t, state.CurrentEpochAttestations)
	assert.Len(t, state.PreviousEpochAttestations, 1)
}

func TestProcessJustificationAndFinalization_NoOpBeforeThirdEpoch(t *testing.T) {
	state := freshEpochState(t, 4)
	state.Slot = 0
	err := epoch.ProcessJustificationAndFinalization(state, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), state.CurrentJustifiedCheckpoint.Epoch)
}
