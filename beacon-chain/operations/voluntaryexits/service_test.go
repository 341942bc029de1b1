package voluntaryexits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

func testState(numValidators int) *types.BeaconState {
	validators := make([]*types.Validator, numValidators)
	for i := range validators {
		validators[i] = &types.Validator{ExitEpoch: types.FarFutureEpoch}
	}
	return &types.BeaconState{Validators: validators}
}

func exitForValIdx(valIdx uint64, epoch uint64) *types.SignedVoluntaryExit {
	return &types.SignedVoluntaryExit{Exit: &types.VoluntaryExit{ValidatorIndex: valIdx, Epoch: epoch}}
}

func TestPool_InsertVoluntaryExit_NewEntry(t *testing.T) {
	p := NewPool()
	state := testState(3)
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(1, 12)))
	require.Len(t, p.pending, 1)
	assert.Equal(t, uint64(12), p.pending[0].Exit.Epoch)
}

func TestPool_InsertVoluntaryExit_ReplacesSameValidator(t *testing.T) {
	p := NewPool()
	state := testState(3)
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(1, 12)))
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(1, 10)))

	require.Len(t, p.pending, 1)
	assert.Equal(t, uint64(10), p.pending[0].Exit.Epoch)
}

func TestPool_InsertVoluntaryExit_ExitedValidatorRejected(t *testing.T) {
	p := NewPool()
	state := testState(3)
	state.Validators[2].ExitEpoch = 15
	err := p.InsertVoluntaryExit(state, exitForValIdx(2, 12))
	require.Error(t, err)
	assert.Len(t, p.pending, 0)
}

func TestPool_InsertVoluntaryExit_SlashedValidatorRejected(t *testing.T) {
	p := NewPool()
	state := testState(3)
	state.Validators[0].Slashed = true
	err := p.InsertVoluntaryExit(state, exitForValIdx(0, 12))
	require.Error(t, err)
}

func TestPool_InsertVoluntaryExit_AlreadyIncludedRejected(t *testing.T) {
	p := NewPool()
	p.included[1] = true
	state := testState(3)
	err := p.InsertVoluntaryExit(state, exitForValIdx(1, 12))
	require.Error(t, err)
}

func TestPool_InsertVoluntaryExit_MaintainsSortedOrder(t *testing.T) {
	p := NewPool()
	state := testState(5)
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(0, 12)))
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(2, 12)))
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(1, 10)))

	require.Len(t, p.pending, 3)
	assert.Equal(t, uint64(0), p.pending[0].Exit.ValidatorIndex)
	assert.Equal(t, uint64(1), p.pending[1].Exit.ValidatorIndex)
	assert.Equal(t, uint64(2), p.pending[2].Exit.ValidatorIndex)
}

func TestPool_MarkIncluded_RemovesFromPending(t *testing.T) {
	p := NewPool()
	state := testState(5)
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(1, 12)))
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(2, 12)))
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(3, 12)))

	p.MarkIncluded(exitForValIdx(2, 12))
	require.Len(t, p.pending, 2)
	assert.True(t, p.included[2])
	assert.Equal(t, uint64(1), p.pending[0].Exit.ValidatorIndex)
	assert.Equal(t, uint64(3), p.pending[1].Exit.ValidatorIndex)
}

func TestPool_MarkIncluded_NotInPendingStillMarks(t *testing.T) {
	p := NewPool()
	p.pending = []*types.SignedVoluntaryExit{exitForValIdx(2, 12)}

	p.MarkIncluded(exitForValIdx(3, 12))
	require.Len(t, p.pending, 1)
	assert.True(t, p.included[3])
}

func TestPool_PendingExits_EvictsUnverifiable(t *testing.T) {
	p := NewPool()
	state := testState(3)
	require.NoError(t, p.InsertVoluntaryExit(state, exitForValIdx(0, 12)))

	// No real BLS signature was ever produced and the current epoch is 0,
	// which is below exit.Epoch(12), so re-verification must fail and the
	// entry must be evicted.
	got := p.PendingExits(state)
	assert.Empty(t, got)
	assert.Empty(t, p.pending)
}
