package forkchoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/forkchoice"
	"github.com/driftchain/beacon-node/shared/params"
)

func testBlock(slot uint64, parent types.Root) *types.BeaconBlock {
	return &types.BeaconBlock{
		Slot:       slot,
		ParentRoot: parent,
		Body:       &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}},
	}
}

func testState(justifiedEpoch, finalizedEpoch uint64) *types.BeaconState {
	return &types.BeaconState{
		CurrentJustifiedCheckpoint: &types.Checkpoint{Epoch: justifiedEpoch},
		FinalizedCheckpoint:        &types.Checkpoint{Epoch: finalizedEpoch},
	}
}

func TestOnBlock_RejectsUnknownParent(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	err := store.OnBlock(types.Root{9}, testBlock(1, types.Root{8}), testState(0, 0))
	assert.ErrorIs(t, err, forkchoice.ErrUnknownParent)
}

func TestOnBlock_InsertsDescendantOfJustified(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	blockRoot := types.Root{2}
	err := store.OnBlock(blockRoot, testBlock(1, genesisRoot), testState(0, 0))
	require.NoError(t, err)
	assert.True(t, store.HasBlock(blockRoot))
}

func TestOnBlock_AdvancesFinalizedAndJustified(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	blockRoot := types.Root{2}
	state := testState(1, 1)
	require.NoError(t, store.OnBlock(blockRoot, testBlock(1, genesisRoot), state))

	assert.Equal(t, uint64(1), store.JustifiedCheckpoint().Epoch)
	assert.Equal(t, uint64(1), store.FinalizedCheckpoint().Epoch)
}

func TestOnBlock_RejectsBadAncestor(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	slotsPerEpoch := params.BeaconConfig().SlotsPerEpoch

	branchRoot := types.Root{2}
	advance := testState(1, 0)
	advance.CurrentJustifiedCheckpoint.Root = branchRoot
	require.NoError(t, store.OnBlock(branchRoot, testBlock(slotsPerEpoch, genesisRoot), advance))
	assert.Equal(t, uint64(1), store.JustifiedCheckpoint().Epoch)

	// A block whose parent is genesis skips over branchRoot entirely, so its
	// ancestor at the justified epoch's start slot is genesis, not branchRoot.
	err := store.OnBlock(types.Root{4}, testBlock(slotsPerEpoch+1, genesisRoot), testState(1, 0))
	assert.ErrorIs(t, err, forkchoice.ErrBadAncestor)
}

func TestOnAttestation_RejectsUnknownBlock(t *testing.T) {
	store := forkchoice.NewStore(0, types.Root{1})
	att := &types.IndexedAttestation{
		AttestingIndices: []uint64{0},
		Data: &types.AttestationData{
			BeaconBlockRoot: types.Root{9},
			Source:          &types.Checkpoint{},
			Target:          &types.Checkpoint{Epoch: 1},
		},
	}
	err := store.OnAttestation(att)
	assert.ErrorIs(t, err, forkchoice.ErrUnknownBlock)
}

func TestOnAttestation_IgnoresStaleVote(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	vote := func(epoch uint64) *types.IndexedAttestation {
		return &types.IndexedAttestation{
			AttestingIndices: []uint64{0},
			Data: &types.AttestationData{
				BeaconBlockRoot: genesisRoot,
				Source:          &types.Checkpoint{},
				Target:          &types.Checkpoint{Epoch: epoch},
			},
		}
	}

	require.NoError(t, store.OnAttestation(vote(2)))
	require.NoError(t, store.OnAttestation(vote(1)))
}

func TestHead_DescendsToLeafBelowJustifiedRoot(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	slotsPerEpoch := params.BeaconConfig().SlotsPerEpoch

	childA := types.Root{2}
	advance := testState(1, 0)
	advance.CurrentJustifiedCheckpoint.Root = childA
	require.NoError(t, store.OnBlock(childA, testBlock(slotsPerEpoch, genesisRoot), advance))

	leaf := types.Root{3}
	require.NoError(t, store.OnBlock(leaf, testBlock(slotsPerEpoch+1, childA), testState(1, 0)))

	head, err := store.Head()
	require.NoError(t, err)
	assert.Equal(t, leaf, head)
}

func TestHead_BreaksTiesLexicographically(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)

	low := types.Root{2}
	high := types.Root{9}
	require.NoError(t, store.OnBlock(low, testBlock(1, genesisRoot), testState(0, 0)))
	require.NoError(t, store.OnBlock(high, testBlock(1, genesisRoot), testState(0, 0)))

	head, err := store.Head()
	require.NoError(t, err)
	assert.Equal(t, high, head)
}
