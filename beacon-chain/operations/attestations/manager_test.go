package attestations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/forkchoice"
	"github.com/driftchain/beacon-node/beacon-chain/operations/attestations"
)

func indexedAtt(root types.Root, targetEpoch uint64, slot uint64) *types.IndexedAttestation {
	return &types.IndexedAttestation{
		AttestingIndices: []uint64{0},
		Data: &types.AttestationData{
			Slot:            slot,
			BeaconBlockRoot: root,
			Source:          &types.Checkpoint{},
			Target:          &types.Checkpoint{Epoch: targetEpoch},
		},
	}
}

func TestManager_QueuesFutureAttestation(t *testing.T) {
	store := forkchoice.NewStore(0, types.Root{1})
	manager := attestations.NewManager(store)

	att := indexedAtt(types.Root{1}, 1, 10)
	require.NoError(t, manager.Add(5, att))

	assert.Equal(t, 1, manager.NumFuture())
	assert.Equal(t, 0, manager.NumPending())
}

func TestManager_DeliversReadyAttestation(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)
	manager := attestations.NewManager(store)

	att := indexedAtt(genesisRoot, 1, 5)
	require.NoError(t, manager.Add(10, att))

	assert.Equal(t, 0, manager.NumFuture())
	assert.Equal(t, 0, manager.NumPending())
}

func TestManager_QueuesPendingOnUnknownBlock(t *testing.T) {
	store := forkchoice.NewStore(0, types.Root{1})
	manager := attestations.NewManager(store)

	unknownRoot := types.Root{9}
	att := indexedAtt(unknownRoot, 1, 5)
	require.NoError(t, manager.Add(10, att))

	assert.Equal(t, 1, manager.NumPending())
}

func TestManager_OnSlotReleasesFutureAttestations(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)
	manager := attestations.NewManager(store)

	att := indexedAtt(genesisRoot, 1, 10)
	require.NoError(t, manager.Add(5, att))
	require.Equal(t, 1, manager.NumFuture())

	require.NoError(t, manager.OnSlot(11))
	assert.Equal(t, 0, manager.NumFuture())
}

func TestManager_OnImportedBlockReleasesPending(t *testing.T) {
	genesisRoot := types.Root{1}
	store := forkchoice.NewStore(0, genesisRoot)
	manager := attestations.NewManager(store)

	unknownRoot := types.Root{9}
	att := indexedAtt(unknownRoot, 1, 5)
	require.NoError(t, manager.Add(10, att))
	require.Equal(t, 1, manager.NumPending())

	blk := &types.BeaconBlock{
		Slot:       1,
		ParentRoot: genesisRoot,
		Body:       &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}},
	}
	require.NoError(t, store.OnBlock(unknownRoot, blk, &types.BeaconState{
		CurrentJustifiedCheckpoint: &types.Checkpoint{},
		FinalizedCheckpoint:        &types.Checkpoint{},
	}))

	require.NoError(t, manager.OnImportedBlock(unknownRoot))
	assert.Equal(t, 0, manager.NumPending())
}
