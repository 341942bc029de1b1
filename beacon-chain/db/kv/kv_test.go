package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

func setupDB(t *testing.T, mode StorageMode) *Store {
	t.Helper()
	s, err := NewKVStore(t.TempDir(), mode)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func testGenesisState() *types.BeaconState {
	return &types.BeaconState{
		GenesisTime:                 1606824000,
		Fork:                        &types.Fork{},
		LatestBlockHeader:           &types.BeaconBlockHeader{},
		Eth1Data:                    &types.Eth1Data{},
		CurrentJustifiedCheckpoint:  &types.Checkpoint{},
		PreviousJustifiedCheckpoint: &types.Checkpoint{},
		FinalizedCheckpoint:         &types.Checkpoint{},
	}
}

func TestSaveGenesisData_SeedsCheckpointsAndBlock(t *testing.T) {
	ctx := context.Background()
	s := setupDB(t, ArchiveMode)
	st := testGenesisState()

	require.NoError(t, s.SaveGenesisData(ctx, st))

	block, err := s.GenesisBlock(ctx)
	require.NoError(t, err)
	require.NotNil(t, block)
	require.Equal(t, uint64(0), block.Block.Slot)

	root, err := block.Block.HashTreeRoot()
	require.NoError(t, err)

	justified, err := s.JustifiedCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, root, justified.Root)

	finalized, err := s.FinalizedCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, root, finalized.Root)

	got, err := s.State(ctx, root)
	require.NoError(t, err)
	require.Equal(t, st.GenesisTime, got.GenesisTime)
}

func TestSaveBlock_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupDB(t, ArchiveMode)
	block := &types.SignedBeaconBlock{
		Block: &types.BeaconBlock{Slot: 5, Body: &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}}},
	}
	require.NoError(t, s.SaveBlock(ctx, block))

	root, err := block.Block.HashTreeRoot()
	require.NoError(t, err)

	require.True(t, s.HasBlock(ctx, root))
	got, err := s.Block(ctx, root)
	require.NoError(t, err)
	require.Equal(t, uint64(5), got.Block.Slot)

	require.NoError(t, s.DeleteBlock(ctx, root))
	require.False(t, s.HasBlock(ctx, root))
}

func TestCheckpoints_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupDB(t, ArchiveMode)
	cp := &types.Checkpoint{Epoch: 3, Root: types.Root{9}}

	require.NoError(t, s.SaveJustifiedCheckpoint(ctx, cp))
	got, err := s.JustifiedCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, cp, got)

	require.NoError(t, s.SaveBestJustifiedCheckpoint(ctx, cp))
	got, err = s.BestJustifiedCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, cp, got)
}
