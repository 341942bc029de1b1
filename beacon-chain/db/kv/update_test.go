package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/db/iface"
)

func TestUpdate_PromotesAndDeletesAtomically(t *testing.T) {
	ctx := context.Background()
	s := setupDB(t, ArchiveMode)

	hot := &types.SignedBeaconBlock{
		Block: &types.BeaconBlock{Slot: 1, Body: &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}}},
	}
	orphan := &types.SignedBeaconBlock{
		Block: &types.BeaconBlock{Slot: 1, ParentRoot: types.Root{7}, Body: &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}}},
	}
	require.NoError(t, s.SaveBlock(ctx, orphan))
	orphanRoot, err := orphan.Block.HashTreeRoot()
	require.NoError(t, err)

	finalizedCP := &types.Checkpoint{Epoch: 1, Root: types.Root{1}}
	require.NoError(t, s.Update(ctx, &iface.StorageUpdate{
		HotBlocks:           []*types.SignedBeaconBlock{hot},
		FinalizedCheckpoint: finalizedCP,
		PromotedToFinalized: []*types.SignedBeaconBlock{hot},
		DeletedHotRoots:     []types.Root{orphanRoot},
	}))

	hotRoot, err := hot.Block.HashTreeRoot()
	require.NoError(t, err)

	require.False(t, s.HasBlock(ctx, orphanRoot))

	promoted, err := s.BlockBySlot(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	pRoot, err := promoted.Block.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, hotRoot, pRoot)

	got, err := s.FinalizedCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, finalizedCP, got)
}
