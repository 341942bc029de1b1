// Package iface defines the storage-engine contract the rest of the
// beacon node codes against, so call sites never import the concrete
// bbolt-backed implementation directly.
package iface

import (
	"context"
	"io"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Database is the full read/write surface the storage engine exposes:
// hot and finalized blocks, states, checkpoints and the canonical key
// spaces a beacon node persists across restarts.
type Database interface {
	io.Closer

	// Blocks.
	Block(ctx context.Context, blockRoot types.Root) (*types.SignedBeaconBlock, error)
	HasBlock(ctx context.Context, blockRoot types.Root) bool
	BlockBySlot(ctx context.Context, slot uint64) (*types.SignedBeaconBlock, error)
	SaveBlock(ctx context.Context, signed *types.SignedBeaconBlock) error
	DeleteBlock(ctx context.Context, blockRoot types.Root) error

	// States.
	State(ctx context.Context, blockRoot types.Root) (*types.BeaconState, error)
	SaveState(ctx context.Context, state *types.BeaconState, blockRoot types.Root) error

	// Checkpoints.
	JustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error)
	SaveJustifiedCheckpoint(ctx context.Context, cp *types.Checkpoint) error
	BestJustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error)
	SaveBestJustifiedCheckpoint(ctx context.Context, cp *types.Checkpoint) error
	FinalizedCheckpoint(ctx context.Context) (*types.Checkpoint, error)
	SaveFinalizedCheckpoint(ctx context.Context, cp *types.Checkpoint) error

	// Genesis.
	SaveGenesisData(ctx context.Context, state *types.BeaconState) error
	GenesisBlock(ctx context.Context) (*types.SignedBeaconBlock, error)

	// Update applies a single StorageUpdate as one atomic transaction.
	Update(ctx context.Context, u *StorageUpdate) error

	DatabasePath() string
	ClearDB() error
}

// StorageUpdate is the unit of atomic mutation the import pipeline hands
// to the storage engine on every processed block: new hot blocks, an
// optional hot state, updated checkpoints, blocks promoted from hot to
// finalized, and hot block roots orphaned by a reorg or finalization on
// another branch.
type StorageUpdate struct {
	HotBlocks           []*types.SignedBeaconBlock
	HotState            *types.BeaconState
	HotStateRoot        types.Root
	JustifiedCheckpoint *types.Checkpoint
	BestJustified       *types.Checkpoint
	FinalizedCheckpoint *types.Checkpoint
	PromotedToFinalized []*types.SignedBeaconBlock
	DeletedHotRoots     []types.Root
}
