package kv

import (
	"context"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/core/blocks"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// SaveGenesisData bootstraps a fresh database from a genesis state: it
// builds and stores the genesis block, seeds every checkpoint (hot,
// best-justified, finalized) at the genesis root, and records the
// genesis block root so a restarted node can find it again.
func (s *Store) SaveGenesisData(ctx context.Context, genesisState *types.BeaconState) error {
	stateRoot, err := genesisState.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute genesis state root")
	}
	genesisBlock := blocks.NewGenesisBlock(stateRoot)
	genesisRoot, err := genesisBlock.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute genesis block root")
	}
	signed := &types.SignedBeaconBlock{Block: genesisBlock}

	if err := s.SaveBlock(ctx, signed); err != nil {
		return err
	}
	if err := s.SaveState(ctx, genesisState, genesisRoot); err != nil {
		return err
	}
	genesis := &types.Checkpoint{Epoch: 0, Root: genesisRoot}
	for _, save := range []func(context.Context, *types.Checkpoint) error{
		s.SaveJustifiedCheckpoint,
		s.SaveBestJustifiedCheckpoint,
		s.SaveFinalizedCheckpoint,
	} {
		if err := save(ctx, genesis); err != nil {
			return err
		}
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := promoteFinalizedBlock(tx, signed, genesisRoot); err != nil {
			return err
		}
		if err := archiveFinalizedState(tx, s.mode, 0, genesisRoot); err != nil {
			return err
		}
		return tx.Bucket(chainMetadataBucket).Put(genesisBlockRootKey, genesisRoot[:])
	})
}

// GenesisBlock returns the block recorded by SaveGenesisData.
func (s *Store) GenesisBlock(ctx context.Context) (*types.SignedBeaconBlock, error) {
	var root types.Root
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(chainMetadataBucket).Get(genesisBlockRootKey)
		if v == nil {
			return nil
		}
		copy(root[:], v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if root == (types.Root{}) {
		return nil, nil
	}
	return s.Block(ctx, root)
}
