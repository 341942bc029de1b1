package kv

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

func (s *Store) checkpoint(key []byte) (*types.Checkpoint, error) {
	var cp *types.Checkpoint
	err := s.db.View(func(tx *bbolt.Tx) error {
		enc := tx.Bucket(checkpointBucket).Get(key)
		if enc == nil {
			return nil
		}
		cp = &types.Checkpoint{}
		return decode(enc, cp)
	})
	return cp, err
}

func (s *Store) saveCheckpoint(key []byte, cp *types.Checkpoint) error {
	enc, err := encode(cp)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(checkpointBucket).Put(key, enc)
	})
}

// JustifiedCheckpoint returns the last persisted justified checkpoint.
func (s *Store) JustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error) {
	return s.checkpoint(justifiedCheckpointKey)
}

// SaveJustifiedCheckpoint persists the justified checkpoint.
func (s *Store) SaveJustifiedCheckpoint(ctx context.Context, cp *types.Checkpoint) error {
	return s.saveCheckpoint(justifiedCheckpointKey, cp)
}

// BestJustifiedCheckpoint returns the last persisted best-justified checkpoint.
func (s *Store) BestJustifiedCheckpoint(ctx context.Context) (*types.Checkpoint, error) {
	return s.checkpoint(bestJustifiedCheckpointKey)
}

// SaveBestJustifiedCheckpoint persists the best-justified checkpoint.
func (s *Store) SaveBestJustifiedCheckpoint(ctx context.Context, cp *types.Checkpoint) error {
	return s.saveCheckpoint(bestJustifiedCheckpointKey, cp)
}

// FinalizedCheckpoint returns the last persisted finalized checkpoint.
func (s *Store) FinalizedCheckpoint(ctx context.Context) (*types.Checkpoint, error) {
	return s.checkpoint(finalizedCheckpointKey)
}

// SaveFinalizedCheckpoint persists the finalized checkpoint.
func (s *Store) SaveFinalizedCheckpoint(ctx context.Context, cp *types.Checkpoint) error {
	return s.saveCheckpoint(finalizedCheckpointKey, cp)
}
