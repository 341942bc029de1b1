package kv

import (
	"context"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/db/iface"
)

// Update applies one StorageUpdate as a single bbolt transaction: new
// hot blocks, an optional hot state, updated checkpoints, blocks
// promoted from hot to finalized, and hot roots deleted by a reorg or
// by finalization on another branch. A crash mid-transaction leaves
// either the whole update applied or none of it — bbolt's transactions
// are atomic by construction, so there is no partially-applied state
// for the hot region to recover from.
func (s *Store) Update(ctx context.Context, u *iface.StorageUpdate) error {
	encodedBlocks := make([][]byte, len(u.HotBlocks))
	roots := make([][32]byte, len(u.HotBlocks))
	for i, b := range u.HotBlocks {
		root, err := b.Block.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not compute hot block root")
		}
		enc, err := encode(b)
		if err != nil {
			return errors.Wrap(err, "could not encode hot block")
		}
		roots[i] = root
		encodedBlocks[i] = enc
	}

	var encodedState []byte
	if u.HotState != nil {
		enc, err := encode(u.HotState)
		if err != nil {
			return errors.Wrap(err, "could not encode hot state")
		}
		encodedState = enc
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		blockBkt := tx.Bucket(blocksBucket)
		for i := range u.HotBlocks {
			if err := blockBkt.Put(roots[i][:], encodedBlocks[i]); err != nil {
				return err
			}
		}

		if encodedState != nil {
			if err := tx.Bucket(stateBucket).Put(u.HotStateRoot[:], encodedState); err != nil {
				return err
			}
		}

		for _, signed := range u.PromotedToFinalized {
			root, err := signed.Block.HashTreeRoot()
			if err != nil {
				return err
			}
			if err := promoteFinalizedBlock(tx, signed, root); err != nil {
				return err
			}
		}
		if u.FinalizedCheckpoint != nil && len(u.PromotedToFinalized) > 0 {
			last := u.PromotedToFinalized[len(u.PromotedToFinalized)-1]
			lastRoot, err := last.Block.HashTreeRoot()
			if err != nil {
				return err
			}
			if err := archiveFinalizedState(tx, s.mode, last.Block.Slot, lastRoot); err != nil {
				return err
			}
		}

		for _, root := range u.DeletedHotRoots {
			if err := blockBkt.Delete(root[:]); err != nil {
				return err
			}
			if err := tx.Bucket(stateBucket).Delete(root[:]); err != nil {
				return err
			}
		}

		if u.JustifiedCheckpoint != nil {
			enc, err := encode(u.JustifiedCheckpoint)
			if err != nil {
				return err
			}
			if err := tx.Bucket(checkpointBucket).Put(justifiedCheckpointKey, enc); err != nil {
				return err
			}
		}
		if u.BestJustified != nil {
			enc, err := encode(u.BestJustified)
			if err != nil {
				return err
			}
			if err := tx.Bucket(checkpointBucket).Put(bestJustifiedCheckpointKey, enc); err != nil {
				return err
			}
		}
		if u.FinalizedCheckpoint != nil {
			enc, err := encode(u.FinalizedCheckpoint)
			if err != nil {
				return err
			}
			if err := tx.Bucket(checkpointBucket).Put(finalizedCheckpointKey, enc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, b := range u.HotBlocks {
		s.blockCache.Set(string(roots[i][:]), b, 1)
	}
	for _, root := range u.DeletedHotRoots {
		s.blockCache.Del(string(root[:]))
	}
	return nil
}
