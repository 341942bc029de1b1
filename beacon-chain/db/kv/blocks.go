package kv

import (
	"context"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Block retrieves a signed block by root, checking the in-process cache
// first. Returns nil, nil if it isn't known.
func (s *Store) Block(ctx context.Context, blockRoot types.Root) (*types.SignedBeaconBlock, error) {
	if v, found := s.blockCache.Get(string(blockRoot[:])); found {
		return v.(*types.SignedBeaconBlock), nil
	}
	var block *types.SignedBeaconBlock
	err := s.db.View(func(tx *bbolt.Tx) error {
		enc := tx.Bucket(blocksBucket).Get(blockRoot[:])
		if enc == nil {
			return nil
		}
		block = &types.SignedBeaconBlock{}
		return decode(enc, block)
	})
	if err != nil {
		return nil, err
	}
	if block != nil {
		s.blockCache.Set(string(blockRoot[:]), block, 1)
	}
	return block, nil
}

// HasBlock reports whether a block by root exists in the db.
func (s *Store) HasBlock(ctx context.Context, blockRoot types.Root) bool {
	if _, found := s.blockCache.Get(string(blockRoot[:])); found {
		return true
	}
	exists := false
	_ = s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket(blocksBucket).Get(blockRoot[:]) != nil
		return nil
	})
	return exists
}

// BlockBySlot retrieves a finalized block by slot. Only blocks promoted
// to the finalized region are indexed by slot; hot blocks are looked up
// by root only, since a slot may have more than one competing hot block.
func (s *Store) BlockBySlot(ctx context.Context, slot uint64) (*types.SignedBeaconBlock, error) {
	var block *types.SignedBeaconBlock
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket(blockSlotIndexBucket).Get(slotKey(slot))
		if root == nil {
			return nil
		}
		enc := tx.Bucket(finalizedBlocksBucket).Get(root)
		if enc == nil {
			return nil
		}
		block = &types.SignedBeaconBlock{}
		return decode(enc, block)
	})
	return block, err
}

// SaveBlock writes a block into the hot region, keyed by its signing
// root. Promotion into the finalized region happens through Update,
// never here directly.
func (s *Store) SaveBlock(ctx context.Context, signed *types.SignedBeaconBlock) error {
	root, err := signed.Block.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute block root")
	}
	enc, err := encode(signed)
	if err != nil {
		return errors.Wrap(err, "could not encode block")
	}
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(blocksBucket).Put(root[:], enc)
	}); err != nil {
		return err
	}
	s.blockCache.Set(string(root[:]), signed, 1)
	return nil
}

// DeleteBlock removes a block from the hot region by root. It never
// touches the finalized region: once promoted, a block is immutable.
func (s *Store) DeleteBlock(ctx context.Context, blockRoot types.Root) error {
	s.blockCache.Del(string(blockRoot[:]))
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(blocksBucket).Delete(blockRoot[:])
	})
}

// promoteFinalizedBlock moves a hot block into the immutable finalized
// region and indexes it by slot, inside an already-open write transaction.
func promoteFinalizedBlock(tx *bbolt.Tx, signed *types.SignedBeaconBlock, root types.Root) error {
	enc, err := encode(signed)
	if err != nil {
		return err
	}
	if err := tx.Bucket(finalizedBlocksBucket).Put(root[:], enc); err != nil {
		return err
	}
	return tx.Bucket(blockSlotIndexBucket).Put(slotKey(signed.Block.Slot), root[:])
}
