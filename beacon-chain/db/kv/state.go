package kv

import (
	"context"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/driftchain/beacon-node/beacon-chain/core/state"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// State returns the state saved under a block's root, regenerating it
// by replay from the nearest earlier archive point if it isn't stored
// directly (archive mode between archive points, or prune mode once
// the exact state has been discarded).
func (s *Store) State(ctx context.Context, blockRoot types.Root) (*types.BeaconState, error) {
	st, err := s.stateAtRoot(blockRoot)
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}
	return s.regenerateState(ctx, blockRoot)
}

func (s *Store) stateAtRoot(blockRoot types.Root) (*types.BeaconState, error) {
	var st *types.BeaconState
	err := s.db.View(func(tx *bbolt.Tx) error {
		enc := tx.Bucket(stateBucket).Get(blockRoot[:])
		if enc == nil {
			return nil
		}
		st = &types.BeaconState{}
		return decode(enc, st)
	})
	return st, err
}

// regenerateState rebuilds the state at blockRoot by finding the
// nearest earlier archived state and replaying finalized blocks
// forward one at a time from that anchor.
func (s *Store) regenerateState(ctx context.Context, blockRoot types.Root) (*types.BeaconState, error) {
	target, err := s.Block(ctx, blockRoot)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.Errorf("no block stored for root %#x to regenerate state from", blockRoot)
	}

	anchorSlot, anchorRoot, anchorState, err := s.nearestArchivePoint(target.Block.Slot)
	if err != nil {
		return nil, err
	}
	if anchorState == nil {
		return nil, errors.Errorf("no anchor state available to regenerate state at slot %d", target.Block.Slot)
	}
	if anchorRoot == blockRoot {
		return anchorState, nil
	}

	chain, err := s.chainFromTo(ctx, anchorSlot, target)
	if err != nil {
		return nil, err
	}

	st := anchorState
	cfg := state.DefaultConfig()
	cfg.VerifyStateRoot = false
	for _, b := range chain {
		if st, err = state.ExecuteStateTransition(ctx, st, b, cfg); err != nil {
			return nil, errors.Wrapf(err, "could not replay block at slot %d", b.Block.Slot)
		}
	}
	return st, nil
}

// chainFromTo walks parent links from target back to (but excluding)
// anchorSlot, returning the blocks in slot-ascending replay order.
func (s *Store) chainFromTo(ctx context.Context, anchorSlot uint64, target *types.SignedBeaconBlock) ([]*types.SignedBeaconBlock, error) {
	var chain []*types.SignedBeaconBlock
	cur := target
	for cur.Block.Slot > anchorSlot {
		chain = append([]*types.SignedBeaconBlock{cur}, chain...)
		parent, err := s.Block(ctx, cur.Block.ParentRoot)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.Errorf("missing parent block at root %#x while regenerating state", cur.Block.ParentRoot)
		}
		cur = parent
	}
	return chain, nil
}

// nearestArchivePoint finds the archived state at or immediately before
// slot, scanning the archive-point index backward from slot.
func (s *Store) nearestArchivePoint(slot uint64) (uint64, types.Root, *types.BeaconState, error) {
	var anchorSlot uint64
	var anchorRoot types.Root
	var enc []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(archivePointIndexBucket).Cursor()
		k, v := cursor.Seek(slotKey(slot))
		if k == nil || slotFromKey(k) > slot {
			k, v = cursor.Prev()
		}
		if k == nil {
			return nil
		}
		anchorSlot = slotFromKey(k)
		copy(anchorRoot[:], v)
		enc = tx.Bucket(stateBucket).Get(anchorRoot[:])
		return nil
	})
	if err != nil {
		return 0, types.Root{}, nil, err
	}
	if enc == nil {
		return 0, types.Root{}, nil, nil
	}
	st := &types.BeaconState{}
	if err := decode(enc, st); err != nil {
		return 0, types.Root{}, nil, err
	}
	return anchorSlot, anchorRoot, st, nil
}

// SaveState persists a state keyed by the root of the block it
// followed. This alone never makes it an archive point — hot states are
// overwritable and get no regeneration anchor until Update promotes
// their block to finalized.
func (s *Store) SaveState(ctx context.Context, st *types.BeaconState, blockRoot types.Root) error {
	enc, err := encode(st)
	if err != nil {
		return errors.Wrap(err, "could not encode state")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(stateBucket).Put(blockRoot[:], enc)
	})
}

// archiveFinalizedState indexes a newly-finalized state as a
// regeneration anchor, inside an already-open write transaction. In
// archive mode it's kept only when its slot lands on the interval; in
// prune mode it replaces the previous anchor outright.
func archiveFinalizedState(tx *bbolt.Tx, mode StorageMode, slot uint64, blockRoot types.Root) error {
	switch mode {
	case PruneMode:
		bkt := tx.Bucket(archivePointIndexBucket)
		stateBkt := tx.Bucket(stateBucket)
		c := bkt.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if err := stateBkt.Delete(v); err != nil {
				return err
			}
			if err := bkt.Delete(k); err != nil {
				return err
			}
		}
		return bkt.Put(slotKey(slot), blockRoot[:])
	default: // ArchiveMode
		if slot%ArchiveInterval != 0 {
			return nil
		}
		return tx.Bucket(archivePointIndexBucket).Put(slotKey(slot), blockRoot[:])
	}
}
