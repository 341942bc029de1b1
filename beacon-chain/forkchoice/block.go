package forkchoice

import (
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// OnBlock inserts a newly processed block into the store and advances the
// justified/finalized checkpoints the post-state vouches for.
//
// Spec pseudocode definition:
//  the block's ancestor at justified_checkpoint.epoch's start slot must
//  equal justified_checkpoint.root; if post_state.finalized_checkpoint.epoch
//  > finalized_checkpoint.epoch, advance finalized; similarly for justified.
func (s *Store) OnBlock(blockRoot types.Root, block *types.BeaconBlock, postState *types.BeaconState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocks[block.ParentRoot]; !ok {
		return ErrUnknownParent
	}

	justifiedSlot := types.StartSlot(s.justifiedCheckpoint.Epoch)
	ancestorRoot, ok := s.ancestorAtSlot(block.ParentRoot, justifiedSlot)
	if !ok || ancestorRoot != s.justifiedCheckpoint.Root {
		return ErrBadAncestor
	}

	if postState.CurrentJustifiedCheckpoint.Epoch < s.justifiedCheckpoint.Epoch {
		return ErrBadJustifiedEpoch
	}

	s.blocks[blockRoot] = &blockNode{
		slot:           block.Slot,
		parentRoot:     block.ParentRoot,
		justifiedEpoch: postState.CurrentJustifiedCheckpoint.Epoch,
		finalizedEpoch: postState.FinalizedCheckpoint.Epoch,
	}

	if postState.FinalizedCheckpoint.Epoch > s.finalizedCheckpoint.Epoch {
		s.finalizedCheckpoint = postState.FinalizedCheckpoint.Copy()
	}
	if postState.CurrentJustifiedCheckpoint.Epoch > s.justifiedCheckpoint.Epoch {
		s.justifiedCheckpoint = postState.CurrentJustifiedCheckpoint.Copy()
		s.justifiedBalances = effectiveBalances(postState)
	}
	if postState.CurrentJustifiedCheckpoint.Epoch > s.bestJustifiedCheckpoint.Epoch {
		s.bestJustifiedCheckpoint = postState.CurrentJustifiedCheckpoint.Copy()
	}
	return nil
}

// ancestorAtSlot walks parent links from root until it finds the block at
// slot, following the store's own bookkeeping rather than a block database
//. The caller must hold s.mu.
func (s *Store) ancestorAtSlot(root types.Root, slot uint64) (types.Root, bool) {
	node, ok := s.blocks[root]
	if !ok {
		return types.Root{}, false
	}
	for node.slot > slot {
		parentRoot := node.parentRoot
		parent, ok := s.blocks[parentRoot]
		if !ok {
			return types.Root{}, false
		}
		root = parentRoot
		node = parent
	}
	return root, true
}

// effectiveBalances snapshots the current epoch's per-validator effective
// balance, 0 for validators inactive this epoch, used to weigh LMD-GHOST
// votes against the justified checkpoint's own state.
func effectiveBalances(state *types.BeaconState) []uint64 {
	epoch := helpers.CurrentEpoch(state)
	balances := make([]uint64, len(state.Validators))
	for i, v := range state.Validators {
		if helpers.IsActiveValidator(v, epoch) {
			balances[i] = v.EffectiveBalance
		}
	}
	return balances
}
