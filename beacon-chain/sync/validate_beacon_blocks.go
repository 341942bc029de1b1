package sync

import (
	"context"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// onBlockGossip handles a block arriving over gossip: if its parent is
// already known it goes straight to the fork-choice store, otherwise it's
// queued until the parent shows up (or is fetched by root).
func (s *Service) onBlockGossip(ctx context.Context, message interface{}) {
	block, ok := message.(*types.BeaconBlock)
	if !ok {
		return
	}
	root, err := block.HashTreeRoot()
	if err != nil {
		log.WithError(err).Error("Could not compute block root")
		return
	}
	signed := &types.SignedBeaconBlock{Block: block}

	if !s.db.HasBlock(ctx, block.ParentRoot) {
		s.addPendingBlock(block.ParentRoot, signed)
		return
	}
	if err := s.chain.ReceiveBlock(ctx, signed, root); err != nil {
		log.WithError(err).WithField("root", root).Debug("Could not process gossiped block")
	}
}
