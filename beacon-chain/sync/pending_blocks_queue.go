package sync

import (
	"context"
	"time"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// addPendingBlock queues a block whose parent we don't have yet, keyed by
// the parent root it's waiting on. The pool is bounded by MaxPendingBlocks;
// once full, new arrivals are dropped rather than growing unbounded.
func (s *Service) addPendingBlock(parentRoot types.Root, signed *types.SignedBeaconBlock) {
	root, err := signed.Block.HashTreeRoot()
	if err != nil {
		return
	}

	s.pendingQueueLock.Lock()
	defer s.pendingQueueLock.Unlock()

	if s.seenPendingBlocks[root] {
		return
	}
	if len(s.seenPendingBlocks) >= params.BeaconConfig().MaxPendingBlocks {
		log.Warn("Pending block pool full, dropping block")
		return
	}
	s.seenPendingBlocks[root] = true
	s.slotToPendingBlocks[uint64(signed.Block.Slot)] = append(s.slotToPendingBlocks[uint64(signed.Block.Slot)], signed)
	pendingBlocksCount.Set(float64(len(s.seenPendingBlocks)))

	if s.p2p != nil {
		go s.fetchMissingParent(s.ctx, parentRoot)
	}
}

// processPendingBlocksQueue periodically walks the pending pool looking for
// blocks whose parent has since arrived, either via gossip or a completed
// blocks-by-root request, and feeds them into the chain once unblocked.
func (s *Service) processPendingBlocksQueue() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.processPendingBlocks()
		}
	}
}

func (s *Service) processPendingBlocks() {
	s.pendingQueueLock.Lock()
	ready := make([]*types.SignedBeaconBlock, 0)
	for slot, blocks := range s.slotToPendingBlocks {
		remaining := blocks[:0]
		for _, b := range blocks {
			if s.db.HasBlock(s.ctx, b.Block.ParentRoot) {
				ready = append(ready, b)
				continue
			}
			remaining = append(remaining, b)
		}
		if len(remaining) == 0 {
			delete(s.slotToPendingBlocks, slot)
		} else {
			s.slotToPendingBlocks[slot] = remaining
		}
	}
	s.pendingQueueLock.Unlock()

	for _, b := range ready {
		root, err := b.Block.HashTreeRoot()
		if err != nil {
			continue
		}
		if err := s.chain.ReceiveBlock(s.ctx, b, root); err != nil {
			log.WithError(err).WithField("root", root).Debug("Could not import previously pending block")
			continue
		}
		s.pendingQueueLock.Lock()
		delete(s.seenPendingBlocks, root)
		pendingBlocksCount.Set(float64(len(s.seenPendingBlocks)))
		s.pendingQueueLock.Unlock()
	}
}

// fetchMissingParent requests the missing parent of a pending block from a
// connected peer by root, so the pool doesn't have to wait on gossip alone.
func (s *Service) fetchMissingParent(ctx context.Context, root types.Root) {
	peersList := s.p2p.Peers().Connected()
	if len(peersList) == 0 {
		return
	}
	blocks, err := s.sendBlocksByRootRequest(ctx, peersList[0], []types.Root{root})
	if err != nil || len(blocks) == 0 {
		return
	}
	for _, b := range blocks {
		blkRoot, err := b.Block.HashTreeRoot()
		if err != nil {
			continue
		}
		if err := s.chain.ReceiveBlockNoPubsub(ctx, b, blkRoot); err != nil {
			log.WithError(err).Debug("Could not import fetched parent block")
		}
	}
}
