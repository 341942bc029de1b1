package initialsync

import (
	"context"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// batchState is a batch's position in the pipeline a range of blocks moves
// through before the blocks it carries reach the import pipeline.
type batchState int

const (
	batchStateAwaitingBlocks batchState = iota
	batchStateBlocksReceived
	batchStateConfirmed
	batchStateImported
	batchStateFailed
)

// batch is one fixed-size slice of the unsynced slot range, assigned to a
// single peer. Its blocks aren't trusted until CONFIRMED: the first block's
// parent must match the previous (already confirmed) batch's last block,
// tying the whole prefix into one chain.
type batch struct {
	startSlot uint64
	count     uint64
	assigned  peer.ID
	state     batchState
	blocks    []*types.SignedBeaconBlock
	err       error
}

// batchedSync runs the primary multi-peer sync engine: the unsynced range is
// split into batches assigned round-robin across peers, fetched
// concurrently, and confirmed/imported strictly in order so only a
// contiguous, chain-linked prefix of CONFIRMED batches is ever dispatched.
func (s *Service) batchedSync(ctx context.Context, peers []peer.ID) error {
	root, epoch, _ := s.p2p.Peers().BestFinalized(params.BeaconConfig().MaxPeersToSync)
	targetSlot := helpers.StartSlot(epoch + 1)
	startSlot := s.chain.HeadSlot() + 1
	if startSlot > targetSlot {
		return nil
	}

	batchSize := params.BeaconConfig().BlockBatchSize
	batches := buildBatches(startSlot, targetSlot, batchSize, peers)
	log.WithField("batches", len(batches)).WithField("targetRoot", root).
		Info("Starting multi-peer batched sync")

	prevRoot := s.chain.HeadRoot()

	for i := 0; i < len(batches); {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// Fetch a sliding window of AWAITING_BLOCKS batches concurrently so
		// network latency is hidden, but never run ahead of what we can
		// still confirm in order.
		window := i + int(params.BeaconConfig().MaxPeersToSync)
		if window > len(batches) {
			window = len(batches)
		}
		g, gctx := errgroup.WithContext(ctx)
		for j := i; j < window; j++ {
			if batches[j].state != batchStateAwaitingBlocks {
				continue
			}
			b := batches[j]
			g.Go(func() error {
				s.fetchBatch(gctx, b)
				return nil
			})
		}
		// fetchBatch reports failures on the batch itself (b.err, left
		// AWAITING_BLOCKS) rather than through the group, so a bad peer in
		// the window doesn't abort batches that fetched fine; Wait here is
		// just the join point.
		_ = g.Wait()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		b := batches[i]
		if b.state != batchStateBlocksReceived {
			return errors.Wrapf(b.err, "batch starting at slot %d never received blocks", b.startSlot)
		}

		confirmedRoot, err := s.confirmBatch(ctx, b, prevRoot, peers)
		if err != nil {
			return errors.Wrapf(err, "could not confirm batch starting at slot %d", b.startSlot)
		}
		b.state = batchStateConfirmed
		prevRoot = confirmedRoot

		if err := s.importBatch(ctx, b); err != nil {
			return errors.Wrapf(err, "could not import batch starting at slot %d", b.startSlot)
		}
		b.state = batchStateImported
		i++
	}
	return nil
}

func buildBatches(startSlot, targetSlot, batchSize uint64, peers []peer.ID) []*batch {
	var batches []*batch
	idx := 0
	for slot := startSlot; slot <= targetSlot; slot += batchSize {
		count := batchSize
		if slot+count > targetSlot+1 {
			count = targetSlot + 1 - slot
		}
		batches = append(batches, &batch{
			startSlot: slot,
			count:     count,
			assigned:  peers[idx%len(peers)],
			state:     batchStateAwaitingBlocks,
		})
		idx++
	}
	return batches
}

// fetchBatch requests a batch's range from its assigned peer, bounded by
// the 60s sync-batch timeout.
func (s *Service) fetchBatch(ctx context.Context, b *batch) {
	ctx, cancel := context.WithTimeout(ctx, params.BeaconConfig().SyncBatchTimeout)
	defer cancel()

	req := &p2ptypes.BeaconBlocksByRangeRequest{StartSlot: b.startSlot, Count: b.count, Step: 1}
	blocks, err := requestBlocksByRange(ctx, s.p2p, b.assigned, req)
	if ctx.Err() != nil {
		// Cancelled or timed out: discard whatever arrived, leave the batch
		// AWAITING_BLOCKS so a later pass (or conflict resolution) retries it.
		return
	}
	if err != nil {
		b.err = err
		s.p2p.Peers().IncrementBadResponses(b.assigned)
		return
	}
	b.blocks = blocks
	b.state = batchStateBlocksReceived
}

// confirmBatch checks that b's first block chains onto prevRoot. If it
// doesn't, the batch is contested: the same range is re-requested from a
// third peer to break the tie, the dissenting peer is penalized, and the
// agreeing result is used instead.
func (s *Service) confirmBatch(ctx context.Context, b *batch, prevRoot types.Root, peers []peer.ID) (types.Root, error) {
	if len(b.blocks) == 0 {
		return prevRoot, nil
	}
	if b.blocks[0].Block.ParentRoot == prevRoot {
		return lastRoot(b.blocks)
	}

	log.WithField("slot", b.startSlot).WithField("peer", b.assigned.Pretty()).
		Warn("Batch contested: first block does not chain onto previous batch, asking a third peer")

	third, ok := thirdPeer(peers, b.assigned)
	if !ok {
		return types.Root{}, errors.New("no third peer available to resolve contested batch")
	}
	req := &p2ptypes.BeaconBlocksByRangeRequest{StartSlot: b.startSlot, Count: b.count, Step: 1}
	altBlocks, err := requestBlocksByRange(ctx, s.p2p, third, req)
	if err != nil || len(altBlocks) == 0 || altBlocks[0].Block.ParentRoot != prevRoot {
		// Third peer agrees with nobody we can confirm; penalize the
		// original assignee and surface the conflict to the caller.
		s.p2p.Peers().IncrementBadResponses(b.assigned)
		return types.Root{}, errors.New("third peer could not confirm either side of contested batch")
	}

	s.p2p.Peers().IncrementBadResponses(b.assigned)
	b.assigned = third
	b.blocks = altBlocks
	return lastRoot(b.blocks)
}

func (s *Service) importBatch(ctx context.Context, b *batch) error {
	for _, blk := range b.blocks {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		root, err := blk.Block.HashTreeRoot()
		if err != nil {
			return err
		}
		if err := s.chain.ReceiveBlockNoPubsub(ctx, blk, root); err != nil {
			return err
		}
	}
	return nil
}

func lastRoot(blocks []*types.SignedBeaconBlock) (types.Root, error) {
	return blocks[len(blocks)-1].Block.HashTreeRoot()
}

func thirdPeer(peers []peer.ID, exclude peer.ID) (peer.ID, bool) {
	for _, p := range peers {
		if p != exclude {
			return p, true
		}
	}
	return "", false
}
