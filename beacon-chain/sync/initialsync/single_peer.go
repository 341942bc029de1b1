package initialsync

import (
	"context"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/pkg/errors"

	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// singlePeerSync downloads the chain history one MAX_BLOCKS_BY_RANGE chunk
// at a time from a single peer and imports each block before requesting the
// next chunk. A block that fails to import because its content is invalid
// (as opposed to a transient decode/network error) ends the sync with that
// peer disconnected for cause.
func (s *Service) singlePeerSync(ctx context.Context, pid peer.ID) error {
	chunkSize := params.BeaconConfig().MaxBlocksByRange
	peerStatus, err := s.p2p.Peers().ChainState(pid)
	if err != nil {
		return errors.Wrap(err, "no chain state recorded for sync peer")
	}
	targetSlot := peerStatus.HeadSlot

	for slot := s.chain.HeadSlot() + 1; slot <= targetSlot; {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		req := &p2ptypes.BeaconBlocksByRangeRequest{StartSlot: slot, Count: chunkSize, Step: 1}
		blocks, err := requestBlocksByRange(ctx, s.p2p, pid, req)
		if err != nil {
			return errors.Wrapf(err, "could not fetch blocks starting at slot %d", slot)
		}
		if len(blocks) == 0 {
			slot += chunkSize
			continue
		}
		for _, blk := range blocks {
			root, err := blk.Block.HashTreeRoot()
			if err != nil {
				return err
			}
			if err := s.chain.ReceiveBlockNoPubsub(ctx, blk, root); err != nil {
				log.WithError(err).WithField("peer", pid.Pretty()).
					Warn("Rejecting sync peer for invalid block content")
				_ = s.p2p.Disconnect(pid)
				return errors.Wrap(err, "peer sent block that failed import, disconnected with fault")
			}
			if uint64(blk.Block.Slot) >= slot {
				slot = uint64(blk.Block.Slot) + 1
			}
		}
	}
	return nil
}
