package blockchain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// BlockReceiver defines the chain service's entry points for a newly
// received block, with and without rebroadcasting it to the network.
type BlockReceiver interface {
	ReceiveBlock(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error
	ReceiveBlockNoPubsub(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error
}

// ReceiveBlock runs the full block-import pipeline for a block gossiped
// from the network: broadcast it onward, then process it the same way
// ReceiveBlockNoPubsub does.
//
//  1. Gossip block to other peers.
//  2. Validate block, apply state transition and update check points.
//  3. Apply fork choice to the processed block.
//  4. Save latest head info.
func (s *Service) ReceiveBlock(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error {
	if s.p2p != nil {
		if err := s.p2p.Broadcast(ctx, signed.Block); err != nil {
			return errors.Wrap(err, "could not broadcast block")
		}
	}
	return s.ReceiveBlockNoPubsub(ctx, signed, blockRoot)
}

// ReceiveBlockNoPubsub runs the block-import pipeline without
// rebroadcasting: the operations a block received from regular sync needs.
//
//  1. Validate block, apply state transition and update check points.
//  2. Apply fork choice to the processed block.
//  3. Save latest head info.
func (s *Service) ReceiveBlockNoPubsub(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error {
	oldHeadRoot := s.HeadRoot()

	if _, err := s.onBlock(ctx, signed, blockRoot); err != nil {
		return errors.Wrap(err, "could not process block from fork choice service")
	}

	if err := s.updateHead(ctx); err != nil {
		return errors.Wrap(err, "could not update head from fork choice service")
	}

	newHeadRoot := s.HeadRoot()
	if newHeadRoot != blockRoot && newHeadRoot != oldHeadRoot {
		log.WithFields(logrus.Fields{
			"blockRoot": blockRoot,
			"headRoot":  newHeadRoot,
		}).Warn("Calculated head diffs from new block")
		competingBlocks.Inc()
	}

	logStateTransitionData(signed.Block, blockRoot)
	return nil
}
