package sync

import (
	"context"
	"errors"

	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// blocksByRangeRPCHandler answers a request for a contiguous slot range.
// The storage engine only supports single-slot lookups, so the handler
// walks the range one slot at a time, skipping slots with no block
// (empty slots are not an error, just silently absent from the response).
func (s *Service) blocksByRangeRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	req, ok := message.(*p2ptypes.BeaconBlocksByRangeRequest)
	if !ok {
		return errGeneric
	}
	pid := stream.Conn().RemotePeer()

	count := req.Count
	if max := params.BeaconConfig().MaxBlocksByRange; count > max {
		count = max
	}
	step := req.Step
	if step == 0 {
		step = 1
	}

	if _, err := stream.Write([]byte{responseCodeSuccess}); err != nil {
		return err
	}
	sent := uint64(0)
	for slot := req.StartSlot; slot < req.StartSlot+count*step && sent < count; slot += step {
		blk, err := s.db.BlockBySlot(ctx, slot)
		if err != nil {
			s.p2p.Peers().IncrementBadResponses(pid)
			badResponsesCounter.Inc()
			return err
		}
		if blk == nil {
			continue
		}
		if _, err := s.p2p.Encoding().EncodeWithLength(stream, blk); err != nil {
			return err
		}
		sent++
	}
	return nil
}

// sendBlocksByRangeRequest asks pid for the given range and decodes as many
// blocks as it sends back, stopping at the first decode error (the peer
// signals the end of the range by closing the stream, not with a sentinel).
func (s *Service) sendBlocksByRangeRequest(ctx context.Context, pid peer.ID, req *p2ptypes.BeaconBlocksByRangeRequest) ([]*types.SignedBeaconBlock, error) {
	stream, err := s.p2p.Send(ctx, req, p2p.RPCBlocksByRangeTopic, pid)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	code, errMsg, err := readStatusCode(stream, s.p2p.Encoding())
	if err != nil {
		return nil, err
	}
	if code != responseCodeSuccess {
		return nil, errors.New(errMsg)
	}

	var blocks []*types.SignedBeaconBlock
	for {
		blk := &types.SignedBeaconBlock{}
		if err := s.p2p.Encoding().DecodeWithLength(stream, blk); err != nil {
			break
		}
		blocks = append(blocks, blk)
	}
	return blocks, nil
}
