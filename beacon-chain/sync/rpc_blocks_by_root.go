package sync

import (
	"context"
	"errors"

	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
)

// blocksByRootRPCHandler answers a request for specific block roots, used
// by the pending-block queue to fetch the missing parent of an orphaned
// block. Roots we don't have are silently skipped.
func (s *Service) blocksByRootRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	req, ok := message.(*p2ptypes.BeaconBlocksByRootRequest)
	if !ok {
		return errGeneric
	}
	if _, err := stream.Write([]byte{responseCodeSuccess}); err != nil {
		return err
	}
	for _, root := range *req {
		blk, err := s.db.Block(ctx, root)
		if err != nil || blk == nil {
			continue
		}
		if _, err := s.p2p.Encoding().EncodeWithLength(stream, blk); err != nil {
			return err
		}
	}
	return nil
}

// sendBlocksByRootRequest asks pid for the given roots.
func (s *Service) sendBlocksByRootRequest(ctx context.Context, pid peer.ID, roots []types.Root) ([]*types.SignedBeaconBlock, error) {
	req := p2ptypes.BeaconBlocksByRootRequest(roots)
	stream, err := s.p2p.Send(ctx, &req, p2p.RPCBlocksByRootTopic, pid)
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
