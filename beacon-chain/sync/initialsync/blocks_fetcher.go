package initialsync

import (
	"context"
	"io"

	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/pkg/errors"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
)

const (
	responseCodeSuccess = byte(0x00)
)

// requestBlocksByRange opens a blocks-by-range stream to pid, decodes every
// block the peer sends back, and returns them in the order received.
func requestBlocksByRange(ctx context.Context, p2pSvc *p2p.Service, pid peer.ID, req *p2ptypes.BeaconBlocksByRangeRequest) ([]*types.SignedBeaconBlock, error) {
	stream, err := p2pSvc.Send(ctx, req, p2p.RPCBlocksByRangeTopic, pid)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	code := make([]byte, 1)
	if _, err := io.ReadFull(stream, code); err != nil {
		return nil, err
	}
	if code[0] != responseCodeSuccess {
		msg := &struct{ Message string }{}
		_ = p2pSvc.Encoding().DecodeWithLength(stream, msg)
		return nil, errors.Errorf("peer returned error response: %s", msg.Message)
	}

	var blocks []*types.SignedBeaconBlock
	for {
		blk := &types.SignedBeaconBlock{}
		if err := p2pSvc.Encoding().DecodeWithLength(stream, blk); err != nil {
			break
		}
		blocks = append(blocks, blk)
	}
	return blocks, nil
}
