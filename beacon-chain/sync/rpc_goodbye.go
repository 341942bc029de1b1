package sync

import (
	"context"

	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/driftchain/beacon-node/beacon-chain/p2p"
)

// Goodbye reason codes, sent as the uint64 payload of the goodbye RPC
// method so a disconnecting peer knows why.
const (
	codeClientShutdown  uint64 = 1
	codeIrrelevantNode  uint64 = 2
	codeFault           uint64 = 3
	codeWrongNetwork    uint64 = 128
	codeTooManyPeers    uint64 = 129
	codeBadScore        uint64 = 250
)

var goodbyeCodeMessages = map[uint64]string{
	codeClientShutdown: "client shutdown",
	codeIrrelevantNode: "irrelevant node",
	codeFault:          "fault/error",
	codeWrongNetwork:   "wrong network",
	codeTooManyPeers:   "too many peers",
	codeBadScore:       "bad score",
}

// sendGoodByeAndDisconnect sends a goodbye message carrying code to pid and
// then tears down the connection regardless of whether the send succeeded.
func (s *Service) sendGoodByeAndDisconnect(ctx context.Context, code uint64, pid peer.ID) error {
	if stream, err := s.p2p.Send(ctx, &code, p2p.RPCGoodByeTopic, pid); err == nil {
		stream.Close()
	}
	goodbyesSentCounter.Inc()
	return s.p2p.Disconnect(pid)
}

// goodbyeRPCHandler logs the peer's stated reason for disconnecting and
// tears down our side of the connection.
func (s *Service) goodbyeRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	code, ok := message.(*uint64)
	if !ok {
		return errGeneric
	}
	pid := stream.Conn().RemotePeer()
	log.WithField("peer", pid.Pretty()).
		WithField("reason", goodbyeCodeMessages[*code]).
		Debug("Peer says goodbye")
	return s.p2p.Disconnect(pid)
}
