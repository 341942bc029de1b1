package p2p

import (
	"context"

	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/protocol"
)

// Send opens a new stream to pid for topic, writes message onto it encoded
// with the configured NetworkEncoding, and returns the stream positioned to
// read the peer's response. The caller owns the stream and must close it.
func (s *Service) Send(ctx context.Context, message interface{}, topic string, pid peer.ID) (network.Stream, error) {
	topic += s.Encoding().ProtocolSuffix()
	stream, err := s.host.NewStream(ctx, pid, protocol.ID(topic))
	if err != nil {
		return nil, err
	}
	if _, err := s.Encoding().Encode(stream, message); err != nil {
		_ = stream.Close()
		return nil, err
	}
	_ = stream.CloseWrite()
	return stream, nil
}
