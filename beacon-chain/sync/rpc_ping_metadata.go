package sync

import (
	"context"

	"github.com/libp2p/go-libp2p-core/network"
)

// pingRPCHandler answers a ping with our own current metadata sequence
// number, the way the teacher's status handler answers with chain state.
func (s *Service) pingRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	if _, ok := message.(*uint64); !ok {
		return errGeneric
	}
	seq := s.p2p.MetadataSeq()
	if _, err := stream.Write([]byte{responseCodeSuccess}); err != nil {
		return err
	}
	_, err := s.p2p.Encoding().EncodeWithLength(stream, &seq)
	return err
}

// metaDataRPCHandler answers a metadata request, which carries no body,
// with our full MetaData (sequence number and tracked attestation subnets).
func (s *Service) metaDataRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	if _, err := stream.Write([]byte{responseCodeSuccess}); err != nil {
		return err
	}
	_, err := s.p2p.Encoding().EncodeWithLength(stream, s.p2p.Metadata())
	return err
}
