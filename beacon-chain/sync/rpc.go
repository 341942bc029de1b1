package sync

import (
	"context"
	"reflect"
	"time"

	"github.com/libp2p/go-libp2p-core/network"

	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
)

// ttfbTimeout bounds how long we wait for the first byte of a request's
// response (time-to-first-byte), per the 10s peer RPC timeout.
var ttfbTimeout = 10 * time.Second

// rpcHandler answers one decoded request on an already-open stream. msg is
// nil for request types that carry no body (ping, metadata). A returned
// error is logged; it is never relayed verbatim to the peer.
type rpcHandler func(ctx context.Context, msg interface{}, stream network.Stream) error

// registerRPC installs handle as the stream handler for topic. Each inbound
// stream is decoded into a freshly allocated value of base's type before
// handle runs; base == nil means the request carries no body at all.
func (s *Service) registerRPC(topic string, base interface{}, handle rpcHandler) {
	topic += s.p2p.Encoding().ProtocolSuffix()
	var baseType reflect.Type
	if base != nil {
		baseType = reflect.TypeOf(base)
		if baseType.Kind() == reflect.Ptr {
			baseType = baseType.Elem()
		}
	}
	s.p2p.SetStreamHandler(topic, func(stream network.Stream) {
		ctx, cancel := context.WithTimeout(s.ctx, ttfbTimeout)
		defer cancel()
		defer stream.Close()

		setRPCStreamDeadlines(stream)

		var msg interface{}
		if baseType != nil {
			msg = reflect.New(baseType).Interface()
			if err := s.p2p.Encoding().DecodeWithLength(stream, msg); err != nil {
				log.WithError(err).Error("Failed to decode stream message")
				return
			}
		}
		if err := handle(ctx, msg, stream); err != nil {
			log.WithError(err).WithField("topic", topic).Debug("Failed to handle p2p RPC")
		}
	})
}

func (s *Service) registerRPCHandlers() {
	s.registerRPC(p2p.RPCStatusTopic, &p2ptypes.Status{}, s.statusRPCHandler)
	s.registerRPC(p2p.RPCGoodByeTopic, new(uint64), s.goodbyeRPCHandler)
	s.registerRPC(p2p.RPCPingTopic, new(uint64), s.pingRPCHandler)
	s.registerRPC(p2p.RPCMetaDataTopic, nil, s.metaDataRPCHandler)
	s.registerRPC(p2p.RPCBlocksByRangeTopic, &p2ptypes.BeaconBlocksByRangeRequest{}, s.blocksByRangeRPCHandler)
	s.registerRPC(p2p.RPCBlocksByRootTopic, &p2ptypes.BeaconBlocksByRootRequest{}, s.blocksByRootRPCHandler)
}
