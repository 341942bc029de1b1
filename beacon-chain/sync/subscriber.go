package sync

import (
	"context"
	"fmt"

	pubsub "github.com/libp2p/go-libp2p-pubsub"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
)

// subHandler pairs a live pubsub subscription with the topic it was
// opened on, so Stop can cancel it.
type subHandler struct {
	topic string
	sub   *pubsub.Subscription
}

// gossipHandler processes one already-validated message from the topic
// msg was published on.
type gossipHandler func(ctx context.Context, msg interface{})

// subscription describes one gossip topic this node subscribes to: the
// plain topic name, an empty value of the wire type published on it, and
// the handler that reacts to a valid message.
type subscription struct {
	topicName string
	newMsg    func() interface{}
	handle    gossipHandler
}

func (s *Service) subscriptions() []subscription {
	return []subscription{
		{p2p.GossipBlockMessage, func() interface{} { return &types.BeaconBlock{} }, s.onBlockGossip},
		{p2p.GossipExitMessage, func() interface{} { return &types.SignedVoluntaryExit{} }, s.onVoluntaryExitGossip},
		{p2p.GossipProposerSlashingMessage, func() interface{} { return &types.ProposerSlashing{} }, s.onProposerSlashingGossip},
		{p2p.GossipAttesterSlashingMessage, func() interface{} { return &types.AttesterSlashing{} }, s.onAttesterSlashingGossip},
	}
}

// registerSubscribers joins and subscribes to every topic this node
// tracks, reading each topic on its own goroutine. Messages on one topic
// are decoded and handled one at a time on that topic's goroutine.
func (s *Service) registerSubscribers() {
	digest, err := s.p2p.ForkDigest()
	if err != nil {
		log.WithError(err).Error("Could not compute fork digest, skipping gossip subscriptions")
		return
	}
	for _, subn := range s.subscriptions() {
		topic := fmt.Sprintf("/eth2/%x/%s%s", digest, subn.topicName, s.p2p.Encoding().ProtocolSuffix())
		joined, err := s.p2p.PubSub().Join(topic)
		if err != nil {
			log.WithError(err).WithField("topic", topic).Error("Could not join gossip topic")
			continue
		}
		sub, err := joined.Subscribe()
		if err != nil {
			log.WithError(err).WithField("topic", topic).Error("Could not subscribe to gossip topic")
			continue
		}
		s.subHandlers = append(s.subHandlers, &subHandler{topic: topic, sub: sub})
		go s.pipelineMessages(sub, subn)
	}
}

func (s *Service) pipelineMessages(sub *pubsub.Subscription, subn subscription) {
	for {
		msg, err := sub.Next(s.ctx)
		if err != nil {
			return
		}
		if msg.ReceivedFrom == s.p2p.PeerID() {
			continue
		}
		decoded := subn.newMsg()
		if err := s.p2p.Encoding().Decode(msg.Data, decoded); err != nil {
			log.WithError(err).WithField("topic", subn.topicName).Debug("Could not decode gossip message")
			continue
		}
		subn.handle(s.ctx, decoded)
	}
}
