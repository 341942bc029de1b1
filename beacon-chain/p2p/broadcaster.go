package p2p

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

const (
	// GossipBlockMessage is the name of the beacon block gossip topic.
	GossipBlockMessage = "beacon_block"
	// GossipAttestationMessage is the name of the singular attestation
	// subnet gossip topic. %d is the subnet index.
	GossipAttestationMessage = "beacon_attestation_%d"
	// GossipSyncCommitteeMessage is the name of the sync-committee
	// subnet gossip topic. It is not in GossipTopicMappings, so
	// CanSubscribe rejects it, and nothing in this tree publishes to it.
	GossipSyncCommitteeMessage = "sync_committee_%d"
	// GossipExitMessage is the name of the voluntary exit gossip topic.
	GossipExitMessage = "voluntary_exit"
	// GossipProposerSlashingMessage is the name of the proposer
	// slashing gossip topic.
	GossipProposerSlashingMessage = "proposer_slashing"
	// GossipAttesterSlashingMessage is the name of the attester
	// slashing gossip topic.
	GossipAttesterSlashingMessage = "attester_slashing"
)

// namedGossipMessages associates each plain topic name with the
// message type published on it. GossipTopicMappings and
// GossipTypeMapping are both derived from this one source so the two
// never drift apart.
var namedGossipMessages = map[string]interface{}{
	GossipBlockMessage:            &types.BeaconBlock{},
	GossipAttestationMessage:      &types.Attestation{},
	GossipExitMessage:             &types.SignedVoluntaryExit{},
	GossipProposerSlashingMessage: &types.ProposerSlashing{},
	GossipAttesterSlashingMessage: &types.AttesterSlashing{},
}

// GossipTopicMappings maps a topic format string, as CanSubscribe sees
// it once the fork digest is stripped to "%x", to the message type
// published on it.
var GossipTopicMappings = make(map[string]interface{}, len(namedGossipMessages))

// GossipTypeMapping maps a message's concrete type to the plain topic
// name it publishes on, the direction Broadcast/BroadcastObject need.
var GossipTypeMapping = make(map[reflect.Type]string, len(namedGossipMessages))

func init() {
	for name, msg := range namedGossipMessages {
		GossipTopicMappings[fmt.Sprintf("/eth2/%%x/%s", name)] = msg
		GossipTypeMapping[reflect.TypeOf(msg)] = name
	}
}

// Broadcast publishes an unsigned beacon block on the block gossip
// topic, satisfying blockchain.Broadcaster.
func (s *Service) Broadcast(ctx context.Context, block *types.BeaconBlock) error {
	return s.broadcastOnTopic(ctx, GossipBlockMessage, block)
}

// BroadcastObject publishes msg on the gossip topic registered for its
// concrete type in GossipTypeMapping. Used for message types the
// Broadcaster interface doesn't name directly, such as attestations
// and slashings.
func (s *Service) BroadcastObject(ctx context.Context, msg interface{}) error {
	topic, ok := GossipTypeMapping[reflect.TypeOf(msg)]
	if !ok {
		return errors.Errorf("no gossip topic registered for message type %T", msg)
	}
	return s.broadcastOnTopic(ctx, topic, msg)
}

// BroadcastAttestation publishes an attestation on its subnet-specific
// topic rather than the type-mapped default, since the subnet index
// isn't part of the Go type.
func (s *Service) BroadcastAttestation(ctx context.Context, subnet uint64, att *types.Attestation) error {
	topic := fmt.Sprintf(GossipAttestationMessage, subnet)
	return s.broadcastOnTopic(ctx, topic, att)
}

func (s *Service) broadcastOnTopic(ctx context.Context, topicName string, msg interface{}) error {
	fd, err := s.forkDigest()
	if err != nil {
		return errors.Wrap(err, "could not compute fork digest")
	}
	topic := fmt.Sprintf("/eth2/%x/%s%s", fd, topicName, s.Encoding().ProtocolSuffix())

	var buf bytes.Buffer
	if _, err := s.Encoding().Encode(&buf, msg); err != nil {
		return errors.Wrap(err, "could not encode message")
	}

	joined, err := s.pubsub.Join(topic)
	if err != nil {
		return errors.Wrapf(err, "could not join topic %s", topic)
	}
	return joined.Publish(ctx, buf.Bytes())
}
