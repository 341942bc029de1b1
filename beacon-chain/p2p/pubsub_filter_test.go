package p2p

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/libp2p/go-libp2p-core/peer"
	pubsubpb "github.com/libp2p/go-libp2p-pubsub/pb"
	"github.com/stretchr/testify/require"

	"github.com/driftchain/beacon-node/beacon-chain/p2p/encoder"
)

func Test_subscriptionFilter_CanSubscribe(t *testing.T) {
	s := &Service{started: true}
	currentFork, err := s.forkDigest()
	if err != nil {
		t.Fatal(err)
	}
	validProtocolSuffix := encoder.GobSnappy
	type test struct {
		name  string
		topic string
		want  bool
	}
	tests := []test{
		{
			name:  "block topic on current fork",
			topic: fmt.Sprintf("/eth2/%x/"+GossipBlockMessage, currentFork) + "/" + validProtocolSuffix,
			want:  true,
		},
		{
			name:  "block topic missing protocol suffix",
			topic: fmt.Sprintf("/eth2/%x/"+GossipBlockMessage, currentFork),
			want:  false,
		},
		{
			name:  "block topic wrong protocol suffix",
			topic: fmt.Sprintf("/eth2/%x/"+GossipBlockMessage, currentFork) + "/foobar",
			want:  false,
		},
		{
			name:  "erroneous topic",
			topic: "hey, want to foobar?",
			want:  false,
		},
		{
			name:  "erroneous topic with correct slash count",
			topic: "hey, want to foobar?////",
			want:  false,
		},
		{
			name:  "bad prefix",
			topic: fmt.Sprintf("/eth3/%x/foobar", currentFork) + "/" + validProtocolSuffix,
			want:  false,
		},
		{
			name:  "topic not in gossip mapping",
			topic: fmt.Sprintf("/eth2/%x/foobar", currentFork) + "/" + validProtocolSuffix,
			want:  false,
		},
		{
			name:  "attestation subnet topic",
			topic: fmt.Sprintf("/eth2/%x/"+GossipAttestationMessage, currentFork, 55) + "/" + validProtocolSuffix,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CanSubscribe(tt.topic); got != tt.want {
				t.Errorf("CanSubscribe(%s) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func Test_subscriptionFilter_CanSubscribe_uninitialized(t *testing.T) {
	s := &Service{started: false}
	require.False(t, s.CanSubscribe("/eth2/01020304/"+GossipBlockMessage+"/"+encoder.GobSnappy))
}

func Test_scanfcheck(t *testing.T) {
	type args struct {
		input  string
		format string
	}
	tests := []struct {
		name    string
		args    args
		want    int
		wantErr bool
	}{
		{
			name: "no formatting, exact match",
			args: args{
				input:  "/foo/bar/zzzzzzzzzzzz/1234567",
				format: "/foo/bar/zzzzzzzzzzzz/1234567",
			},
			want:    0,
			wantErr: false,
		},
		{
			name: "no formatting, mismatch",
			args: args{
				input:  "/foo/bar/zzzzzzzzzzzz/1234567",
				format: "/bar/foo/yyyyyy/7654321",
			},
			want:    0,
			wantErr: true,
		},
		{
			name: "formatting, match",
			args: args{
				input:  "/foo/bar/abcdef/topic_11",
				format: "/foo/bar/%x/topic_%d",
			},
			want:    2,
			wantErr: false,
		},
		{
			name: "formatting, incompatible bytes",
			args: args{
				input:  "/foo/bar/zzzzzz/topic_11",
				format: "/foo/bar/%x/topic_%d",
			},
			want:    0,
			wantErr: true,
		},
		{ // Note: This method only supports integer compatible formatting values.
			name: "formatting, string match",
			args: args{
				input:  "/foo/bar/zzzzzz/topic_11",
				format: "/foo/bar/%s/topic_%d",
			},
			want:    0,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanfcheck(tt.args.input, tt.args.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("scanfcheck() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("scanfcheck() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGossipTopicMapping_scanfcheck_GossipTopicFormattingSanityCheck(t *testing.T) {
	// scanfcheck only supports integer based substitutions. Any others will
	// inaccurately fail validation.
	for topic := range GossipTopicMappings {
		t.Run(topic, func(t *testing.T) {
			for i, c := range topic {
				if string(c) == "%" {
					next := string(topic[i+1])
					if next != "d" && next != "x" {
						t.Errorf("Topic %s has formatting incompatible with scanfcheck. Only %%d and %%x are supported", topic)
					}
				}
			}
		})
	}
}

func Test_subscriptionFilter_FilterIncomingSubscriptions(t *testing.T) {
	s := &Service{started: true}
	currentFork, err := s.forkDigest()
	if err != nil {
		t.Fatal(err)
	}
	validProtocolSuffix := encoder.GobSnappy
	blockTopic := func() *string {
		s := fmt.Sprintf("/eth2/%x/"+GossipBlockMessage, currentFork) + "/" + validProtocolSuffix
		return &s
	}()
	yes := func() *bool { b := true; return &b }()

	type args struct {
		id   peer.ID
		subs []*pubsubpb.RPC_SubOpts
	}
	tests := []struct {
		name    string
		args    args
		want    []*pubsubpb.RPC_SubOpts
		wantErr bool
	}{
		{
			name: "too many topics",
			args: args{
				subs: make([]*pubsubpb.RPC_SubOpts, pubsubSubscriptionRequestLimit+1),
			},
			wantErr: true,
		},
		{
			name: "exactly topic limit",
			args: args{
				subs: make([]*pubsubpb.RPC_SubOpts, pubsubSubscriptionRequestLimit),
			},
			wantErr: false,
			want:    nil,
		},
		{
			name: "blocks topic",
			args: args{
				subs: []*pubsubpb.RPC_SubOpts{{Subscribe: yes, Topicid: blockTopic}},
			},
			wantErr: false,
			want:    []*pubsubpb.RPC_SubOpts{{Subscribe: yes, Topicid: blockTopic}},
		},
		{
			name: "blocks topic duplicated",
			args: args{
				subs: []*pubsubpb.RPC_SubOpts{
					{Subscribe: yes, Topicid: blockTopic},
					{Subscribe: yes, Topicid: blockTopic},
				},
			},
			wantErr: false,
			want:    []*pubsubpb.RPC_SubOpts{{Subscribe: yes, Topicid: blockTopic}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.FilterIncomingSubscriptions(tt.args.id, tt.args.subs)
			if (err != nil) != tt.wantErr {
				t.Errorf("FilterIncomingSubscriptions() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterIncomingSubscriptions() got = %v, want %v", got, tt.want)
			}
		})
	}
}
