package p2p

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	coretypes "github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/p2p/encoder"
	p2ptest "github.com/driftchain/beacon-node/beacon-chain/p2p/testing"
)

// waitTimeout reports whether wg did not finish within d.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return false
	case <-time.After(d):
		return true
	}
}

func TestBroadcast_Block(t *testing.T) {
	p1 := p2ptest.NewTestP2P(t)
	p2 := p2ptest.NewTestP2P(t)
	p1.Connect(p2)
	if len(p1.Host.Network().Peers()) == 0 {
		t.Fatal("No peers")
	}

	p := &Service{
		host:   p1.Host,
		pubsub: p1.PubSub(),
		cfg:    &Config{Encoding: encoder.GobSnappy},
	}

	block := &coretypes.BeaconBlock{Slot: 5}

	fd, err := p.forkDigest()
	if err != nil {
		t.Fatal(err)
	}
	topic := fmt.Sprintf("/eth2/%x/%s%s", fd, GossipBlockMessage, p.Encoding().ProtocolSuffix())
	sub, err := p2.PubSub().Subscribe(topic)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond) // libp2p fails without this delay

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		incomingMessage, err := sub.Next(ctx)
		if err != nil {
			t.Error(err)
			return
		}

		result := &coretypes.BeaconBlock{}
		if err := p.Encoding().Decode(incomingMessage.Data, result); err != nil {
			t.Error(err)
			return
		}
		if result.Slot != block.Slot {
			t.Errorf("got slot %d, wanted %d", result.Slot, block.Slot)
		}
	}()

	if err := p.Broadcast(context.Background(), block); err != nil {
		t.Fatal(err)
	}
	if waitTimeout(&wg, 1*time.Second) {
		t.Error("Failed to receive pubsub within 1s")
	}
}

func TestBroadcastObject_UsesRegisteredTopic(t *testing.T) {
	p1 := p2ptest.NewTestP2P(t)
	p2 := p2ptest.NewTestP2P(t)
	p1.Connect(p2)

	p := &Service{
		host:   p1.Host,
		pubsub: p1.PubSub(),
		cfg:    &Config{Encoding: encoder.GobSnappy},
	}

	type customMessage struct{ Foo uint64 }
	msg := &customMessage{Foo: 7}
	GossipTypeMapping[reflect.TypeOf(msg)] = "testing"
	defer delete(GossipTypeMapping, reflect.TypeOf(msg))

	fd, err := p.forkDigest()
	if err != nil {
		t.Fatal(err)
	}
	topic := fmt.Sprintf("/eth2/%x/testing%s", fd, p.Encoding().ProtocolSuffix())
	sub, err := p2.PubSub().Subscribe(topic)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		incomingMessage, err := sub.Next(ctx)
		if err != nil {
			t.Error(err)
			return
		}
		result := &customMessage{}
		if err := p.Encoding().Decode(incomingMessage.Data, result); err != nil {
			t.Error(err)
			return
		}
		if result.Foo != msg.Foo {
			t.Errorf("got %d, wanted %d", result.Foo, msg.Foo)
		}
	}()

	if err := p.BroadcastObject(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if waitTimeout(&wg, 1*time.Second) {
		t.Error("Failed to receive pubsub within 1s")
	}
}
