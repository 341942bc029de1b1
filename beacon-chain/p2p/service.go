// Package p2p defines the network protocol implementation for the
// beacon node, including peer discovery by static/bootstrap multiaddr,
// gossip-sub using libp2p, and peer lifecycle/handshake bookkeeping.
package p2p

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/host"
	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/protocol"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/p2p/encoder"
	"github.com/driftchain/beacon-node/beacon-chain/p2p/peers"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
	"github.com/driftchain/beacon-node/shared/runutil"
)

var log = logrus.WithField("prefix", "p2p")

// Refresh rate of the ENR-equivalent metadata set, twice per slot.
var refreshRate = 6 * time.Second

// maxBadResponses is the maximum number of bad responses from a peer before we stop talking to it.
const maxBadResponses = 3

const (
	pubsubFlood  = "flood"
	pubsubGossip = "gossip"
	pubsubRandom = "random"
)

// Service for managing peer to peer (p2p) networking.
type Service struct {
	started       bool
	cancel        context.CancelFunc
	cfg           *Config
	peers         *peers.Status
	privKey       crypto.PrivKey
	exclusionList *ristretto.Cache
	metaData      *p2ptypes.MetaData
	pubsub        *pubsub.PubSub
	startupErr    error
	ctx           context.Context
	host          host.Host

	genesisTime           time.Time
	genesisValidatorsRoot [32]byte
}

// NewService initializes a new p2p service. No connections are made
// until Start is called.
func NewService(cfg *Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		cancel()
		return nil, err
	}

	s := &Service{
		ctx:                   ctx,
		cancel:                cancel,
		cfg:                   cfg,
		exclusionList:         cache,
		genesisTime:           cfg.GenesisTime,
		genesisValidatorsRoot: cfg.GenesisValidatorsRoot,
		metaData:              &p2ptypes.MetaData{SeqNumber: 0, Attnets: bitfield.NewBitvector64()},
	}

	opts, _, privateKey, err := buildOptions(s.cfg)
	if err != nil {
		log.WithError(err).Error("Failed to build p2p host options")
		cancel()
		return nil, err
	}
	s.privKey = privateKey

	h, err := libp2p.New(s.ctx, opts...)
	if err != nil {
		log.WithError(err).Error("Failed to create p2p host")
		cancel()
		return nil, err
	}
	s.host = h

	psOpts := []pubsub.Option{
		pubsub.WithMessageSigning(false),
		pubsub.WithStrictSignatureVerification(false),
		pubsub.WithSubscriptionFilter(s),
	}

	var gs *pubsub.PubSub
	if cfg.PubSub == "" {
		cfg.PubSub = pubsubGossip
	}
	switch cfg.PubSub {
	case pubsubFlood:
		gs, err = pubsub.NewFloodSub(s.ctx, s.host, psOpts...)
	case pubsubGossip:
		gs, err = pubsub.NewGossipSub(s.ctx, s.host, psOpts...)
	case pubsubRandom:
		gs, err = pubsub.NewRandomSub(s.ctx, s.host, psOpts...)
	default:
		cancel()
		return nil, fmt.Errorf("unknown pubsub type %s", cfg.PubSub)
	}
	if err != nil {
		log.WithError(err).Error("Failed to start pubsub")
		cancel()
		return nil, err
	}
	s.pubsub = gs
	s.peers = peers.NewStatus(maxBadResponses)

	return s, nil
}

// Start the p2p service: dial any configured static peers and begin
// periodic peer housekeeping.
func (s *Service) Start() {
	if s.started {
		log.Error("Attempted to start p2p service when it was already started")
		return
	}
	s.started = true

	if len(s.cfg.StaticPeers) > 0 {
		addrs, err := peersFromStringAddrs(s.cfg.StaticPeers)
		if err != nil {
			log.Errorf("Could not parse static peer addresses: %v", err)
		} else {
			s.connectWithAllPeers(addrs)
		}
	}

	runutil.RunEvery(s.ctx, time.Hour, s.Peers().Decay)
	runutil.RunEvery(s.ctx, refreshRate, s.refreshMetadata)

	multiAddrs := s.host.Network().ListenAddresses()
	logIPAddr(s.host.ID(), multiAddrs...)

	if s.cfg.HostAddress != "" {
		logExternalIPAddr(s.host.ID(), s.cfg.HostAddress, s.cfg.TCPPort)
	}
	if s.cfg.HostDNS != "" {
		logExternalDNSAddr(s.host.ID(), s.cfg.HostDNS, s.cfg.TCPPort)
	}
}

// Stop the p2p service and terminate all peer connections.
func (s *Service) Stop() error {
	defer s.cancel()
	s.started = false
	return nil
}

// Status of the p2p service. Returns an error if the service is
// unhealthy and shouldn't serve traffic yet.
func (s *Service) Status() error {
	if !s.started {
		return nil
	}
	return s.startupErr
}

// Started returns true if the p2p service has successfully started.
func (s *Service) Started() bool {
	return s.started
}

func (s *Service) isInitialized() bool {
	return s.started
}

// Encoding returns the configured networking encoding.
func (s *Service) Encoding() encoder.NetworkEncoding {
	switch s.cfg.Encoding {
	case encoder.Gob:
		return encoder.GobEncoder{}
	case encoder.GobSnappy:
		return encoder.GobEncoder{UseSnappyCompression: true}
	default:
		return encoder.GobEncoder{UseSnappyCompression: true}
	}
}

// PubSub returns the p2p pubsub framework.
func (s *Service) PubSub() *pubsub.PubSub {
	return s.pubsub
}

// SetStreamHandler sets the protocol handler on the p2p host multiplexer.
func (s *Service) SetStreamHandler(topic string, handler network.StreamHandler) {
	s.host.SetStreamHandler(protocol.ID(topic), handler)
}

// PeerID returns the Peer ID of the local peer.
func (s *Service) PeerID() peer.ID {
	return s.host.ID()
}

// Disconnect from a peer.
func (s *Service) Disconnect(pid peer.ID) error {
	return s.host.Network().ClosePeer(pid)
}

// Connect to a specific peer.
func (s *Service) Connect(pi peer.AddrInfo) error {
	return s.host.Connect(s.ctx, pi)
}

// Peers returns the peer status interface.
func (s *Service) Peers() *peers.Status {
	return s.peers
}

// Metadata returns a copy of the peer's metadata.
func (s *Service) Metadata() *p2ptypes.MetaData {
	return s.metaData.Copy()
}

// MetadataSeq returns the metadata sequence number.
func (s *Service) MetadataSeq() uint64 {
	return s.metaData.SeqNumber
}

// refreshMetadata bumps the metadata sequence number whenever the
// attestation-subnet bitfield being advertised has changed.
func (s *Service) refreshMetadata() {
	bitV := s.trackedSubnets()
	if bitVectorsEqual(bitV, s.metaData.Attnets) {
		return
	}
	s.metaData = &p2ptypes.MetaData{
		SeqNumber: s.metaData.SeqNumber + 1,
		Attnets:   bitV,
	}
}

func bitVectorsEqual(a, b bitfield.Bitvector64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Service) connectWithAllPeers(multiAddrs []ma.Multiaddr) {
	addrInfos, err := peer.AddrInfosFromP2pAddrs(multiAddrs...)
	if err != nil {
		log.Errorf("Could not convert to peer address infos from multiaddresses: %v", err)
		return
	}
	for _, info := range addrInfos {
		go func(info peer.AddrInfo) {
			if err := s.connectWithPeer(info); err != nil {
				log.WithError(err).Tracef("Could not connect with peer %s", info.String())
			}
		}(info)
	}
}

func (s *Service) connectWithPeer(info peer.AddrInfo) error {
	if len(s.Peers().Active()) >= int(s.cfg.MaxPeers) {
		log.WithFields(logrus.Fields{"peer": info.ID.String(),
			"reason": "at peer limit"}).Trace("Not dialing peer")
		return nil
	}
	if info.ID == s.host.ID() {
		return nil
	}
	if s.Peers().IsBad(info.ID) {
		return nil
	}
	if err := s.host.Connect(s.ctx, info); err != nil {
		s.Peers().IncrementBadResponses(info.ID)
		return err
	}
	return nil
}

func logIPAddr(id peer.ID, addrs ...ma.Multiaddr) {
	var correctAddr ma.Multiaddr
	for _, addr := range addrs {
		if strings.Contains(addr.String(), "/ip4/") || strings.Contains(addr.String(), "/ip6/") {
			correctAddr = addr
			break
		}
	}
	if correctAddr != nil {
		log.WithField(
			"multiAddr",
			correctAddr.String()+"/p2p/"+id.String(),
		).Info("Node started p2p server")
	}
}

func logExternalIPAddr(id peer.ID, addr string, port uint) {
	if addr != "" {
		p := strconv.FormatUint(uint64(port), 10)
		log.WithField(
			"multiAddr",
			"/ip4/"+addr+"/tcp/"+p+"/p2p/"+id.String(),
		).Info("Node started external p2p server")
	}
}

func logExternalDNSAddr(id peer.ID, addr string, port uint) {
	if addr != "" {
		p := strconv.FormatUint(uint64(port), 10)
		log.WithField(
			"multiAddr",
			"/dns4/"+addr+"/tcp/"+p+"/p2p/"+id.String(),
		).Info("Node started external p2p server")
	}
}
