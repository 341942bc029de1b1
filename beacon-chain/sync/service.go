// Package sync runs the gossip and request/response networking a synced
// beacon node needs after initial sync has caught it up: it validates and
// rebroadcasts incoming gossip, answers peers' RPC requests, keeps a pool of
// blocks that arrived before their parent, and re-requests peer status on an
// interval so peers on a different fork digest get dropped.
package sync

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/db/iface"
	"github.com/driftchain/beacon-node/beacon-chain/operations"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
)

var log = logrus.WithField("prefix", "sync")

// chainService is the subset of the blockchain service the sync package
// drives blocks through and reads head/finality information from.
type chainService interface {
	ReceiveBlock(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error
	ReceiveBlockNoPubsub(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error
	HeadState(ctx context.Context) (*types.BeaconState, error)
	HeadSlot() uint64
	HeadRoot() types.Root
	HeadBlock() *types.SignedBeaconBlock
	FinalizedCheckpt() *types.Checkpoint
	CurrentJustifiedCheckpt() *types.Checkpoint
	GenesisTime() time.Time
}

// Config configures a new Service.
type Config struct {
	P2P        *p2p.Service
	DB         iface.Database
	Chain      chainService
	Operations *operations.Service
}

// Service owns every piece of gossip/RPC networking a synced node runs: the
// RPC handlers registered on the p2p host, the gossip subscriptions and
// their validators, and the pending-block pool that bridges the two.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	p2p   *p2p.Service
	db    iface.Database
	chain chainService
	ops   *operations.Service

	pendingQueueLock     sync.RWMutex
	slotToPendingBlocks  map[uint64][]*types.SignedBeaconBlock
	seenPendingBlocks    map[types.Root]bool

	subHandlers []*subHandler
}

// NewService wires a sync Service but does not yet register any RPC
// handler or gossip subscription; call Start for that.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:                 ctx,
		cancel:              cancel,
		p2p:                 cfg.P2P,
		db:                  cfg.DB,
		chain:               cfg.Chain,
		ops:                 cfg.Operations,
		slotToPendingBlocks: make(map[uint64][]*types.SignedBeaconBlock),
		seenPendingBlocks:   make(map[types.Root]bool),
	}
}

// Start registers the RPC handlers and gossip subscriptions and begins the
// background peer-status and pending-block-queue loops. Start assumes the
// node has already completed initial sync: regular sync is the steady
// state a node settles into once caught up.
func (s *Service) Start() {
	s.registerRPCHandlers()
	s.registerSubscribers()

	go s.maintainPeerStatuses()
	go s.processPendingBlocksQueue()

	log.Info("Starting regular sync service")
}

// Stop tears down every gossip subscription this service registered.
func (s *Service) Stop() error {
	defer s.cancel()
	for _, h := range s.subHandlers {
		h.sub.Cancel()
	}
	log.Info("Stopping regular sync service")
	return nil
}

// Status of the sync service. Regular sync itself has no failure state;
// errors surface through peer disconnects and metrics instead.
func (s *Service) Status() error {
	return nil
}
