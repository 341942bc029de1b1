// Package initialsync brings a newly-started beacon node from genesis (or
// wherever it last persisted state) up to the chain head other peers are
// already at. Service picks one of two strategies depending on how many
// peers it can see: a single-peer chunked download when only one peer has
// answered the status handshake, or the multi-peer batched engine once a
// quorum is available.
package initialsync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/db/iface"
	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/timeutils"
)

var log = logrus.WithField("prefix", "initial-sync")

const minimumPeerPollInterval = 5 * time.Second

// chainService is the subset of the blockchain service Service drives
// blocks through and reads head/genesis information from.
type chainService interface {
	ReceiveBlockNoPubsub(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error
	HeadState(ctx context.Context) (*types.BeaconState, error)
	HeadSlot() uint64
	HeadRoot() types.Root
	GenesisTime() time.Time
}

// Config configures a new Service.
type Config struct {
	P2P   *p2p.Service
	DB    iface.Database
	Chain chainService
}

// Service drives a node from its persisted head to the network's head once,
// at startup, and again on demand via Resync if the node falls far enough
// behind that regular sync's gossip and pending-block pool can no longer
// catch it up on their own.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	p2p   *p2p.Service
	db    iface.Database
	chain chainService

	synced       bool
	chainStarted bool
}

// NewService returns a Service ready to be started; construction performs
// no network activity.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:    ctx,
		cancel: cancel,
		p2p:    cfg.P2P,
		db:     cfg.DB,
		chain:  cfg.Chain,
	}
}

// Start blocks the calling goroutine until the node has caught up to the
// network (or determined it is already caught up), then returns. A caller
// that doesn't want to block the rest of node startup should invoke it in
// its own goroutine.
func (s *Service) Start() {
	genesis := s.chain.GenesisTime()
	if genesis.After(timeutils.Now()) {
		log.WithField("genesisTime", genesis).Warn("Genesis time is in the future, waiting to start sync")
		time.Sleep(timeutils.Until(genesis))
	}
	s.chainStarted = true

	currentSlot := slotsSinceGenesis(genesis)
	if helpers.SlotToEpoch(currentSlot) == 0 {
		log.Info("Chain started within the last epoch, not syncing")
		s.synced = true
		return
	}
	if helpers.SlotToEpoch(s.chain.HeadSlot()) == helpers.SlotToEpoch(currentSlot) {
		log.Info("Already synced to the current chain head")
		s.synced = true
		return
	}

	log.Info("Starting initial sync")
	s.waitForMinimumPeers()
	if err := s.sync(s.ctx); err != nil {
		log.WithError(err).Error("Initial sync did not complete cleanly")
	}
	log.WithField("slot", s.chain.HeadSlot()).Info("Initial sync complete")
	s.synced = true
}

// Stop cancels any in-flight sync activity. Cancellation is observed at
// batch granularity: a request already in flight is allowed to finish, its
// result is simply discarded instead of being dispatched to import.
func (s *Service) Stop() error {
	s.cancel()
	return nil
}

// Status reports an error while a sync begun after the chain started is
// still in progress, the same convention the rest of the node's services
// use to signal liveness to the status aggregator.
func (s *Service) Status() error {
	if !s.synced && s.chainStarted {
		return errors.New("syncing")
	}
	return nil
}

// Syncing reports whether Start (or the most recent Resync) is still
// bringing the node up to the network head.
func (s *Service) Syncing() bool {
	return !s.synced
}

// Resync restarts the sync process after the node has fallen behind the
// network head again. Nothing in this tree calls it; in particular, a full
// pending-block pool only drops new arrivals.
func (s *Service) Resync() error {
	s.synced = false
	s.waitForMinimumPeers()
	if err := s.sync(s.ctx); err != nil {
		return errors.Wrap(err, "could not resync")
	}
	s.synced = true
	return nil
}

// sync picks the batched engine when enough peers answered the status
// handshake to form a quorum, otherwise falls back to the single-peer
// historical download against whichever one peer is available.
func (s *Service) sync(ctx context.Context) error {
	_, _, peers := s.p2p.Peers().BestFinalized(params.BeaconConfig().MaxPeersToSync)
	if len(peers) == 0 {
		return errors.New("no peers available to sync against")
	}
	if len(peers) == 1 {
		return s.singlePeerSync(ctx, peers[0])
	}
	return s.batchedSync(ctx, peers)
}

func (s *Service) waitForMinimumPeers() {
	required := params.BeaconConfig().MinSyncPeers
	for {
		if s.ctx.Err() != nil {
			return
		}
		count := len(s.p2p.Peers().Connected())
		if count >= required {
			return
		}
		log.WithField("haveValidPeers", count).WithField("required", required).
			Info("Waiting for enough peers before syncing")
		time.Sleep(minimumPeerPollInterval)
	}
}

func slotsSinceGenesis(genesis time.Time) uint64 {
	if genesis.After(timeutils.Now()) {
		return 0
	}
	return uint64(timeutils.Now().Sub(genesis).Seconds()) / params.BeaconConfig().SecondsPerSlot
}
