// Package operations wires the attestation, slashing and voluntary exit
// pools into the rest of the beacon node: incoming gossip lands on a feed,
// gets saved into the matching pool, and a block import notification prunes
// whatever that block carried.
package operations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/forkchoice"
	"github.com/driftchain/beacon-node/beacon-chain/operations/attestations"
	"github.com/driftchain/beacon-node/beacon-chain/operations/slashings"
	"github.com/driftchain/beacon-node/beacon-chain/operations/voluntaryexits"
	"github.com/driftchain/beacon-node/shared/event"
	handler "github.com/driftchain/beacon-node/shared/messagehandler"
	"github.com/driftchain/beacon-node/shared/params"
)

var log = logrus.WithField("prefix", "operations")

// HeadStateFetcher supplies the state the insert-time precondition checks
// (not already included, not slashed, not exited) run against.
type HeadStateFetcher interface {
	HeadState(ctx context.Context) (*types.BeaconState, error)
}

// ImportedBlock notifies the service that a block has been accepted by the
// fork-choice store, so whatever it carried can be pruned from the pools.
type ImportedBlock struct {
	Root  types.Root
	Block *types.BeaconBlock
}

// Service owns the operation pools and the attestation manager, and relays
// incoming gossip messages into them.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	AttestationPool    *attestations.Pool
	AttestationManager *attestations.Manager
	Slashings          *slashings.Pool
	Exits              *voluntaryexits.Pool

	headFetcher HeadStateFetcher

	incomingAttFeed            *event.Feed
	incomingAtt                chan *types.Attestation
	incomingExitFeed           *event.Feed
	incomingExit               chan *types.SignedVoluntaryExit
	incomingProcessedBlockFeed *event.Feed
	incomingProcessedBlock     chan *ImportedBlock
}

// Config configures a new Service.
type Config struct {
	Store       *forkchoice.Store
	HeadFetcher HeadStateFetcher
}

// NewService returns a Service whose pools and manager are ready, but whose
// gossip-relay goroutines haven't started yet; call Start for that.
func NewService(ctx context.Context, cfg *Config) *Service {
	ctx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:                        ctx,
		cancel:                     cancel,
		AttestationPool:            attestations.NewPool(),
		AttestationManager:         attestations.NewManager(cfg.Store),
		Slashings:                  slashings.NewPool(),
		Exits:                      voluntaryexits.NewPool(),
		headFetcher:                cfg.HeadFetcher,
		incomingAttFeed:            new(event.Feed),
		incomingAtt:                make(chan *types.Attestation, params.BeaconConfig().DefaultBufferSize),
		incomingExitFeed:           new(event.Feed),
		incomingExit:               make(chan *types.SignedVoluntaryExit, params.BeaconConfig().DefaultBufferSize),
		incomingProcessedBlockFeed: new(event.Feed),
		incomingProcessedBlock:     make(chan *ImportedBlock, params.BeaconConfig().DefaultBufferSize),
	}
}

// Start the pool service's gossip-relay goroutines.
func (s *Service) Start() {
	log.Info("Starting service")
	go s.saveOperations()
	go s.removeOperations()
}

// Stop the pool service's gossip-relay goroutines.
func (s *Service) Stop() error {
	s.cancel()
	log.Info("Stopping service")
	return nil
}

// IncomingAttFeed returns the feed any service can send incoming p2p
// attestations into.
func (s *Service) IncomingAttFeed() *event.Feed {
	return s.incomingAttFeed
}

// IncomingExitFeed returns the feed any service can send incoming p2p
// voluntary exits into.
func (s *Service) IncomingExitFeed() *event.Feed {
	return s.incomingExitFeed
}

// IncomingProcessedBlockFeed returns the feed the block-import pipeline
// sends accepted blocks into, so this service can prune its pools.
func (s *Service) IncomingProcessedBlockFeed() *event.Feed {
	return s.incomingProcessedBlockFeed
}

func (s *Service) saveOperations() {
	attSub := s.incomingAttFeed.Subscribe(s.incomingAtt)
	defer attSub.Unsubscribe()
	exitSub := s.incomingExitFeed.Subscribe(s.incomingExit)
	defer exitSub.Unsubscribe()

	for {
		select {
		case <-attSub.Err():
			log.Debug("Attestation subscriber closed, exiting goroutine")
			return
		case <-exitSub.Err():
			log.Debug("Exit subscriber closed, exiting goroutine")
			return
		case <-s.ctx.Done():
			log.Debug("operations service context closed, exiting save goroutine")
			return
		case att := <-s.incomingAtt:
			handler.SafelyHandleMessage(s.ctx, s.handleAttestation, att)
		case exit := <-s.incomingExit:
			handler.SafelyHandleMessage(s.ctx, s.handleVoluntaryExit, exit)
		}
	}
}

func (s *Service) handleAttestation(ctx context.Context, message interface{}) error {
	att, ok := message.(*types.Attestation)
	if !ok {
		return errors.New("message is not an attestation")
	}
	if err := s.AttestationPool.Save(att); err != nil {
		return errors.Wrap(err, "could not save attestation to pool")
	}
	return nil
}

func (s *Service) handleVoluntaryExit(ctx context.Context, message interface{}) error {
	exit, ok := message.(*types.SignedVoluntaryExit)
	if !ok {
		return errors.New("message is not a voluntary exit")
	}
	state, err := s.headFetcher.HeadState(ctx)
	if err != nil {
		return errors.Wrap(err, "could not fetch head state")
	}
	return s.Exits.InsertVoluntaryExit(state, exit)
}

func (s *Service) removeOperations() {
	blockSub := s.incomingProcessedBlockFeed.Subscribe(s.incomingProcessedBlock)
	defer blockSub.Unsubscribe()

	for {
		select {
		case <-blockSub.Err():
			log.Debug("Block subscriber closed, exiting goroutine")
			return
		case <-s.ctx.Done():
			log.Debug("operations service context closed, exiting remove goroutine")
			return
		case imported := <-s.incomingProcessedBlock:
			if err := s.handleImportedBlock(imported); err != nil {
				log.WithError(err).Error("Could not prune pools for imported block")
			}
		}
	}
}

// handleImportedBlock marks every slashing and exit the block carried as
// included, and releases attestations the manager had queued on its root.
func (s *Service) handleImportedBlock(imported *ImportedBlock) error {
	body := imported.Block.Body
	for _, ps := range body.ProposerSlashings {
		s.Slashings.MarkIncludedProposerSlashing(ps)
	}
	for _, as := range body.AttesterSlashings {
		s.Slashings.MarkIncludedAttesterSlashing(as)
	}
	for _, exit := range body.VoluntaryExits {
		s.Exits.MarkIncluded(exit)
	}
	return s.AttestationManager.OnImportedBlock(imported.Root)
}
