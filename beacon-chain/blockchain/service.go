// Package blockchain ties the state transition function, the fork-choice
// store, and the operation pools together into the node's block-import
// pipeline, and exposes the read surface the RPC and sync services query
// for head/finality information.
package blockchain

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/forkchoice"
	"github.com/driftchain/beacon-node/beacon-chain/operations"
)

var log = logrus.WithField("prefix", "blockchain")

// BeaconDB is the subset of persistent storage the chain service needs to
// import a block: looking up an ancestor's post-state and persisting a
// block's own. Satisfied by beacon-chain/db's store; tests may supply a
// minimal in-memory stand-in.
type BeaconDB interface {
	SaveBlock(ctx context.Context, signed *types.SignedBeaconBlock) error
	Block(ctx context.Context, root types.Root) (*types.SignedBeaconBlock, error)
	SaveState(ctx context.Context, st *types.BeaconState, root types.Root) error
	State(ctx context.Context, root types.Root) (*types.BeaconState, error)
}

// Broadcaster relays a block to the rest of the network before it's
// imported locally. Satisfied by beacon-chain/p2p.
type Broadcaster interface {
	Broadcast(ctx context.Context, block *types.BeaconBlock) error
}

// Service owns the fork-choice store and drives every accepted block
// through the state transition function, updating head and finality
// bookkeeping as it goes.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	store *forkchoice.Store
	db    BeaconDB
	p2p   Broadcaster
	ops   *operations.Service

	genesisTime time.Time
	genesisRoot types.Root

	headLock  sync.RWMutex
	headRoot  types.Root
	headBlock *types.SignedBeaconBlock
	headState *types.BeaconState

	nextEpochBoundarySlot uint64

	// statesLock guards states, an in-memory cache of each known block
	// root's post-state. The db, when wired, is the durable backstop;
	// this cache is what lets onBlock find a parent's post-state without
	// requiring one.
	statesLock sync.RWMutex
	states     map[types.Root]*types.BeaconState
	blocks     map[types.Root]*types.SignedBeaconBlock
}

// Config configures a new Service.
type Config struct {
	GenesisState *types.BeaconState
	GenesisBlock *types.SignedBeaconBlock
	GenesisRoot  types.Root
	DB           BeaconDB
	P2P          Broadcaster
	Operations   *operations.Service
}

// NewService wires a chain service around an already-computed genesis
// state/block pair. The fork-choice store starts rooted at the genesis
// block, and the genesis block and state are the service's head until a
// later block replaces them.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	if cfg.GenesisState == nil || cfg.GenesisBlock == nil {
		cancel()
		return nil, errors.New("blockchain: genesis state and block are required")
	}

	store := forkchoice.NewStore(cfg.GenesisState.GenesisTime, cfg.GenesisRoot)

	s := &Service{
		ctx:         ctx,
		cancel:      cancel,
		store:       store,
		db:          cfg.DB,
		p2p:         cfg.P2P,
		ops:         cfg.Operations,
		genesisTime: time.Unix(int64(cfg.GenesisState.GenesisTime), 0),
		genesisRoot: cfg.GenesisRoot,
		headRoot:    cfg.GenesisRoot,
		headBlock:   cfg.GenesisBlock,
		headState:   cfg.GenesisState,
		states:      map[types.Root]*types.BeaconState{cfg.GenesisRoot: cfg.GenesisState},
		blocks:      map[types.Root]*types.SignedBeaconBlock{cfg.GenesisRoot: cfg.GenesisBlock},
	}
	s.nextEpochBoundarySlot = types.StartSlot(types.SlotToEpoch(cfg.GenesisState.Slot) + 1)
	return s, nil
}

// Start the chain service. There is no background loop of its own; blocks
// arrive through ReceiveBlock/ReceiveBlockNoPubsub calls from sync and RPC.
func (s *Service) Start() {
	log.WithFields(logrus.Fields{
		"genesisTime": s.genesisTime,
		"genesisRoot": s.headRoot,
	}).Info("Starting chain service")
}

// Stop the chain service.
func (s *Service) Stop() error {
	defer s.cancel()
	log.Info("Stopping chain service")
	return nil
}

// statePostBlock returns the cached post-state for root, falling back to
// the db if one is wired in and the cache missed.
func (s *Service) statePostBlock(ctx context.Context, root types.Root) (*types.BeaconState, error) {
	s.statesLock.RLock()
	st, ok := s.states[root]
	s.statesLock.RUnlock()
	if ok {
		return st, nil
	}
	if s.db == nil {
		return nil, errors.Errorf("no state known for root %#x", root)
	}
	return s.db.State(ctx, root)
}

// cacheState records root's post-state in the in-memory cache.
func (s *Service) cacheState(root types.Root, st *types.BeaconState) {
	s.statesLock.Lock()
	defer s.statesLock.Unlock()
	s.states[root] = st
}

// blockByRoot returns the cached block for root, falling back to the db if
// one is wired in and the cache missed.
func (s *Service) blockByRoot(ctx context.Context, root types.Root) (*types.SignedBeaconBlock, error) {
	s.statesLock.RLock()
	b, ok := s.blocks[root]
	s.statesLock.RUnlock()
	if ok {
		return b, nil
	}
	if s.db == nil {
		return nil, errors.Errorf("no block known for root %#x", root)
	}
	return s.db.Block(ctx, root)
}

// cacheBlock records root's block in the in-memory cache.
func (s *Service) cacheBlock(root types.Root, b *types.SignedBeaconBlock) {
	s.statesLock.Lock()
	defer s.statesLock.Unlock()
	s.blocks[root] = b
}
