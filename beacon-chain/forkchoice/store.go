// Package forkchoice implements the LMD-GHOST fork-choice store: the
// justified/finalized checkpoint bookkeeping, per-validator latest-message
// tracking, and the greedy heaviest-subtree head selection a beacon node
// uses to pick its canonical chain.
package forkchoice

import (
	"sync"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// blockNode is everything the store remembers about an inserted block:
// enough to walk ancestry and to know which checkpoints it vouches for.
type blockNode struct {
	slot           uint64
	parentRoot     types.Root
	justifiedEpoch uint64
	finalizedEpoch uint64
}

// latestMessage is the most recent vote a validator has cast: the beacon
// block root it attested to and its target epoch, keyed by the validator's
// index.
type latestMessage struct {
	epoch uint64
	root  types.Root
}

// Store is the fork-choice store: a single exclusive writer guards
// mutation, readers are expected to call the accessor methods which take
// the read lock.
type Store struct {
	mu sync.RWMutex

	time        uint64
	genesisTime uint64

	justifiedCheckpoint     *types.Checkpoint
	finalizedCheckpoint     *types.Checkpoint
	bestJustifiedCheckpoint *types.Checkpoint

	blocks map[types.Root]*blockNode
	votes  map[uint64]*latestMessage

	// justifiedBalances is the effective balance of every validator index
	// as of the justified checkpoint's state, 0 for validators inactive at
	// that epoch. It is refreshed each time the justified checkpoint
	// advances so get_head always weighs votes against the state the
	// checkpoint actually vouches for.
	justifiedBalances []uint64
}

// NewStore seeds a fresh store at genesis: the genesis block is its own
// justified, finalized and best-justified checkpoint.
func NewStore(genesisTime uint64, genesisRoot types.Root) *Store {
	genesis := &types.Checkpoint{Epoch: 0, Root: genesisRoot}
	return &Store{
		time:                    genesisTime,
		genesisTime:             genesisTime,
		justifiedCheckpoint:     genesis.Copy(),
		finalizedCheckpoint:     genesis.Copy(),
		bestJustifiedCheckpoint: genesis.Copy(),
		blocks: map[types.Root]*blockNode{
			genesisRoot: {slot: 0},
		},
		votes: make(map[uint64]*latestMessage),
	}
}

// JustifiedCheckpoint returns a copy of the store's current justified
// checkpoint.
func (s *Store) JustifiedCheckpoint() *types.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.justifiedCheckpoint.Copy()
}

// FinalizedCheckpoint returns a copy of the store's current finalized
// checkpoint.
func (s *Store) FinalizedCheckpoint() *types.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalizedCheckpoint.Copy()
}

// HasBlock reports whether root has been inserted into the store.
func (s *Store) HasBlock(root types.Root) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[root]
	return ok
}

// OnTick advances the store's logical clock to time. At every epoch
// boundary, a best-justified checkpoint that has overtaken the current
// justified checkpoint is promoted.
func (s *Store) OnTick(time uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previousSlot := s.currentSlot()
	s.time = time
	currentSlot := s.currentSlot()

	if currentSlot <= previousSlot {
		return
	}
	if !helpers.IsEpochStart(currentSlot) {
		return
	}
	if s.bestJustifiedCheckpoint.Epoch > s.justifiedCheckpoint.Epoch {
		s.justifiedCheckpoint = s.bestJustifiedCheckpoint.Copy()
	}
}

func (s *Store) currentSlot() uint64 {
	if s.time < s.genesisTime {
		return 0
	}
	return (s.time - s.genesisTime) / params.BeaconConfig().SecondsPerSlot
}
