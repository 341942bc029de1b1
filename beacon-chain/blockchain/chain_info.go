package blockchain

import (
	"context"
	"time"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/timeutils"
)

// HeadFetcher defines the methods other services use to read the chain's
// current view of head.
type HeadFetcher interface {
	HeadSlot() uint64
	HeadRoot() types.Root
	HeadBlock() *types.SignedBeaconBlock
	HeadState(ctx context.Context) (*types.BeaconState, error)
}

// FinalizationFetcher defines the methods other services use to read the
// chain's current justification/finality view.
type FinalizationFetcher interface {
	FinalizedCheckpt() *types.Checkpoint
	CurrentJustifiedCheckpt() *types.Checkpoint
}

// TimeFetcher retrieves genesis-relative timing data.
type TimeFetcher interface {
	GenesisTime() time.Time
	CurrentSlot() uint64
}

// ChainInfoFetcher bundles the chain service's read-only interfaces.
type ChainInfoFetcher interface {
	HeadFetcher
	FinalizationFetcher
	TimeFetcher
}

// HeadSlot returns the slot of the current head block.
func (s *Service) HeadSlot() uint64 {
	s.headLock.RLock()
	defer s.headLock.RUnlock()
	return s.headBlock.Block.Slot
}

// HeadRoot returns the root of the current head block.
func (s *Service) HeadRoot() types.Root {
	s.headLock.RLock()
	defer s.headLock.RUnlock()
	return s.headRoot
}

// HeadBlock returns the current head block.
func (s *Service) HeadBlock() *types.SignedBeaconBlock {
	s.headLock.RLock()
	defer s.headLock.RUnlock()
	return s.headBlock
}

// HeadState returns the current head state. Implements the HeadStateFetcher
// interface the operations service uses to validate voluntary exits.
func (s *Service) HeadState(ctx context.Context) (*types.BeaconState, error) {
	s.headLock.RLock()
	defer s.headLock.RUnlock()
	return s.headState, nil
}

// FinalizedCheckpt returns the fork-choice store's finalized checkpoint.
func (s *Service) FinalizedCheckpt() *types.Checkpoint {
	return s.store.FinalizedCheckpoint()
}

// CurrentJustifiedCheckpt returns the fork-choice store's justified
// checkpoint.
func (s *Service) CurrentJustifiedCheckpt() *types.Checkpoint {
	return s.store.JustifiedCheckpoint()
}

// GenesisTime returns the wall-clock time of genesis.
func (s *Service) GenesisTime() time.Time {
	return s.genesisTime
}

// CurrentSlot returns the slot the wall clock is currently in, computed
// from genesis time rather than head state (so it keeps ticking even
// across periods with no new blocks).
func (s *Service) CurrentSlot() uint64 {
	now := timeutils.Now()
	if now.Before(s.genesisTime) {
		return 0
	}
	return uint64(now.Sub(s.genesisTime).Seconds()) / params.BeaconConfig().SecondsPerSlot
}
