// Package testing provides a mock chain service other packages' tests can
// depend on instead of wiring a real beacon-chain/blockchain.Service.
package testing

import (
	"context"
	"time"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// ChainService is a mock implementing the blockchain.ChainInfoFetcher,
// blockchain.BlockReceiver and operations.HeadStateFetcher interfaces.
type ChainService struct {
	State                      *types.BeaconState
	Root                       types.Root
	Block                      *types.SignedBeaconBlock
	FinalizedCheckPoint        *types.Checkpoint
	CurrentJustifiedCheckPoint *types.Checkpoint
	BlocksReceived             []*types.SignedBeaconBlock
	Genesis                    time.Time
}

// ReceiveBlock mocks the same method in the chain service.
func (ms *ChainService) ReceiveBlock(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error {
	return ms.ReceiveBlockNoPubsub(ctx, signed, blockRoot)
}

// ReceiveBlockNoPubsub mocks the same method in the chain service.
func (ms *ChainService) ReceiveBlockNoPubsub(ctx context.Context, signed *types.SignedBeaconBlock, blockRoot types.Root) error {
	if ms.State == nil {
		ms.State = &types.BeaconState{}
	}
	ms.State.Slot = signed.Block.Slot
	ms.BlocksReceived = append(ms.BlocksReceived, signed)
	ms.Root = blockRoot
	ms.Block = signed
	return nil
}

// HeadSlot mocks the same method in the chain service.
func (ms *ChainService) HeadSlot() uint64 {
	if ms.State == nil {
		return 0
	}
	return ms.State.Slot
}

// HeadRoot mocks the same method in the chain service.
func (ms *ChainService) HeadRoot() types.Root {
	return ms.Root
}

// HeadBlock mocks the same method in the chain service.
func (ms *ChainService) HeadBlock() *types.SignedBeaconBlock {
	return ms.Block
}

// HeadState mocks the same method in the chain service. It also satisfies
// operations.HeadStateFetcher, so this mock can stand in for either.
func (ms *ChainService) HeadState(context.Context) (*types.BeaconState, error) {
	return ms.State, nil
}

// FinalizedCheckpt mocks the same method in the chain service.
func (ms *ChainService) FinalizedCheckpt() *types.Checkpoint {
	return ms.FinalizedCheckPoint
}

// CurrentJustifiedCheckpt mocks the same method in the chain service.
func (ms *ChainService) CurrentJustifiedCheckpt() *types.Checkpoint {
	return ms.CurrentJustifiedCheckPoint
}

// GenesisTime mocks the same method in the chain service.
func (ms *ChainService) GenesisTime() time.Time {
	return ms.Genesis
}

// CurrentSlot mocks the same method in the chain service.
func (ms *ChainService) CurrentSlot() uint64 {
	if ms.State == nil {
		return 0
	}
	return ms.State.Slot
}
