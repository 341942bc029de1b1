package blocks

import "github.com/driftchain/beacon-node/beacon-chain/core/types"

// NewGenesisBlock returns the canonical empty block at slot 0, whose
// state root commits to the genesis state. It carries no signature and
// no operations; every chain's history descends from it.
func NewGenesisBlock(stateRoot types.Root) *types.BeaconBlock {
	return &types.BeaconBlock{
		StateRoot: stateRoot,
		Body: &types.BeaconBlockBody{
			Eth1Data: &types.Eth1Data{},
		},
	}
}
