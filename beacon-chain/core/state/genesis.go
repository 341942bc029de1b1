package state

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/trieutil"
)

// GenesisBeaconState builds the genesis state from the full sequence of
// eth1 deposits observed up to chainstart, processing each one (so
// deposit proofs verify against the running deposit root) and then
// activating every validator whose deposit reached max effective balance.
//
// Spec pseudocode definition:
//  def initialize_beacon_state_from_eth1(eth1_block_hash: Bytes32,
//                                      eth1_timestamp: uint64,
//                                      deposits: Sequence[Deposit]) -> BeaconState:
//    ...
func GenesisBeaconState(deposits []*types.Deposit, genesisTime uint64, eth1BlockHash types.Root) (*types.BeaconState, error) {
	state, err := EmptyGenesisState(genesisTime, eth1BlockHash)
	if err != nil {
		return nil, err
	}

	leaves := make([][]byte, len(deposits))
	for i, d := range deposits {
		leaf, err := d.Data.HashTreeRoot()
		if err != nil {
			return nil, errors.Wrapf(err, "could not hash deposit data at index %d", i)
		}
		leaves[i] = leaf[:]
	}

	depth := int(params.BeaconConfig().DepositContractTreeDepth)
	trie, err := trieutil.NewTrie(depth)
	if err != nil {
		return nil, errors.Wrap(err, "could not create empty deposit trie")
	}

	for i, d := range deposits {
		if err := trie.Insert(leaves[i], i); err != nil {
			return nil, errors.Wrapf(err, "could not insert deposit %d into trie", i)
		}
		root := trie.HashTreeRoot()
		state.Eth1Data.DepositRoot = root
		state.Eth1Data.DepositCount = uint64(i + 1)

		if err := processGenesisDeposit(state, d); err != nil {
			return nil, errors.Wrapf(err, "could not process genesis deposit %d", i)
		}
	}

	currentEpoch := helpers.CurrentEpoch(state)
	for idx, v := range state.Validators {
		balance := state.Balances[idx]
		effective := balance - balance%params.BeaconConfig().EffectiveBalanceIncrement
		if effective > params.BeaconConfig().MaxEffectiveBalance {
			effective = params.BeaconConfig().MaxEffectiveBalance
		}
		v.EffectiveBalance = effective
		if v.EffectiveBalance == params.BeaconConfig().MaxEffectiveBalance {
			v.ActivationEligibilityEpoch = currentEpoch
			v.ActivationEpoch = currentEpoch
		}
	}

	validatorsRoot, err := types.ValidatorsRoot(state.Validators)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash genesis validator registry")
	}
	state.GenesisValidatorsRoot = validatorsRoot

	return state, nil
}

// processGenesisDeposit is process_deposit without the Merkle-proof and
// deposit-signature checks: genesis deposits are trusted inputs already
// known to be valid members of the trie being built alongside them.
func processGenesisDeposit(state *types.BeaconState, d *types.Deposit) error {
	state.Eth1DepositIndex++
	pubkey := d.Data.PublicKey
	for idx, v := range state.Validators {
		if v.PublicKey == pubkey {
			state.Balances[idx] += d.Data.Amount
			return nil
		}
	}
	state.Validators = append(state.Validators, &types.Validator{
		PublicKey:                  pubkey,
		WithdrawalCredentials:      d.Data.WithdrawalCredentials,
		ActivationEligibilityEpoch: types.FarFutureEpoch,
		ActivationEpoch:            types.FarFutureEpoch,
		ExitEpoch:                  types.FarFutureEpoch,
		WithdrawableEpoch:          types.FarFutureEpoch,
	})
	state.Balances = append(state.Balances, d.Data.Amount)
	return nil
}

// EmptyGenesisState returns a zero-validator state with every fixed-size
// vector pre-allocated and filled to its configured length, ready for
// genesis deposits to populate.
func EmptyGenesisState(genesisTime uint64, eth1BlockHash types.Root) (*types.BeaconState, error) {
	cfg := params.BeaconConfig()

	randaoMixes := make([][32]byte, cfg.EpochsPerHistoricalVector)
	for i := range randaoMixes {
		randaoMixes[i] = eth1BlockHash
	}

	var forkVersion [4]byte
	copy(forkVersion[:], cfg.GenesisForkVersion)

	emptyBody := &types.BeaconBlockBody{Eth1Data: &types.Eth1Data{}}
	bodyRoot, err := emptyBody.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash empty block body")
	}

	return &types.BeaconState{
		GenesisTime: genesisTime,
		Slot:        0,
		Fork: &types.Fork{
			PreviousVersion: forkVersion,
			CurrentVersion:  forkVersion,
			Epoch:           0,
		},
		LatestBlockHeader: &types.BeaconBlockHeader{BodyRoot: bodyRoot},
		BlockRoots:        make([][32]byte, cfg.SlotsPerHistoricalRoot),
		StateRoots:        make([][32]byte, cfg.SlotsPerHistoricalRoot),
		HistoricalRoots:   nil,

		Eth1Data:         &types.Eth1Data{BlockHash: eth1BlockHash},
		Eth1DataVotes:    nil,
		Eth1DepositIndex: 0,

		Validators: nil,
		Balances:   nil,

		RandaoMixes: randaoMixes,
		Slashings:   make([]uint64, cfg.EpochsPerSlashingsVector),

		PreviousEpochAttestations: nil,
		CurrentEpochAttestations:  nil,

		JustificationBits:           [1]byte{0},
		PreviousJustifiedCheckpoint: &types.Checkpoint{},
		CurrentJustifiedCheckpoint:  &types.Checkpoint{},
		FinalizedCheckpoint:         &types.Checkpoint{},
	}, nil
}

// IsValidGenesisState reports whether chainstart conditions have been
// met: enough time has passed and enough full deposits have landed.
//
// Spec pseudocode definition:
//  def is_valid_genesis_state(state: BeaconState) -> bool:
//     if state.genesis_time < MIN_GENESIS_TIME: return False
//     if len(get_active_validator_indices(state, GENESIS_EPOCH)) < MIN_GENESIS_ACTIVE_VALIDATOR_COUNT: return False
//     return True
func IsValidGenesisState(chainStartDepositCount, currentTime uint64) bool {
	cfg := params.BeaconConfig()
	if currentTime < cfg.MinGenesisTime {
		return false
	}
	if chainStartDepositCount < cfg.MinGenesisActiveValidatorCount {
		return false
	}
	return true
}
