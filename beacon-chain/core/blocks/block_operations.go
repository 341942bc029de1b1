// Package blocks processes and verifies the operations a proposer attaches
// to a block: the header, RANDAO reveal, eth1 data vote, proposer and
// attester slashings, attestations, deposits, and voluntary exits.
package blocks

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// ProcessBlockHeader validates a block's header against the state's
// expectations and rotates it into state.LatestBlockHeader.
//
// Spec pseudocode definition:
//  def process_block_header(state: BeaconState, block: BeaconBlock) -> None:
//    assert block.slot == state.slot
//    assert block.slot > state.latest_block_header.slot
//    assert block.proposer_index == get_beacon_proposer_index(state)
//    assert block.parent_root == hash_tree_root(state.latest_block_header)
//    state.latest_block_header = BeaconBlockHeader(...)
//    proposer = state.validators[block.proposer_index]
//    assert not proposer.slashed
func ProcessBlockHeader(state *types.BeaconState, block *types.BeaconBlock) error {
	if block.Slot != state.Slot {
		return errors.Errorf("block slot %d does not match state slot %d", block.Slot, state.Slot)
	}
	if block.Slot <= state.LatestBlockHeader.Slot {
		return errors.Errorf("block slot %d is not after latest header slot %d", block.Slot, state.LatestBlockHeader.Slot)
	}
	wantProposer, err := helpers.BeaconProposerIndex(state)
	if err != nil {
		return errors.Wrap(err, "could not compute expected proposer")
	}
	if block.ProposerIndex != wantProposer {
		return errors.Errorf("block proposer index %d does not match expected %d", block.ProposerIndex, wantProposer)
	}

	parentRoot, err := state.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash latest block header")
	}
	if block.ParentRoot != parentRoot {
		return errors.New("block parent root does not match latest block header root")
	}

	bodyRoot, err := block.Body.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash block body")
	}
	state.LatestBlockHeader = &types.BeaconBlockHeader{
		Slot:          block.Slot,
		ProposerIndex: block.ProposerIndex,
		ParentRoot:    block.ParentRoot,
		StateRoot:     types.Root{},
		BodyRoot:      bodyRoot,
	}

	if int(block.ProposerIndex) >= len(state.Validators) {
		return errors.New("proposer index out of bounds")
	}
	if state.Validators[block.ProposerIndex].Slashed {
		return errors.New("proposer has been slashed")
	}
	return nil
}

// VerifyBlockSignature checks a signed block's proposer signature against
// the registry.
func VerifyBlockSignature(state *types.BeaconState, signed *types.SignedBeaconBlock) error {
	proposer := state.Validators[signed.Block.ProposerIndex]
	domain, err := helpers.Domain(state, params.BeaconConfig().DomainBeaconProposer, 0)
	if err != nil {
		return errors.Wrap(err, "could not compute domain")
	}
	root, err := signed.Block.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash block")
	}
	signingRoot := signingRoot(root, domain)
	ok, err := bls.VerifySignature(signed.Signature[:], signingRoot, proposer.PublicKey[:])
	if err != nil {
		return errors.Wrap(err, "could not verify proposer signature")
	}
	if !ok {
		return errors.New("invalid block proposer signature")
	}
	return nil
}

// signingRoot mixes a signature domain into a message root, per the
// SSZ-signing convention every domain-scoped signature in the protocol
// uses.
func signingRoot(messageRoot, domain [32]byte) [32]byte {
	return ssz.Merkleize([][32]byte{messageRoot, domain})
}

// ProcessRandao verifies the block's RANDAO reveal against the proposer's
// public key and mixes it into the state's current randao mix.
//
// Spec pseudocode definition:
//  def process_randao(state: BeaconState, body: BeaconBlockBody) -> None:
//    epoch = get_current_epoch(state)
//    proposer = state.validators[get_beacon_proposer_index(state)]
//    signing_root = compute_signing_root(epoch, get_domain(state, DOMAIN_RANDAO))
//    assert bls.Verify(proposer.pubkey, signing_root, body.randao_reveal)
//    state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR] = xor(get_randao_mix(state, epoch), hash(body.randao_reveal))
func ProcessRandao(state *types.BeaconState, body *types.BeaconBlockBody) error {
	epoch := helpers.CurrentEpoch(state)
	proposerIdx, err := helpers.BeaconProposerIndex(state)
	if err != nil {
		return errors.Wrap(err, "could not compute proposer index")
	}
	proposer := state.Validators[proposerIdx]

	domain, err := helpers.Domain(state, params.BeaconConfig().DomainRandao, epoch)
	if err != nil {
		return errors.Wrap(err, "could not compute domain")
	}
	epochRoot := epochSigningRoot(epoch)
	signingRoot := signingRoot(epochRoot, domain)

	ok, err := bls.VerifySignature(body.RandaoReveal[:], signingRoot, proposer.PublicKey[:])
	if err != nil {
		return errors.Wrap(err, "could not verify randao reveal")
	}
	if !ok {
		return errors.New("invalid randao reveal signature")
	}

	existing := helpers.RandaoMix(state, epoch)
	mixed := helpers.MixRandao(existing, body.RandaoReveal)
	state.RandaoMixes[epoch%params.BeaconConfig().EpochsPerHistoricalVector] = mixed
	return nil
}

func epochSigningRoot(epoch uint64) [32]byte {
	var chunk [32]byte
	for i := 0; i < 8; i++ {
		chunk[i] = byte(epoch >> (8 * uint(i)))
	}
	return chunk
}

// ProcessEth1Data appends the block's eth1 vote and, once a simple majority
// of the voting period agrees, adopts it as state.Eth1Data.
//
// Spec pseudocode definition:
//  def process_eth1_data(state: BeaconState, body: BeaconBlockBody) -> None:
//    state.eth1_data_votes.append(body.eth1_data)
//    if state.eth1_data_votes.count(body.eth1_data) * 2 > EPOCHS_PER_ETH1_VOTING_PERIOD * SLOTS_PER_EPOCH:
//        state.eth1_data = body.eth1_data
func ProcessEth1Data(state *types.BeaconState, body *types.BeaconBlockBody) error {
	state.Eth1DataVotes = append(state.Eth1DataVotes, body.Eth1Data)

	votingPeriodLength := params.BeaconConfig().SlotsPerEth1VotingPeriod

	count := 0
	for _, vote := range state.Eth1DataVotes {
		if eth1DataEqual(vote, body.Eth1Data) {
			count++
		}
	}
	if uint64(count)*2 > votingPeriodLength {
		state.Eth1Data = body.Eth1Data
	}
	return nil
}

func eth1DataEqual(a, b *types.Eth1Data) bool {
	return a.DepositRoot == b.DepositRoot && a.DepositCount == b.DepositCount && a.BlockHash == b.BlockHash
}
