// Package state implements the whole state transition function: per-slot
// bookkeeping, block processing, and the genesis state bootstrap.
package state

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	b "github.com/driftchain/beacon-node/beacon-chain/core/blocks"
	e "github.com/driftchain/beacon-node/beacon-chain/core/epoch"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

var log = logrus.WithField("prefix", "core/state")

// TransitionConfig toggles behavior that differs between block proposal,
// block validation, and test harnesses.
type TransitionConfig struct {
	VerifyStateRoot bool
	Logging         bool
}

// DefaultConfig is used by block proposal and ordinary sync validation.
func DefaultConfig() *TransitionConfig {
	return &TransitionConfig{VerifyStateRoot: true}
}

// ExecuteStateTransition advances state through every slot up to and
// including block.Slot, applies block (which must be non-nil), and optionally checks
// the resulting state root against the block's claim.
//
// Spec pseudocode definition:
//  def state_transition(state: BeaconState, block: BeaconBlock, validate_state_root: bool=False) -> BeaconState:
//    process_slots(state, block.slot)
//    process_block(state, block)
//    if validate_state_root:
//        assert block.state_root == hash_tree_root(state)
//    return state
func ExecuteStateTransition(
	ctx context.Context,
	state *types.BeaconState,
	block *types.BeaconBlock,
	config *TransitionConfig,
) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := ProcessSlots(ctx, state, block.Slot); err != nil {
		return errors.Wrap(err, "could not process slots")
	}
	if err := ProcessBlock(ctx, state, block, config); err != nil {
		return errors.Wrap(err, "could not process block")
	}

	if config.VerifyStateRoot {
		postStateRoot, err := state.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not compute post-state root")
		}
		if postStateRoot != block.StateRoot {
			return errors.Errorf("state root mismatch, wanted %#x, computed %#x", block.StateRoot, postStateRoot)
		}
	}
	return nil
}

// ProcessSlot runs the bookkeeping every slot needs regardless of whether
// a block arrives for it: caching the pre-slot state root and block root
// into their history rings, and back-filling the previous block header's
// state root once it is known.
//
// Spec pseudocode definition:
//  def process_slot(state: BeaconState) -> None:
//    previous_state_root = hash_tree_root(state)
//    state.state_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_state_root
//    if state.latest_block_header.state_root == Bytes32():
//        state.latest_block_header.state_root = previous_state_root
//    previous_block_root = hash_tree_root(state.latest_block_header)
//    state.block_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_block_root
func ProcessSlot(state *types.BeaconState) error {
	span := params.BeaconConfig().SlotsPerHistoricalRoot

	prevStateRoot, err := state.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute previous state root")
	}
	state.StateRoots[state.Slot%span] = prevStateRoot

	var zeroRoot types.Root
	if state.LatestBlockHeader.StateRoot == zeroRoot {
		state.LatestBlockHeader.StateRoot = prevStateRoot
	}

	prevBlockRoot, err := state.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not compute previous block root")
	}
	state.BlockRoots[state.Slot%span] = prevBlockRoot
	return nil
}

// ProcessSlots advances state one slot at a time up to slot, running the
// epoch transition whenever a slot boundary crosses into a new epoch.
//
// Spec pseudocode definition:
//  def process_slots(state: BeaconState, slot: Slot) -> None:
//    assert state.slot <= slot
//    while state.slot < slot:
//        process_slot(state)
//        if (state.slot + 1) % SLOTS_PER_EPOCH == 0:
//            process_epoch(state)
//        state.slot = Slot(state.slot + 1)
func ProcessSlots(ctx context.Context, state *types.BeaconState, slot uint64) error {
	if state.Slot > slot {
		return errors.Errorf("expected state.slot %d <= slot %d", state.Slot, slot)
	}
	for state.Slot < slot {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := ProcessSlot(state); err != nil {
			return errors.Wrap(err, "could not process slot")
		}
		if CanProcessEpoch(state) {
			if err := e.ProcessEpoch(ctx, state); err != nil {
				return errors.Wrap(err, "could not process epoch")
			}
		}
		state.Slot++
	}
	return nil
}

// CanProcessEpoch reports whether state.Slot is the last slot of an epoch.
func CanProcessEpoch(state *types.BeaconState) bool {
	return (state.Slot+1)%params.BeaconConfig().SlotsPerEpoch == 0
}

// ProcessBlock applies a block's header, RANDAO reveal, eth1 vote, and
// operations to state, in spec order.
//
// Spec pseudocode definition:
//  def process_block(state: BeaconState, block: BeaconBlock) -> None:
//    process_block_header(state, block)
//    process_randao(state, block.body)
//    process_eth1_data(state, block.body)
//    process_operations(state, block.body)
func ProcessBlock(ctx context.Context, state *types.BeaconState, block *types.BeaconBlock, config *TransitionConfig) error {
	if err := b.ProcessBlockHeader(state, block); err != nil {
		return errors.Wrap(err, "could not process block header")
	}
	if err := b.ProcessRandao(state, block.Body); err != nil {
		return errors.Wrap(err, "could not process randao")
	}
	if err := b.ProcessEth1Data(state, block.Body); err != nil {
		return errors.Wrap(err, "could not process eth1 data")
	}
	if err := ProcessOperations(ctx, state, block.Body); err != nil {
		return errors.Wrap(err, "could not process block operations")
	}

	if config.Logging {
		log.WithFields(logrus.Fields{
			"slot":               block.Slot,
			"attestations":       len(block.Body.Attestations),
			"deposits":           len(block.Body.Deposits),
			"proposerSlashings":  len(block.Body.ProposerSlashings),
			"attesterSlashings":  len(block.Body.AttesterSlashings),
			"voluntaryExits":     len(block.Body.VoluntaryExits),
		}).Debug("Processed block")
	}
	return nil
}

// ProcessOperations verifies the block body's operation-count bounds and
// outstanding-deposit accounting, then applies each operation list in
// spec order.
//
// Spec pseudocode definition:
//  def process_operations(state: BeaconState, body: BeaconBlockBody) -> None:
//    assert len(body.deposits) == min(MAX_DEPOSITS, state.eth1_data.deposit_count - state.eth1_deposit_index)
//    for operations, function in (
//        (body.proposer_slashings, process_proposer_slashing),
//        (body.attester_slashings, process_attester_slashing),
//        (body.attestations, process_attestation),
//        (body.deposits, process_deposit),
//        (body.voluntary_exits, process_voluntary_exit),
//    ):
//        for operation in operations:
//            function(state, operation)
func ProcessOperations(ctx context.Context, state *types.BeaconState, body *types.BeaconBlockBody) error {
	cfg := params.BeaconConfig()

	if uint64(len(body.ProposerSlashings)) > cfg.MaxProposerSlashings {
		return errors.Errorf("proposer slashings count %d exceeds limit %d", len(body.ProposerSlashings), cfg.MaxProposerSlashings)
	}
	if uint64(len(body.AttesterSlashings)) > cfg.MaxAttesterSlashings {
		return errors.Errorf("attester slashings count %d exceeds limit %d", len(body.AttesterSlashings), cfg.MaxAttesterSlashings)
	}
	if uint64(len(body.Attestations)) > cfg.MaxAttestations {
		return errors.Errorf("attestations count %d exceeds limit %d", len(body.Attestations), cfg.MaxAttestations)
	}
	if uint64(len(body.VoluntaryExits)) > cfg.MaxVoluntaryExits {
		return errors.Errorf("voluntary exits count %d exceeds limit %d", len(body.VoluntaryExits), cfg.MaxVoluntaryExits)
	}

	maxDeposits := cfg.MaxDeposits
	if outstanding := state.Eth1Data.DepositCount - state.Eth1DepositIndex; outstanding < maxDeposits {
		maxDeposits = outstanding
	}
	if uint64(len(body.Deposits)) != maxDeposits {
		return errors.Errorf("incorrect outstanding deposits in block body, wanted %d, got %d", maxDeposits, len(body.Deposits))
	}

	if err := b.ProcessProposerSlashings(state, body.ProposerSlashings); err != nil {
		return errors.Wrap(err, "could not process proposer slashings")
	}
	if err := b.ProcessAttesterSlashings(state, body.AttesterSlashings); err != nil {
		return errors.Wrap(err, "could not process attester slashings")
	}
	if err := b.ProcessAttestations(state, body.Attestations); err != nil {
		return errors.Wrap(err, "could not process attestations")
	}
	if err := b.ProcessDeposits(state, body.Deposits); err != nil {
		return errors.Wrap(err, "could not process deposits")
	}
	if err := b.ProcessVoluntaryExits(state, body.VoluntaryExits); err != nil {
		return errors.Wrap(err, "could not process voluntary exits")
	}
	return nil
}
