package helpers

import (
	"fmt"

	"github.com/pkg/errors"
	bitfield "github.com/prysmaticlabs/go-bitfield"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/params"
)

// CommitteeCountAtSlot returns the number of beacon committees at slot.
//
// Spec pseudocode definition:
//  def get_committee_count_at_slot(state: BeaconState, slot: Slot) -> uint64:
//    epoch = compute_epoch_at_slot(slot)
//    return max(1, min(
//        MAX_COMMITTEES_PER_SLOT,
//        len(get_active_validator_indices(state, epoch)) // SLOTS_PER_EPOCH // TARGET_COMMITTEE_SIZE,
//    ))
func CommitteeCountAtSlot(state *types.BeaconState, slot uint64) (uint64, error) {
	epoch := SlotToEpoch(slot)
	count, err := ActiveValidatorCount(state, epoch)
	if err != nil {
		return 0, errors.Wrap(err, "could not get active count")
	}
	cfg := params.BeaconConfig()
	perSlot := count / cfg.SlotsPerEpoch / cfg.TargetCommitteeSize
	if perSlot > cfg.MaxCommitteesPerSlot {
		return cfg.MaxCommitteesPerSlot, nil
	}
	if perSlot == 0 {
		return 1, nil
	}
	return perSlot, nil
}

// BeaconCommittee returns the beacon committee at slot for the given
// committee index.
//
// Spec pseudocode definition:
//  def get_beacon_committee(state: BeaconState, slot: Slot, index: CommitteeIndex) -> Sequence[ValidatorIndex]:
//    epoch = compute_epoch_at_slot(slot)
//    committees_per_slot = get_committee_count_at_slot(state, slot)
//    return compute_committee(
//        indices=get_active_validator_indices(state, epoch),
//        seed=get_seed(state, epoch, DOMAIN_BEACON_ATTESTER),
//        index=(slot % SLOTS_PER_EPOCH) * committees_per_slot + index,
//        count=committees_per_slot * SLOTS_PER_EPOCH,
//    )
func BeaconCommittee(state *types.BeaconState, slot uint64, index uint64) ([]uint64, error) {
	epoch := SlotToEpoch(slot)

	committeesPerSlot, err := CommitteeCountAtSlot(state, slot)
	if err != nil {
		return nil, errors.Wrap(err, "could not get committee count at slot")
	}
	epochOffset := index + (slot%params.BeaconConfig().SlotsPerEpoch)*committeesPerSlot
	count := committeesPerSlot * params.BeaconConfig().SlotsPerEpoch

	seed, err := Seed(state, epoch, params.BeaconConfig().DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrap(err, "could not get seed")
	}
	indices, err := ActiveValidatorIndices(state, epoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active indices")
	}
	return ComputeCommittee(indices, seed, epochOffset, count)
}

// ComputeCommittee returns the slice of indices forming committee `index`
// out of `count` total committees sharing the shuffled `indices` list.
//
// Spec pseudocode definition:
//  def compute_committee(indices: Sequence[ValidatorIndex], seed: Bytes32, index: uint64, count: uint64) -> Sequence[ValidatorIndex]:
//    start = (len(indices) * index) // count
//    end = (len(indices) * (index + 1)) // count
//    return [indices[compute_shuffled_index(uint64(i), uint64(len(indices)), seed)] for i in range(start, end)]
func ComputeCommittee(indices []uint64, seed [32]byte, index uint64, count uint64) ([]uint64, error) {
	validatorCount := uint64(len(indices))
	start := splitOffset(validatorCount, count, index)
	end := splitOffset(validatorCount, count, index+1)

	shuffled := make([]uint64, end-start)
	for i := start; i < end; i++ {
		permutedIndex, err := ComputeShuffledIndex(i, validatorCount, seed, true)
		if err != nil {
			return nil, errors.Wrapf(err, "could not get shuffled index at %d", i)
		}
		shuffled[i-start] = indices[permutedIndex]
	}
	return shuffled, nil
}

func splitOffset(listSize, chunks, index uint64) uint64 {
	return (listSize * index) / chunks
}

// AttestingIndices returns the attester indices from a committee whose
// corresponding aggregation bit is set.
//
// Spec pseudocode definition:
//  def get_attesting_indices(state: BeaconState, data: AttestationData, bits: Bitlist[MAX_VALIDATORS_PER_COMMITTEE]) -> Set[ValidatorIndex]:
//    committee = get_beacon_committee(state, data.slot, data.index)
//    return set(index for i, index in enumerate(committee) if bits[i])
func AttestingIndices(bits bitfield.Bitlist, committee []uint64) ([]uint64, error) {
	indices := make([]uint64, 0, len(committee))
	for i, idx := range committee {
		if uint64(i) >= bits.Len() {
			break
		}
		if bits.BitAt(uint64(i)) {
			indices = append(indices, idx)
		}
	}
	return indices, nil
}

// CommitteeAssignmentContainer represents a committee, its index, and the
// slot it attests at.
type CommitteeAssignmentContainer struct {
	Committee      []uint64
	AttesterSlot   uint64
	CommitteeIndex uint64
}

// CommitteeAssignments maps every validator index active in epoch to its
// committee assignment, and every proposer index to the slot it proposes.
func CommitteeAssignments(state *types.BeaconState, epoch uint64) (map[uint64]*CommitteeAssignmentContainer, map[uint64]uint64, error) {
	if epoch > NextEpoch(state) {
		return nil, nil, fmt.Errorf("epoch %d can't be greater than next epoch %d", epoch, NextEpoch(state))
	}

	startSlot := StartSlot(epoch)
	proposerIndexToSlot := make(map[uint64]uint64)
	original := state.Slot
	for slot := startSlot; slot < startSlot+params.BeaconConfig().SlotsPerEpoch; slot++ {
		state.Slot = slot
		i, err := BeaconProposerIndex(state)
		if err != nil {
			state.Slot = original
			return nil, nil, errors.Wrapf(err, "could not check proposer at slot %d", slot)
		}
		proposerIndexToSlot[i] = slot
	}
	state.Slot = original

	numCommitteesPerSlot, err := CommitteeCountAtSlot(state, startSlot)
	if err != nil {
		return nil, nil, err
	}

	validatorIndexToCommittee := make(map[uint64]*CommitteeAssignmentContainer)
	for i := uint64(0); i < params.BeaconConfig().SlotsPerEpoch; i++ {
		for j := uint64(0); j < numCommitteesPerSlot; j++ {
			slot := startSlot + i
			committee, err := BeaconCommittee(state, slot, j)
			if err != nil {
				return nil, nil, err
			}
			cac := &CommitteeAssignmentContainer{
				Committee:      committee,
				CommitteeIndex: j,
				AttesterSlot:   slot,
			}
			for _, vID := range committee {
				validatorIndexToCommittee[vID] = cac
			}
		}
	}
	return validatorIndexToCommittee, proposerIndexToSlot, nil
}

// VerifyBitfieldLength verifies that a bitfield's length matches the given
// committee size.
func VerifyBitfieldLength(bits bitfield.Bitlist, committeeSize uint64) error {
	if bits.Len() != committeeSize {
		return fmt.Errorf("wanted participants bitfield length %d, got %d", committeeSize, bits.Len())
	}
	return nil
}

// VerifyAttestationBitfieldLength verifies an attestation's aggregation
// bitfield is sized to its committee.
func VerifyAttestationBitfieldLength(state *types.BeaconState, att *types.Attestation) error {
	committee, err := BeaconCommittee(state, att.Data.Slot, att.Data.CommitteeIndex)
	if err != nil {
		return errors.Wrap(err, "could not retrieve beacon committee")
	}
	if len(committee) == 0 {
		return errors.New("no committee exists for this attestation")
	}
	return VerifyBitfieldLength(att.AggregationBits, uint64(len(committee)))
}

// ShuffledIndices returns the full shuffled active validator index set for
// epoch, from which committees are sliced.
func ShuffledIndices(state *types.BeaconState, epoch uint64) ([]uint64, error) {
	seed, err := Seed(state, epoch, params.BeaconConfig().DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get seed for epoch %d", epoch)
	}

	indices := make([]uint64, 0, len(state.Validators))
	for i, v := range state.Validators {
		if IsActiveValidator(v, epoch) {
			indices = append(indices, uint64(i))
		}
	}

	validatorCount := uint64(len(indices))
	shuffled := make([]uint64, validatorCount)
	for i := uint64(0); i < validatorCount; i++ {
		permutedIndex, err := ComputeShuffledIndex(i, validatorCount, seed, true)
		if err != nil {
			return nil, errors.Wrapf(err, "could not get shuffled index at %d", i)
		}
		shuffled[i] = indices[permutedIndex]
	}
	return shuffled, nil
}
