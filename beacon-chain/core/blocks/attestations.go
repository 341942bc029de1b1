package blocks

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/params"
)

// ProcessAttestations verifies and records every attestation a block
// includes, appending a PendingAttestation to the appropriate epoch's
// accumulator.
func ProcessAttestations(state *types.BeaconState, atts []*types.Attestation) error {
	for i, att := range atts {
		if err := ProcessAttestation(state, att); err != nil {
			return errors.Wrapf(err, "invalid attestation at index %d", i)
		}
	}
	return nil
}

// ProcessAttestation verifies a single attestation's inclusion-delay,
// target/source checkpoint consistency, and signature, then folds it into
// the state's pending-attestation accumulators.
//
// Spec pseudocode definition:
//  def process_attestation(state: BeaconState, attestation: Attestation) -> None:
//    data = attestation.data
//    assert data.target.epoch in (get_previous_epoch(state), get_current_epoch(state))
//    assert data.target.epoch == compute_epoch_at_slot(data.slot)
//    assert data.slot + MIN_ATTESTATION_INCLUSION_DELAY <= state.slot <= data.slot + SLOTS_PER_EPOCH
//    assert data.index < get_committee_count_at_slot(state, data.slot)
//    committee = get_beacon_committee(state, data.slot, data.index)
//    assert len(attestation.aggregation_bits) == len(committee)
//    pending_attestation = PendingAttestation(...)
//    ... append to current/previous epoch attestations
//    assert is_valid_indexed_attestation(state, get_indexed_attestation(state, attestation))
func ProcessAttestation(state *types.BeaconState, att *types.Attestation) error {
	cfg := params.BeaconConfig()
	data := att.Data
	currentEpoch := helpers.CurrentEpoch(state)
	previousEpoch := helpers.PrevEpoch(state)

	if data.Target.Epoch != currentEpoch && data.Target.Epoch != previousEpoch {
		return errors.New("attestation target epoch is neither the current nor previous epoch")
	}
	if data.Target.Epoch != helpers.SlotToEpoch(data.Slot) {
		return errors.New("attestation target epoch does not match attestation slot's epoch")
	}
	if !(data.Slot+cfg.MinAttestationInclusionDelay <= state.Slot && state.Slot <= data.Slot+cfg.SlotsPerEpoch) {
		return errors.New("attestation slot is outside the inclusion window")
	}
	committeeCount, err := helpers.CommitteeCountAtSlot(state, data.Slot)
	if err != nil {
		return errors.Wrap(err, "could not get committee count at slot")
	}
	if data.CommitteeIndex >= committeeCount {
		return errors.New("attestation committee index out of bounds")
	}

	committee, err := helpers.BeaconCommittee(state, data.Slot, data.CommitteeIndex)
	if err != nil {
		return errors.Wrap(err, "could not get beacon committee")
	}
	if att.AggregationBits.Len() != uint64(len(committee)) {
		return errors.New("aggregation bits length does not match committee size")
	}

	pending := &types.PendingAttestation{
		AggregationBits: att.AggregationBits,
		Data:            data,
		InclusionDelay:  state.Slot - data.Slot,
	}
	proposerIdx, err := helpers.BeaconProposerIndex(state)
	if err != nil {
		return errors.Wrap(err, "could not compute proposer index")
	}
	pending.ProposerIndex = proposerIdx

	if data.Target.Epoch == currentEpoch {
		if !checkpointEqual(data.Source, state.CurrentJustifiedCheckpoint) {
			return errors.New("source checkpoint does not match current justified checkpoint")
		}
		state.CurrentEpochAttestations = append(state.CurrentEpochAttestations, pending)
	} else {
		if !checkpointEqual(data.Source, state.PreviousJustifiedCheckpoint) {
			return errors.New("source checkpoint does not match previous justified checkpoint")
		}
		state.PreviousEpochAttestations = append(state.PreviousEpochAttestations, pending)
	}

	indexed, err := IndexedAttestation(state, att)
	if err != nil {
		return errors.Wrap(err, "could not convert to indexed attestation")
	}
	return VerifyIndexedAttestation(state, indexed)
}

func checkpointEqual(a, b *types.Checkpoint) bool {
	return a.Epoch == b.Epoch && a.Root == b.Root
}

// IndexedAttestation expands an attestation's aggregation bit-list into
// the explicit sorted validator indices it represents.
//
// Spec pseudocode definition:
//  def get_indexed_attestation(state: BeaconState, attestation: Attestation) -> IndexedAttestation:
//    attesting_indices = get_attesting_indices(state, attestation.data, attestation.aggregation_bits)
//    return IndexedAttestation(attesting_indices=sorted(attesting_indices), data=attestation.data, signature=attestation.signature)
func IndexedAttestation(state *types.BeaconState, att *types.Attestation) (*types.IndexedAttestation, error) {
	committee, err := helpers.BeaconCommittee(state, att.Data.Slot, att.Data.CommitteeIndex)
	if err != nil {
		return nil, errors.Wrap(err, "could not get beacon committee")
	}
	attestingIndices, err := helpers.AttestingIndices(att.AggregationBits, committee)
	if err != nil {
		return nil, errors.Wrap(err, "could not get attesting indices")
	}
	sortUint64s(attestingIndices)
	return &types.IndexedAttestation{
		AttestingIndices: attestingIndices,
		Data:             att.Data,
		Signature:        att.Signature,
	}, nil
}

func sortUint64s(s []uint64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// VerifyIndexedAttestation checks an indexed attestation is non-empty,
// strictly sorted and deduplicated, and carries a valid aggregate
// signature over its attesting validators' public keys.
//
// Spec pseudocode definition:
//  def is_valid_indexed_attestation(state: BeaconState, indexed_attestation: IndexedAttestation) -> bool:
//    indices = indexed_attestation.attesting_indices
//    if len(indices) == 0 or not indices == sorted(set(indices)): return False
//    pubkeys = [state.validators[i].pubkey for i in indices]
//    domain = get_domain(state, DOMAIN_BEACON_ATTESTER, indexed_attestation.data.target.epoch)
//    signing_root = compute_signing_root(indexed_attestation.data, domain)
//    return bls.FastAggregateVerify(pubkeys, signing_root, indexed_attestation.signature)
func VerifyIndexedAttestation(state *types.BeaconState, indexed *types.IndexedAttestation) error {
	indices := indexed.AttestingIndices
	if len(indices) == 0 {
		return errors.New("indexed attestation has no attesting indices")
	}
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return errors.New("indexed attestation indices are not strictly sorted")
		}
	}

	pubkeys := make([][]byte, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(state.Validators) {
			return errors.New("attesting index out of bounds")
		}
		pk := state.Validators[idx].PublicKey
		pubkeys[i] = pk[:]
	}

	domain, err := helpers.Domain(state, params.BeaconConfig().DomainBeaconAttester, indexed.Data.Target.Epoch)
	if err != nil {
		return errors.Wrap(err, "could not compute domain")
	}
	dataRoot, err := indexed.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash attestation data")
	}
	sr := signingRoot(dataRoot, domain)

	sig, err := bls.SignatureFromBytes(indexed.Signature[:])
	if err != nil {
		return errors.Wrap(err, "could not deserialize signature")
	}
	aggPubkey, err := bls.AggregatePublicKeys(pubkeys)
	if err != nil {
		return errors.Wrap(err, "could not aggregate public keys")
	}
	if !sig.Verify(aggPubkey, sr[:]) {
		return errors.New("invalid aggregate attestation signature")
	}
	return nil
}
