package blocks

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/params"
)

// ProcessProposerSlashings verifies and applies every proposer slashing a
// block includes.
func ProcessProposerSlashings(state *types.BeaconState, slashings []*types.ProposerSlashing) error {
	for i, slashing := range slashings {
		if err := verifyProposerSlashing(state, slashing); err != nil {
			return errors.Wrapf(err, "invalid proposer slashing at index %d", i)
		}
		if err := SlashValidator(state, slashing.Header1.Header.ProposerIndex, 0); err != nil {
			return errors.Wrapf(err, "could not slash proposer at index %d", i)
		}
	}
	return nil
}

// verifyProposerSlashing checks the two headers disagree, share a slot and
// proposer, and both carry valid proposer signatures.
//
// Spec pseudocode definition:
//  def process_proposer_slashing(state: BeaconState, proposer_slashing: ProposerSlashing) -> None:
//    header_1 = proposer_slashing.signed_header_1.message
//    header_2 = proposer_slashing.signed_header_2.message
//    assert header_1.slot == header_2.slot
//    assert header_1.proposer_index == header_2.proposer_index
//    assert header_1 != header_2
//    proposer = state.validators[header_1.proposer_index]
//    assert is_slashable_validator(proposer, get_current_epoch(state))
//    for signed_header in (proposer_slashing.signed_header_1, proposer_slashing.signed_header_2):
//        domain = get_domain(state, DOMAIN_BEACON_PROPOSER, compute_epoch_at_slot(signed_header.message.slot))
//        signing_root = compute_signing_root(signed_header.message, domain)
//        assert bls.Verify(proposer.pubkey, signing_root, signed_header.signature)
func verifyProposerSlashing(state *types.BeaconState, slashing *types.ProposerSlashing) error {
	h1 := slashing.Header1.Header
	h2 := slashing.Header2.Header
	if h1.Slot != h2.Slot {
		return errors.New("headers are not from the same slot")
	}
	if h1.ProposerIndex != h2.ProposerIndex {
		return errors.New("headers are not from the same proposer")
	}
	if headersEqual(h1, h2) {
		return errors.New("headers are identical, not a slashable offense")
	}
	if int(h1.ProposerIndex) >= len(state.Validators) {
		return errors.New("proposer index out of bounds")
	}
	proposer := state.Validators[h1.ProposerIndex]
	if !helpers.IsSlashableValidator(proposer, helpers.CurrentEpoch(state)) {
		return errors.New("proposer is not slashable")
	}

	for _, signed := range []*types.SignedBeaconBlockHeader{slashing.Header1, slashing.Header2} {
		domain, err := helpers.Domain(state, params.BeaconConfig().DomainBeaconProposer, helpers.SlotToEpoch(signed.Header.Slot))
		if err != nil {
			return errors.Wrap(err, "could not compute domain")
		}
		root, err := signed.Header.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not hash header")
		}
		sr := signingRoot(root, domain)
		ok, err := bls.VerifySignature(signed.Signature[:], sr, proposer.PublicKey[:])
		if err != nil {
			return errors.Wrap(err, "could not verify proposer signature")
		}
		if !ok {
			return errors.New("invalid proposer slashing signature")
		}
	}
	return nil
}

// VerifyProposerSlashing checks slashing against state without applying
// SlashValidator, so callers can re-validate a pool entry non-destructively.
func VerifyProposerSlashing(state *types.BeaconState, slashing *types.ProposerSlashing) error {
	return verifyProposerSlashing(state, slashing)
}

func headersEqual(a, b *types.BeaconBlockHeader) bool {
	return a.Slot == b.Slot && a.ProposerIndex == b.ProposerIndex &&
		a.ParentRoot == b.ParentRoot && a.StateRoot == b.StateRoot && a.BodyRoot == b.BodyRoot
}

// ProcessAttesterSlashings verifies and applies every attester slashing a
// block includes.
func ProcessAttesterSlashings(state *types.BeaconState, slashings []*types.AttesterSlashing) error {
	for i, slashing := range slashings {
		slashableIndices, err := verifyAttesterSlashing(state, slashing)
		if err != nil {
			return errors.Wrapf(err, "invalid attester slashing at index %d", i)
		}
		slashedAny := false
		for _, idx := range slashableIndices {
			if helpers.IsSlashableValidator(state.Validators[idx], helpers.CurrentEpoch(state)) {
				if err := SlashValidator(state, idx, 0); err != nil {
					return errors.Wrapf(err, "could not slash validator %d", idx)
				}
				slashedAny = true
			}
		}
		if !slashedAny {
			return errors.Errorf("attester slashing at index %d slashed no validators", i)
		}
	}
	return nil
}

// verifyAttesterSlashing checks the two indexed attestations describe a
// Casper FFG double-vote or surround-vote, are individually well-formed,
// and returns the validator indices present in both.
//
// Spec pseudocode definition:
//  def process_attester_slashing(state: BeaconState, attester_slashing: AttesterSlashing) -> None:
//    attestation_1 = attester_slashing.attestation_1
//    attestation_2 = attester_slashing.attestation_2
//    assert is_slashable_attestation_data(attestation_1.data, attestation_2.data)
//    assert is_valid_indexed_attestation(state, attestation_1)
//    assert is_valid_indexed_attestation(state, attestation_2)
func verifyAttesterSlashing(state *types.BeaconState, slashing *types.AttesterSlashing) ([]uint64, error) {
	att1 := slashing.Attestation1
	att2 := slashing.Attestation2
	if !isSlashableAttestationData(att1.Data, att2.Data) {
		return nil, errors.New("attestations do not constitute a slashable offense")
	}
	if err := VerifyIndexedAttestation(state, att1); err != nil {
		return nil, errors.Wrap(err, "attestation 1 is not a valid indexed attestation")
	}
	if err := VerifyIndexedAttestation(state, att2); err != nil {
		return nil, errors.Wrap(err, "attestation 2 is not a valid indexed attestation")
	}

	set1 := make(map[uint64]bool, len(att1.AttestingIndices))
	for _, idx := range att1.AttestingIndices {
		set1[idx] = true
	}
	var shared []uint64
	for _, idx := range att2.AttestingIndices {
		if set1[idx] {
			shared = append(shared, idx)
		}
	}
	return shared, nil
}

// VerifyAttesterSlashing checks slashing against state without applying
// SlashValidator, returning the indices it would slash. Callers use this to
// re-validate a pool entry non-destructively.
func VerifyAttesterSlashing(state *types.BeaconState, slashing *types.AttesterSlashing) ([]uint64, error) {
	return verifyAttesterSlashing(state, slashing)
}

// isSlashableAttestationData reports a double vote (same target epoch,
// different data) or a surround vote (one attestation's source/target
// interval contains the other's).
//
// Spec pseudocode definition:
//  def is_slashable_attestation_data(data_1: AttestationData, data_2: AttestationData) -> bool:
//    return (
//        (data_1 != data_2 and data_1.target.epoch == data_2.target.epoch) or
//        (data_1.source.epoch < data_2.source.epoch and data_2.target.epoch < data_1.target.epoch)
//    )
func isSlashableAttestationData(d1, d2 *types.AttestationData) bool {
	doubleVote := !d1.Equal(d2) && d1.Target.Epoch == d2.Target.Epoch
	surroundVote := d1.Source.Epoch < d2.Source.Epoch && d2.Target.Epoch < d1.Target.Epoch
	return doubleVote || surroundVote
}

// SlashValidator applies the slashing penalty to validator idx: it marks
// the validator slashed, sets its withdrawable epoch, subtracts the
// slashing penalty from its balance, and rewards the slashing's whistle
// blower and the current proposer.
//
// Spec pseudocode definition:
//  def slash_validator(state, slashed_index, whistleblower_index=None) -> None:
//    ...
func SlashValidator(state *types.BeaconState, slashedIdx uint64, whistleblowerIdx uint64) error {
	cfg := params.BeaconConfig()
	epoch := helpers.CurrentEpoch(state)

	v := state.Validators[slashedIdx]
	v.Slashed = true
	withdrawable := epoch + cfg.EpochsPerSlashingsVector
	if withdrawable > v.WithdrawableEpoch {
		v.WithdrawableEpoch = withdrawable
	}

	state.Slashings[epoch%cfg.EpochsPerSlashingsVector] += v.EffectiveBalance
	helpers.DecreaseBalance(state, slashedIdx, v.EffectiveBalance/cfg.MinSlashingPenaltyQuotient)

	proposerIdx, err := helpers.BeaconProposerIndex(state)
	if err != nil {
		return errors.Wrap(err, "could not compute proposer index")
	}
	if whistleblowerIdx == 0 {
		whistleblowerIdx = proposerIdx
	}

	whistleblowerReward := v.EffectiveBalance / cfg.WhistleBlowerRewardQuotient
	proposerReward := whistleblowerReward / cfg.ProposerRewardQuotient
	helpers.IncreaseBalance(state, proposerIdx, proposerReward)
	helpers.IncreaseBalance(state, whistleblowerIdx, whistleblowerReward-proposerReward)
	return nil
}
