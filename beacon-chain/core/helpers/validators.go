package helpers

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// IsActiveValidator returns whether the validator is active at epoch.
//
// Spec pseudocode definition:
//  def is_active_validator(validator: Validator, epoch: Epoch) -> bool:
//    return validator.activation_epoch <= epoch < validator.exit_epoch
func IsActiveValidator(validator *types.Validator, epoch uint64) bool {
	return validator.IsActive(epoch)
}

// IsSlashableValidator returns whether the validator can currently be
// slashed at epoch.
//
// Spec pseudocode definition:
//  def is_slashable_validator(validator: Validator, epoch: Epoch) -> bool:
//    return (not validator.slashed) and (validator.activation_epoch <= epoch < validator.withdrawable_epoch)
func IsSlashableValidator(validator *types.Validator, epoch uint64) bool {
	return validator.IsSlashable(epoch)
}

// ActiveValidatorIndices filters the registry down to validators active at
// epoch and returns their indices.
//
// Spec pseudocode definition:
//  def get_active_validator_indices(state: BeaconState, epoch: Epoch) -> Sequence[ValidatorIndex]:
//    return [ValidatorIndex(i) for i, v in enumerate(state.validators) if is_active_validator(v, epoch)]
func ActiveValidatorIndices(state *types.BeaconState, epoch uint64) ([]uint64, error) {
	indices := make([]uint64, 0, len(state.Validators))
	for i, v := range state.Validators {
		if IsActiveValidator(v, epoch) {
			indices = append(indices, uint64(i))
		}
	}
	return indices, nil
}

// ActiveValidatorCount returns the number of validators active at epoch.
func ActiveValidatorCount(state *types.BeaconState, epoch uint64) (uint64, error) {
	count := uint64(0)
	for _, v := range state.Validators {
		if IsActiveValidator(v, epoch) {
			count++
		}
	}
	return count, nil
}

// DelayedActivationExitEpoch returns the epoch during which a validator
// activation or exit initiated in epoch takes effect.
//
// Spec pseudocode definition:
//  def compute_activation_exit_epoch(epoch: Epoch) -> Epoch:
//    return Epoch(epoch + 1 + MAX_SEED_LOOKAHEAD)
func DelayedActivationExitEpoch(epoch uint64) uint64 {
	return epoch + 1 + params.BeaconConfig().MaxSeedLookahead
}

// ValidatorChurnLimit returns the number of validators allowed to enter or
// leave the active set in a single epoch.
//
// Spec pseudocode definition:
//  def get_validator_churn_limit(state: BeaconState) -> uint64:
//    active_validator_indices = get_active_validator_indices(state, get_current_epoch(state))
//    return max(MIN_PER_EPOCH_CHURN_LIMIT, uint64(len(active_validator_indices)) // CHURN_LIMIT_QUOTIENT)
func ValidatorChurnLimit(activeValidatorCount uint64) uint64 {
	cfg := params.BeaconConfig()
	limit := activeValidatorCount / cfg.ChurnLimitQuotient
	if limit < cfg.MinPerEpochChurnLimit {
		return cfg.MinPerEpochChurnLimit
	}
	return limit
}

// BeaconProposerIndex returns the proposer index for the state's current slot.
//
// Spec pseudocode definition:
//  def get_beacon_proposer_index(state: BeaconState) -> ValidatorIndex:
//    epoch = get_current_epoch(state)
//    seed = hash(get_seed(state, epoch, DOMAIN_BEACON_PROPOSER) + uint_to_bytes(state.slot))
//    indices = get_active_validator_indices(state, epoch)
//    return compute_proposer_index(state, indices, seed)
func BeaconProposerIndex(state *types.BeaconState) (uint64, error) {
	epoch := CurrentEpoch(state)

	seed, err := Seed(state, epoch, params.BeaconConfig().DomainBeaconProposer)
	if err != nil {
		return 0, errors.Wrap(err, "could not generate seed")
	}
	seedWithSlot := append(append([]byte{}, seed[:]...), bytesutil.Bytes8(state.Slot)...)
	seedWithSlotHash := hashutil.Hash(seedWithSlot)

	indices, err := ActiveValidatorIndices(state, epoch)
	if err != nil {
		return 0, errors.Wrap(err, "could not get active indices")
	}
	return ComputeProposerIndex(state, indices, seedWithSlotHash)
}

// ComputeProposerIndex samples a proposer from indices weighted by
// effective balance.
//
// Spec pseudocode definition:
//  def compute_proposer_index(state: BeaconState, indices: Sequence[ValidatorIndex], seed: Bytes32) -> ValidatorIndex:
//    assert len(indices) > 0
//    MAX_RANDOM_BYTE = 2**8 - 1
//    i = uint64(0)
//    total = uint64(len(indices))
//    while True:
//        candidate_index = indices[compute_shuffled_index(i % total, total, seed)]
//        random_byte = hash(seed + uint_to_bytes(uint64(i // 32)))[i % 32]
//        effective_balance = state.validators[candidate_index].effective_balance
//        if effective_balance * MAX_RANDOM_BYTE >= MAX_EFFECTIVE_BALANCE * random_byte:
//            return candidate_index
//        i += 1
func ComputeProposerIndex(state *types.BeaconState, indices []uint64, seed [32]byte) (uint64, error) {
	total := uint64(len(indices))
	if total == 0 {
		return 0, errors.New("empty active validator set")
	}
	const maxRandomByte = uint64(1<<8 - 1)
	maxEffectiveBalance := params.BeaconConfig().MaxEffectiveBalance

	for i := uint64(0); ; i++ {
		shuffledIndex, err := ComputeShuffledIndex(i%total, total, seed, true)
		if err != nil {
			return 0, err
		}
		candidateIndex := indices[shuffledIndex]

		b := append(append([]byte{}, seed[:]...), bytesutil.Bytes8(i/32)...)
		randomByte := uint64(hashutil.Hash(b)[i%32])
		effectiveBalance := state.Validators[candidateIndex].EffectiveBalance
		if effectiveBalance*maxRandomByte >= maxEffectiveBalance*randomByte {
			return candidateIndex, nil
		}
	}
}

// Domain returns the signature domain for message_epoch (or the state's
// current epoch if zero), combining the domain type with the active fork
// version and genesis validators root.
func Domain(state *types.BeaconState, domainType [4]byte, messageEpoch uint64) ([32]byte, error) {
	epoch := messageEpoch
	if epoch == 0 {
		epoch = CurrentEpoch(state)
	}
	forkVersion := state.Fork.CurrentVersion
	if epoch < state.Fork.Epoch {
		forkVersion = state.Fork.PreviousVersion
	}
	return ComputeDomain(domainType, forkVersion, state.GenesisValidatorsRoot)
}

// ComputeDomain derives a 32-byte signature domain from a domain type, a
// fork version and the genesis validators root.
func ComputeDomain(domainType [4]byte, forkVersion [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	fd := &types.ForkData{CurrentVersion: forkVersion, GenesisValidatorsRoot: genesisValidatorsRoot}
	forkDataRoot, err := fd.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	var domain [32]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}
