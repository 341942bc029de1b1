// Package precompute restructures the per-epoch reward and penalty
// computation into two linear passes over the validator registry: one
// to build per-validator and per-epoch-balance records from the pending
// attestations, and one to turn those records into reward/penalty
// deltas. This avoids the naive implementation's repeated O(validators)
// scans per attestation category.
package precompute

// Validator stores the per-validator status this epoch's attestations
// establish: which of source/target/head it attested correctly, and
// how promptly. process_rewards_and_penalties reads from these instead
// of re-deriving them from raw attestations.
type Validator struct {
	// IsSlashed is true if the validator has been slashed.
	IsSlashed bool
	// IsWithdrawableCurrentEpoch is true if the validator can withdraw this epoch.
	IsWithdrawableCurrentEpoch bool
	// IsActiveCurrentEpoch is true if the validator was active this epoch.
	IsActiveCurrentEpoch bool
	// IsActivePrevEpoch is true if the validator was active the previous epoch.
	IsActivePrevEpoch bool
	// IsPrevEpochAttester is true if the validator's source vote matched last epoch.
	IsPrevEpochAttester bool
	// IsPrevEpochTargetAttester is true if the validator's target vote matched last epoch.
	IsPrevEpochTargetAttester bool
	// IsPrevEpochHeadAttester is true if the validator's head vote matched last epoch.
	IsPrevEpochHeadAttester bool

	// CurrentEpochEffectiveBalance is this validator's effective balance this epoch.
	CurrentEpochEffectiveBalance uint64
	// InclusionSlot is the slot the validator's earliest matching attestation was included in.
	InclusionSlot uint64
	// InclusionDistance is the number of slots between attestation and inclusion.
	InclusionDistance uint64
	// ProposerIndex proposed the block that included this validator's earliest attestation.
	ProposerIndex uint64
}

// Balance stores the aggregate effective balances process_rewards_and_penalties
// needs: the active set size this epoch and the previous, and how much
// of the previous epoch's active balance attested correctly to each of
// source, target and head.
type Balance struct {
	// CurrentEpoch is the total effective balance of all active validators this epoch.
	CurrentEpoch uint64
	// PrevEpoch is the total effective balance of all active validators last epoch.
	PrevEpoch uint64
	// PrevEpochAttested is the total effective balance of validators who attested last epoch.
	PrevEpochAttested uint64
	// PrevEpochTargetAttested is the total effective balance of validators who matched last epoch's target.
	PrevEpochTargetAttested uint64
	// PrevEpochHeadAttested is the total effective balance of validators who matched last epoch's head.
	PrevEpochHeadAttested uint64
}
