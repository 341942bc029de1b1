// Package stateutils holds small read-side helpers over BeaconState that
// don't belong to any single operation processor.
package stateutils

import (
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// ValidatorIndexMap builds a lookup map for quickly determining the index of
// a validator by their public key.
func ValidatorIndexMap(validators []*types.Validator) map[[48]byte]int {
	m := make(map[[48]byte]int, len(validators))
	for idx, v := range validators {
		m[v.PublicKey] = idx
	}
	return m
}
