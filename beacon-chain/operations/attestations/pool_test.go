package attestations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/beacon-chain/operations/attestations"
	bitfield "github.com/prysmaticlabs/go-bitfield"
)

func testAttestation(bits bitfield.Bitlist) *types.Attestation {
	// 0xc0 followed by zeros is the compressed point at infinity, a valid
	// signature encoding that Save can deserialize and aggregate.
	var sig [96]byte
	sig[0] = 0xc0
	return &types.Attestation{
		Signature:       sig,
		AggregationBits: bits,
		Data: &types.AttestationData{
			Slot:            5,
			BeaconBlockRoot: types.Root{1},
			Source:          &types.Checkpoint{},
			Target:          &types.Checkpoint{Epoch: 1},
		},
	}
}

func TestPool_SaveInsertsNewFingerprint(t *testing.T) {
	pool := attestations.NewPool()
	bits := bitfield.NewBitlist(4)
	bits.SetBitAt(0, true)

	require.NoError(t, pool.Save(testAttestation(bits)))
	assert.Equal(t, 1, pool.Count())
}

func TestPool_SaveDropsSubsetAggregate(t *testing.T) {
	pool := attestations.NewPool()
	full := bitfield.NewBitlist(4)
	full.SetBitAt(0, true)
	full.SetBitAt(1, true)
	require.NoError(t, pool.Save(testAttestation(full)))

	subset := bitfield.NewBitlist(4)
	subset.SetBitAt(0, true)
	require.NoError(t, pool.Save(testAttestation(subset)))

	aggregates := pool.Aggregates()
	require.Len(t, aggregates, 1)
	assert.Equal(t, uint64(2), aggregates[0].AggregationBits.Count())
}

func TestPool_SaveMergesNewBits(t *testing.T) {
	pool := attestations.NewPool()
	first := bitfield.NewBitlist(4)
	first.SetBitAt(0, true)
	require.NoError(t, pool.Save(testAttestation(first)))

	second := bitfield.NewBitlist(4)
	second.SetBitAt(1, true)
	require.NoError(t, pool.Save(testAttestation(second)))

	aggregates := pool.Aggregates()
	require.Len(t, aggregates, 1)
	assert.Equal(t, uint64(2), aggregates[0].AggregationBits.Count())
}

func TestPool_AggregatesForBlock_FiltersByInclusionWindow(t *testing.T) {
	pool := attestations.NewPool()
	bits := bitfield.NewBitlist(4)
	bits.SetBitAt(0, true)
	require.NoError(t, pool.Save(testAttestation(bits)))

	// Slot 5 + MIN_ATTESTATION_INCLUSION_DELAY(1) = 6, so slot 5 is too early.
	assert.Empty(t, pool.AggregatesForBlock(5))
	assert.Len(t, pool.AggregatesForBlock(6), 1)
}
