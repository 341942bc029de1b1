package helpers

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// ComputeShuffledIndex returns the permuted index of a validator at
// position index within a list of indexCount entries, using the
// "swap-or-not" shuffle so that any single index can be resolved without
// materializing the full permutation.
//
// Spec pseudocode definition:
//  def compute_shuffled_index(index: ValidatorIndex, index_count: uint64, seed: Bytes32) -> ValidatorIndex:
//    assert index < index_count
//    for current_round in range(SHUFFLE_ROUND_COUNT):
//        pivot = bytes_to_uint64(hash(seed + int_to_bytes(current_round, length=1))[0:8]) % index_count
//        flip = (pivot + index_count - index) % index_count
//        position = max(index, flip)
//        source = hash(seed + int_to_bytes(current_round, length=1) + int_to_bytes(position // 256, length=4))
//        byte_value = source[(position % 256) // 8]
//        bit = (byte_value >> (position % 8)) % 2
//        index = flip if bit else index
//    return ValidatorIndex(index)
func ComputeShuffledIndex(index, indexCount uint64, seed [32]byte, shuffle bool) (uint64, error) {
	if index >= indexCount {
		return 0, errors.Errorf("index %d out of bounds for count %d", index, indexCount)
	}
	if !shuffle {
		return index, nil
	}

	rounds := params.BeaconConfig().ShuffleRoundCount
	rounds32 := uint8(rounds)
	for round := uint8(0); round < rounds32; round++ {
		pivotSource := append(append([]byte{}, seed[:]...), round)
		pivotHash := hashutil.Hash(pivotSource)
		pivot := bytesutil.FromBytes8(pivotHash[:8]) % indexCount

		flip := (pivot + indexCount - index) % indexCount
		position := index
		if flip > position {
			position = flip
		}

		source := hashutil.Hash(append(append([]byte{}, pivotSource...), bytesutil.Bytes4(position/256)...))
		byteValue := source[(position%256)/8]
		bit := (byteValue >> (position % 8)) % 2
		if bit == 1 {
			index = flip
		}
	}
	return index, nil
}
