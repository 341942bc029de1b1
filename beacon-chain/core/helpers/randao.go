package helpers

import (
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// RandaoMix returns the randao mix at the given epoch, drawn from the
// fixed-size ring buffer the state keeps.
//
// Spec pseudocode definition:
//  def get_randao_mix(state: BeaconState, epoch: Epoch) -> Bytes32:
//    return state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR]
func RandaoMix(state *types.BeaconState, epoch uint64) [32]byte {
	return state.RandaoMixes[epoch%params.BeaconConfig().EpochsPerHistoricalVector]
}

// Seed derives the per-epoch, per-domain seed used to shuffle committees
// and select proposers.
//
// Spec pseudocode definition:
//  def get_seed(state: BeaconState, epoch: Epoch, domain_type: DomainType) -> Bytes32:
//    mix = get_randao_mix(state, Epoch(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1))
//    return hash(domain_type + uint_to_bytes(epoch) + mix)
func Seed(state *types.BeaconState, epoch uint64, domainType [4]byte) ([32]byte, error) {
	cfg := params.BeaconConfig()
	mixEpoch := epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1
	mix := RandaoMix(state, mixEpoch)

	buf := make([]byte, 0, 4+8+32)
	buf = append(buf, domainType[:]...)
	buf = append(buf, bytesutil.Bytes8(epoch)...)
	buf = append(buf, mix[:]...)
	return hashutil.Hash(buf), nil
}

// MixRandao xors a new source of randomness into a randao mix, the
// incremental update a block's RANDAO reveal applies each slot.
func MixRandao(existing, reveal [32]byte) [32]byte {
	revealHash := hashutil.Hash(reveal[:])
	var mixed [32]byte
	for i := range mixed {
		mixed[i] = existing[i] ^ revealHash[i]
	}
	return mixed
}
