package blockchain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

var (
	processedBlockSlot = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_processed_block_slot",
			Help: "Slot number of the last block the chain service processed.",
		},
	)
	headSlotGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_head_slot",
			Help: "Slot number of the current head of the chain.",
		},
	)
	competingBlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beacon_competing_blocks_total",
			Help: "Count of processed blocks whose root diverged from the existing head at the time.",
		},
	)
	currentEpochParticipation = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "beacon_current_epoch_active_validators",
			Help: "Number of active validators at the epoch boundary last crossed.",
		},
	)
)

// reportEpochMetrics records gauges that only make sense to sample once
// per epoch, at the boundary slot.
func reportEpochMetrics(postState *types.BeaconState) {
	epoch := helpers.CurrentEpoch(postState)
	active := 0
	for _, v := range postState.Validators {
		if helpers.IsActiveValidator(v, epoch) {
			active++
		}
	}
	currentEpochParticipation.Set(float64(active))
}
