package blockchain

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// logStateTransitionData logs what a block carried once its state
// transition has been applied successfully.
func logStateTransitionData(b *types.BeaconBlock, blockRoot types.Root) {
	entry := log.WithFields(logrus.Fields{
		"slot": b.Slot,
		"root": fmt.Sprintf("%#x", blockRoot),
	})
	if n := len(b.Body.Attestations); n > 0 {
		entry = entry.WithField("attestations", n)
	}
	if n := len(b.Body.Deposits); n > 0 {
		entry = entry.WithField("deposits", n)
	}
	if n := len(b.Body.AttesterSlashings); n > 0 {
		entry = entry.WithField("attesterSlashings", n)
	}
	if n := len(b.Body.ProposerSlashings); n > 0 {
		entry = entry.WithField("proposerSlashings", n)
	}
	if n := len(b.Body.VoluntaryExits); n > 0 {
		entry = entry.WithField("voluntaryExits", n)
	}
	entry.Info("Finished applying state transition")
}
