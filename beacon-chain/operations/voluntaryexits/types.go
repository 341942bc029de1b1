package voluntaryexits

import (
	"sync"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Pool maintains voluntary exits that have been received but not yet
// included in a block, deduped by the validator index requesting the exit.
type Pool struct {
	lock sync.RWMutex

	pending []*types.SignedVoluntaryExit

	// included marks validator indices whose exit has already been
	// included in a block this node has imported.
	included map[uint64]bool
}
