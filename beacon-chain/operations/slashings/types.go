package slashings

import (
	"sync"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Pool maintains proposer and attester slashings that have been received but
// not yet included in a block. Entries are deduped and evicted by the
// validator index they would slash, not by the slashing proof itself.
type Pool struct {
	lock sync.RWMutex

	pendingProposerSlashing []*types.ProposerSlashing
	pendingAttesterSlashing []*PendingAttesterSlashing

	// included marks validator indices already slashed by a block this node
	// has imported, so the pool never offers them up a second time.
	included map[uint64]bool
}

// PendingAttesterSlashing pairs a stored attester slashing with one of the
// validator indices it proves slashable, so the pool can binary-search and
// evict per-index rather than per-proof.
type PendingAttesterSlashing struct {
	attesterSlashing *types.AttesterSlashing
	validatorToSlash uint64
}
