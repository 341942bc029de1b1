package sync

import (
	"context"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// onProposerSlashingGossip validates a gossiped proposer slashing against
// current head state and inserts it into the slashings pool.
func (s *Service) onProposerSlashingGossip(ctx context.Context, message interface{}) {
	ps, ok := message.(*types.ProposerSlashing)
	if !ok {
		return
	}
	st, err := s.chain.HeadState(ctx)
	if err != nil {
		log.WithError(err).Debug("Could not fetch head state for proposer slashing")
		return
	}
	if err := s.ops.Slashings.InsertProposerSlashing(st, ps); err != nil {
		log.WithError(err).Debug("Could not insert gossiped proposer slashing")
	}
}
