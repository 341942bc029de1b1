package sync

import (
	"context"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// onAttesterSlashingGossip validates a gossiped attester slashing against
// current head state and inserts it into the slashings pool.
func (s *Service) onAttesterSlashingGossip(ctx context.Context, message interface{}) {
	as, ok := message.(*types.AttesterSlashing)
	if !ok {
		return
	}
	st, err := s.chain.HeadState(ctx)
	if err != nil {
		log.WithError(err).Debug("Could not fetch head state for attester slashing")
		return
	}
	if err := s.ops.Slashings.InsertAttesterSlashing(st, as); err != nil {
		log.WithError(err).Debug("Could not insert gossiped attester slashing")
	}
}
