package sync

import (
	"context"

	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// onVoluntaryExitGossip forwards a gossiped voluntary exit into the
// operations service's feed, which validates and inserts it into the
// exits pool on its own goroutine.
func (s *Service) onVoluntaryExitGossip(ctx context.Context, message interface{}) {
	exit, ok := message.(*types.SignedVoluntaryExit)
	if !ok {
		return
	}
	s.ops.IncomingExitFeed().Send(exit)
}
