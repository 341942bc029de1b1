package forkchoice

import "github.com/driftchain/beacon-node/beacon-chain/core/types"

// OnAttestation records each attesting validator's vote as its latest
// message if the attestation's target epoch is newer than what the store
// already has on file; older or duplicate votes are silently ignored.
//
// Spec pseudocode definition:
//  for each participating validator, if the attestation's target_epoch is
//  strictly greater than the stored latest-message epoch for that
//  validator, overwrite.
func (s *Store) OnAttestation(indexed *types.IndexedAttestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blocks[indexed.Data.BeaconBlockRoot]; !ok {
		return ErrUnknownBlock
	}

	targetEpoch := indexed.Data.Target.Epoch
	votedRoot := indexed.Data.BeaconBlockRoot
	for _, idx := range indexed.AttestingIndices {
		msg, ok := s.votes[idx]
		if ok && targetEpoch <= msg.epoch {
			continue
		}
		s.votes[idx] = &latestMessage{epoch: targetEpoch, root: votedRoot}
	}
	return nil
}
