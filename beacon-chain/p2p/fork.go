package p2p

import (
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// forkDigest identifies the fork the node is running so gossip and RPC
// peers can tell at a glance whether they're compatible.
func (s *Service) forkDigest() ([4]byte, error) {
	return computeForkDigest(params.BeaconConfig().GenesisForkVersion, s.genesisValidatorsRoot[:])
}

// ForkDigest exposes the node's current fork digest to other packages
// (the sync service uses it to populate and validate the status RPC).
func (s *Service) ForkDigest() ([4]byte, error) {
	return s.forkDigest()
}

// computeForkDigest derives a 4-byte fork digest from the fork version
// and genesis validators root.
func computeForkDigest(version []byte, genesisValidatorsRoot []byte) ([4]byte, error) {
	data := make([]byte, 0, len(version)+len(genesisValidatorsRoot))
	data = append(data, version...)
	data = append(data, genesisValidatorsRoot...)
	h := hashutil.Hash(data)
	var digest [4]byte
	copy(digest[:], h[:4])
	return digest, nil
}
