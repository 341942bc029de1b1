// Package types holds the plain Go structs exchanged over the wire by
// the status/goodbye/metadata/blocks-by-range/blocks-by-root RPC
// methods and gossiped as peer metadata. They carry no generated SSZ or
// protobuf codec; beacon-chain/p2p/encoder serializes them directly
// with encoding/gob.
package types

import (
	"errors"

	"github.com/prysmaticlabs/go-bitfield"

	coretypes "github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// ErrWrongForkDigestVersion is returned by status validation when a
// peer's advertised fork digest doesn't match the local node's, marking
// the peer as permanently incompatible rather than transiently bad.
var ErrWrongForkDigestVersion = errors.New("wrong fork digest version")

// Status is exchanged by the status RPC method so two peers can decide
// whether their views of the chain are compatible enough to sync.
type Status struct {
	ForkDigest     [4]byte
	FinalizedRoot  coretypes.Root
	FinalizedEpoch uint64
	HeadRoot       coretypes.Root
	HeadSlot       uint64
}

// MetaData is exchanged by the metadata RPC method and mirrors what a
// peer advertises about itself in its ENR: a sequence number and the
// attestation subnets it has committed to track.
type MetaData struct {
	SeqNumber uint64
	Attnets   bitfield.Bitvector64
}

// Copy returns a field-wise copy.
func (m *MetaData) Copy() *MetaData {
	if m == nil {
		return nil
	}
	attnets := make(bitfield.Bitvector64, len(m.Attnets))
	copy(attnets, m.Attnets)
	return &MetaData{SeqNumber: m.SeqNumber, Attnets: attnets}
}

// BeaconBlocksByRangeRequest requests a contiguous range of blocks by
// slot from a peer.
type BeaconBlocksByRangeRequest struct {
	StartSlot uint64
	Count     uint64
	Step      uint64
}

// BeaconBlocksByRootRequest requests blocks by their exact roots.
type BeaconBlocksByRootRequest []coretypes.Root
