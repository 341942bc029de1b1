// Package types defines the wire and hashing types of the beacon chain:
// slots, epochs, checkpoints, validators, attestations, blocks and the
// beacon state. Each composite type hand-implements HashTreeRoot
// following the same fixed field layout fastssz-generated types take
// (no code generator is available in this tree, so these are
// hand-written). Only Validator also implements MarshalSSZ/UnmarshalSSZ.
package types

import (
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// Slot is the node's logical clock unit, SECONDS_PER_SLOT wall-clock
// seconds wide.
type Slot = uint64

// Epoch is SLOTS_PER_EPOCH consecutive slots.
type Epoch = uint64

// Root is a 32-byte Merkle hash uniquely identifying a block or state.
type Root = [32]byte

// SlotToEpoch converts a slot to the epoch it belongs to.
func SlotToEpoch(slot Slot) Epoch {
	return slot / params.BeaconConfig().SlotsPerEpoch
}

// StartSlot returns the first slot of epoch.
func StartSlot(epoch Epoch) Slot {
	return epoch * params.BeaconConfig().SlotsPerEpoch
}

// Fork tracks the chain's current and previous version tags around a fork
// boundary epoch, used to derive signature domains.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           Epoch
}

// HashTreeRoot computes the SSZ hash tree root of the fork descriptor.
func (f *Fork) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		pack4(f.PreviousVersion),
		pack4(f.CurrentVersion),
		uint64Chunk(f.Epoch),
	}
	return ssz.Merkleize(chunks), nil
}

// Checkpoint identifies the first block of an epoch on a chain.
type Checkpoint struct {
	Epoch Epoch
	Root  Root
}

// HashTreeRoot computes the SSZ hash tree root of the checkpoint.
func (c *Checkpoint) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		uint64Chunk(c.Epoch),
		c.Root,
	}
	return ssz.Merkleize(chunks), nil
}

// Copy returns a value copy of the checkpoint.
func (c *Checkpoint) Copy() *Checkpoint {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func uint64Chunk(v uint64) [32]byte {
	var chunk [32]byte
	copy(chunk[:8], bytesutil.Bytes8(v))
	return chunk
}

func pack4(b [4]byte) [32]byte {
	var chunk [32]byte
	copy(chunk[:4], b[:])
	return chunk
}

func boolChunk(v bool) [32]byte {
	var chunk [32]byte
	if v {
		chunk[0] = 1
	}
	return chunk
}

// HashBytesList merkleizes a variable-length list of fixed-size byte
// values (e.g. historical roots) up to limit elements, mixing in the
// true length per the SSZ list rule.
func HashBytesList(values [][32]byte, limit uint64) Root {
	return ssz.MixInLength(ssz.MerkleizeLimit(values, int(limit)), uint64(len(values)))
}

// HashVector merkleizes a fixed-length vector of fixed-size byte values
// (e.g. the state/block root rings); vectors do not mix in a length.
func HashVector(values [][32]byte) Root {
	return ssz.Merkleize(values)
}

// ForkData binds a fork version to the genesis validators root, the value
// a signature domain is derived from.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot Root
}

// HashTreeRoot computes the SSZ hash tree root of the fork data.
func (f *ForkData) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		pack4(f.CurrentVersion),
		f.GenesisValidatorsRoot,
	}
	return ssz.Merkleize(chunks), nil
}

var _ = hashutil.Hash
