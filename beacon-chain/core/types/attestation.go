package types

import (
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
	bitfield "github.com/prysmaticlabs/go-bitfield"
)

// AttestationData is a validator's vote for a (source, target, head)
// triple.
type AttestationData struct {
	Slot            Slot
	CommitteeIndex  uint64
	BeaconBlockRoot Root
	Source          *Checkpoint
	Target          *Checkpoint
}

// Copy returns a deep copy of the attestation data.
func (d *AttestationData) Copy() *AttestationData {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Source = d.Source.Copy()
	cp.Target = d.Target.Copy()
	return &cp
}

// HashTreeRoot computes the SSZ hash tree root of the attestation data.
func (d *AttestationData) HashTreeRoot() (Root, error) {
	sourceRoot, err := d.Source.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	targetRoot, err := d.Target.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	chunks := [][32]byte{
		uint64Chunk(d.Slot),
		uint64Chunk(d.CommitteeIndex),
		d.BeaconBlockRoot,
		sourceRoot,
		targetRoot,
	}
	return ssz.Merkleize(chunks), nil
}

// Equal reports whether two AttestationData describe the same vote, the
// fingerprint used for pool deduplication.
func (d *AttestationData) Equal(o *AttestationData) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Slot == o.Slot &&
		d.CommitteeIndex == o.CommitteeIndex &&
		d.BeaconBlockRoot == o.BeaconBlockRoot &&
		d.Source.Epoch == o.Source.Epoch && d.Source.Root == o.Source.Root &&
		d.Target.Epoch == o.Target.Epoch && d.Target.Root == o.Target.Root
}

// Attestation carries an aggregated vote plus the BLS aggregate signature
// over it.
type Attestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"2048"`
	Data            *AttestationData
	Signature       [96]byte `ssz-size:"96"`
}

// HashTreeRoot computes the SSZ hash tree root of the attestation.
func (a *Attestation) HashTreeRoot() (Root, error) {
	bitsRoot, err := ssz.BitlistHashTreeRoot(a.AggregationBits, params.BeaconConfig().MaxValidatorsPerCommittee)
	if err != nil {
		return Root{}, err
	}
	dataRoot, err := a.Data.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	sigChunks := ssz.Pack(a.Signature[:])
	chunks := [][32]byte{
		bitsRoot,
		dataRoot,
		ssz.Merkleize(sigChunks),
	}
	return ssz.Merkleize(chunks), nil
}

// IndexedAttestation is an Attestation's content with explicit validator
// indices substituted for the aggregation bit-list, used for slashing
// detection.
type IndexedAttestation struct {
	AttestingIndices []uint64 `ssz-max:"2048"`
	Data             *AttestationData
	Signature        [96]byte `ssz-size:"96"`
}

// HashTreeRoot computes the SSZ hash tree root of the indexed attestation.
func (ia *IndexedAttestation) HashTreeRoot() (Root, error) {
	idxBuf := make([]byte, 0, len(ia.AttestingIndices)*8)
	for _, idx := range ia.AttestingIndices {
		idxBuf = append(idxBuf, bytesutil.Bytes8(idx)...)
	}
	idxRoot := ssz.MixInLength(ssz.MerkleizeLimit(ssz.Pack(idxBuf), 2048), uint64(len(ia.AttestingIndices)))
	dataRoot, err := ia.Data.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	sigChunks := ssz.Pack(ia.Signature[:])
	chunks := [][32]byte{
		idxRoot,
		dataRoot,
		ssz.Merkleize(sigChunks),
	}
	return ssz.Merkleize(chunks), nil
}

// PendingAttestation is the state-internal record of an included
// attestation before rewards are computed.
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist `ssz-max:"2048"`
	Data            *AttestationData
	InclusionDelay  uint64
	ProposerIndex   uint64
}

// Copy returns a deep copy of the pending attestation.
func (p *PendingAttestation) Copy() *PendingAttestation {
	if p == nil {
		return nil
	}
	cp := *p
	cp.AggregationBits = append(bitfield.Bitlist(nil), p.AggregationBits...)
	cp.Data = p.Data.Copy()
	return &cp
}

// HashTreeRoot computes the SSZ hash tree root of the pending attestation.
func (p *PendingAttestation) HashTreeRoot() (Root, error) {
	bitsRoot, err := ssz.BitlistHashTreeRoot(p.AggregationBits, params.BeaconConfig().MaxValidatorsPerCommittee)
	if err != nil {
		return Root{}, err
	}
	dataRoot, err := p.Data.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	chunks := [][32]byte{
		bitsRoot,
		dataRoot,
		uint64Chunk(p.InclusionDelay),
		uint64Chunk(p.ProposerIndex),
	}
	return ssz.Merkleize(chunks), nil
}
