package types

import (
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// BeaconBlockHeader is the fixed-size summary of a block that the state
// tracks as latest_block_header.
type BeaconBlockHeader struct {
	Slot          Slot
	ProposerIndex uint64
	ParentRoot    Root
	StateRoot     Root
	BodyRoot      Root
}

// HashTreeRoot computes the SSZ hash tree root of the block header; this
// is also its signing root once wrapped in SignedBeaconBlockHeader.
func (h *BeaconBlockHeader) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		uint64Chunk(h.Slot),
		uint64Chunk(h.ProposerIndex),
		h.ParentRoot,
		h.StateRoot,
		h.BodyRoot,
	}
	return ssz.Merkleize(chunks), nil
}

// Copy returns a value copy of the header.
func (h *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	cp := *h
	return &cp
}

// SignedBeaconBlockHeader wraps a header with a proposer signature, used
// by proposer-slashing evidence.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature [96]byte
}

// BeaconBlockBody carries the operations a proposer attaches to a block.
type BeaconBlockBody struct {
	RandaoReveal      [96]byte
	Eth1Data          *Eth1Data
	Graffiti          [32]byte
	ProposerSlashings []*ProposerSlashing   `ssz-max:"16"`
	AttesterSlashings []*AttesterSlashing   `ssz-max:"2"`
	Attestations      []*Attestation        `ssz-max:"128"`
	Deposits          []*Deposit            `ssz-max:"16"`
	VoluntaryExits    []*SignedVoluntaryExit `ssz-max:"16"`
}

// HashTreeRoot computes the SSZ hash tree root of the block body. Each
// variable-length operation list Merkleizes against its configured
// maximum and mixes in its true length.
func (b *BeaconBlockBody) HashTreeRoot() (Root, error) {
	cfg := params.BeaconConfig()
	eth1Root, err := b.Eth1Data.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}

	proposerSlashingsRoot, err := hashProposerSlashingList(b.ProposerSlashings, cfg.MaxProposerSlashings)
	if err != nil {
		return Root{}, err
	}
	attesterSlashingsRoot, err := hashAttesterSlashingList(b.AttesterSlashings, cfg.MaxAttesterSlashings)
	if err != nil {
		return Root{}, err
	}
	attestationsRoot, err := hashAttestationList(b.Attestations, cfg.MaxAttestations)
	if err != nil {
		return Root{}, err
	}
	depositsRoot, err := hashDepositList(b.Deposits, cfg.MaxDeposits)
	if err != nil {
		return Root{}, err
	}
	exitsRoot, err := hashVoluntaryExitList(b.VoluntaryExits, cfg.MaxVoluntaryExits)
	if err != nil {
		return Root{}, err
	}

	chunks := [][32]byte{
		ssz.Merkleize(ssz.Pack(b.RandaoReveal[:])),
		eth1Root,
		pack32(b.Graffiti),
		proposerSlashingsRoot,
		attesterSlashingsRoot,
		attestationsRoot,
		depositsRoot,
		exitsRoot,
	}
	return ssz.Merkleize(chunks), nil
}

func pack32(b [32]byte) [32]byte { return b }

func hashProposerSlashingList(items []*ProposerSlashing, limit uint64) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		h1, err := item.Header1.Header.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		h2, err := item.Header2.Header.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		chunks[i] = ssz.Merkleize([][32]byte{h1, h2})
	}
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, int(limit)), uint64(len(items))), nil
}

func hashAttesterSlashingList(items []*AttesterSlashing, limit uint64) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		r1, err := item.Attestation1.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		r2, err := item.Attestation2.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		chunks[i] = ssz.Merkleize([][32]byte{r1, r2})
	}
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, int(limit)), uint64(len(items))), nil
}

func hashAttestationList(items []*Attestation, limit uint64) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		r, err := item.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		chunks[i] = r
	}
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, int(limit)), uint64(len(items))), nil
}

func hashDepositList(items []*Deposit, limit uint64) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		dataRoot, err := item.Data.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		proofChunks := make([][32]byte, len(item.Proof))
		copy(proofChunks, item.Proof[:])
		proofRoot := ssz.Merkleize(proofChunks)
		chunks[i] = ssz.Merkleize([][32]byte{proofRoot, dataRoot})
	}
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, int(limit)), uint64(len(items))), nil
}

func hashVoluntaryExitList(items []*SignedVoluntaryExit, limit uint64) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		exitRoot, err := item.Exit.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		sigRoot := ssz.Merkleize(ssz.Pack(item.Signature[:]))
		chunks[i] = ssz.Merkleize([][32]byte{exitRoot, sigRoot})
	}
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, int(limit)), uint64(len(items))), nil
}

// BeaconBlock is the unsigned proposal for a single slot.
type BeaconBlock struct {
	Slot          Slot
	ProposerIndex uint64
	ParentRoot    Root
	StateRoot     Root
	Body          *BeaconBlockBody
}

// HashTreeRoot computes the SSZ hash tree root of the block.
func (b *BeaconBlock) HashTreeRoot() (Root, error) {
	bodyRoot, err := b.Body.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	chunks := [][32]byte{
		uint64Chunk(b.Slot),
		uint64Chunk(b.ProposerIndex),
		b.ParentRoot,
		b.StateRoot,
		bodyRoot,
	}
	return ssz.Merkleize(chunks), nil
}

// Header returns the fixed-size header summarizing this block, with
// BodyRoot computed from the full body).
func (b *BeaconBlock) Header() (*BeaconBlockHeader, error) {
	bodyRoot, err := b.Body.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	return &BeaconBlockHeader{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		StateRoot:     b.StateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

// SignedBeaconBlock wraps a BeaconBlock with the proposer's BLS signature
// over its root.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature [96]byte
}
