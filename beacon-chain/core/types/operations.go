package types

import (
	"github.com/driftchain/beacon-node/shared/ssz"
)

// Eth1Data tracks the deposit contract's view as voted on by proposers.
type Eth1Data struct {
	DepositRoot  Root
	DepositCount uint64
	BlockHash    Root
}

// HashTreeRoot computes the SSZ hash tree root of the eth1 data vote.
func (e *Eth1Data) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		e.DepositRoot,
		uint64Chunk(e.DepositCount),
		e.BlockHash,
	}
	return ssz.Merkleize(chunks), nil
}

// Copy returns a value copy of the eth1 data vote.
func (e *Eth1Data) Copy() *Eth1Data {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// DepositData is the content committed to by a deposit's Merkle proof.
type DepositData struct {
	PublicKey             [48]byte
	WithdrawalCredentials [32]byte
	Amount                uint64
	Signature             [96]byte
}

// HashTreeRoot computes the SSZ hash tree root of the deposit data.
func (d *DepositData) HashTreeRoot() (Root, error) {
	var pubkeyBuf [64]byte
	copy(pubkeyBuf[:48], d.PublicKey[:])
	chunks := [][32]byte{
		ssz.Merkleize(ssz.Pack(pubkeyBuf[:])),
		d.WithdrawalCredentials,
		uint64Chunk(d.Amount),
		ssz.Merkleize(ssz.Pack(d.Signature[:])),
	}
	return ssz.Merkleize(chunks), nil
}

// Deposit carries a validator deposit plus its Merkle proof against the
// eth1 deposit root.
type Deposit struct {
	Proof [33]Root
	Data  *DepositData
}

// VoluntaryExit signals a validator's intent to leave the registry.
type VoluntaryExit struct {
	Epoch          Epoch
	ValidatorIndex uint64
}

// HashTreeRoot computes the SSZ hash tree root of the voluntary exit.
func (v *VoluntaryExit) HashTreeRoot() (Root, error) {
	chunks := [][32]byte{
		uint64Chunk(v.Epoch),
		uint64Chunk(v.ValidatorIndex),
	}
	return ssz.Merkleize(chunks), nil
}

// SignedVoluntaryExit wraps a VoluntaryExit with its BLS signature.
type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit
	Signature [96]byte
}

// ProposerSlashing proves a proposer signed two distinct headers for the
// same slot.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// AttesterSlashing proves two attestations from overlapping validator
// sets violate a Casper FFG slashing condition.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}
