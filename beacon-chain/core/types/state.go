package types

import (
	"github.com/driftchain/beacon-node/shared/params"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// BeaconState is the full consensus state the chain agrees on: the
// validator registry, balances, randomness, and the bookkeeping needed
// to finalize checkpoints.
type BeaconState struct {
	GenesisTime           uint64
	GenesisValidatorsRoot Root
	Slot                  Slot
	Fork                  *Fork

	LatestBlockHeader *BeaconBlockHeader
	BlockRoots        [][32]byte // fixed-size vector, len == SlotsPerHistoricalRoot
	StateRoots        [][32]byte // fixed-size vector, len == SlotsPerHistoricalRoot
	HistoricalRoots    [][32]byte

	Eth1Data      *Eth1Data
	Eth1DataVotes []*Eth1Data
	Eth1DepositIndex uint64

	Validators []*Validator
	Balances   []uint64

	RandaoMixes [][32]byte // fixed-size vector, len == EpochsPerHistoricalVector

	Slashings []uint64 // fixed-size vector, len == EpochsPerSlashingsVector

	PreviousEpochAttestations []*PendingAttestation
	CurrentEpochAttestations  []*PendingAttestation

	JustificationBits           [1]byte
	PreviousJustifiedCheckpoint *Checkpoint
	CurrentJustifiedCheckpoint  *Checkpoint
	FinalizedCheckpoint         *Checkpoint
}

// Copy returns a deep copy of the state, so a block's post-state can be
// derived from a parent's without mutating the parent's own copy.
func (s *BeaconState) Copy() *BeaconState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Fork = s.Fork.Copy()
	cp.LatestBlockHeader = s.LatestBlockHeader.Copy()
	cp.BlockRoots = append([][32]byte(nil), s.BlockRoots...)
	cp.StateRoots = append([][32]byte(nil), s.StateRoots...)
	cp.HistoricalRoots = append([][32]byte(nil), s.HistoricalRoots...)
	cp.Eth1Data = s.Eth1Data.Copy()
	cp.Eth1DataVotes = make([]*Eth1Data, len(s.Eth1DataVotes))
	for i, d := range s.Eth1DataVotes {
		cp.Eth1DataVotes[i] = d.Copy()
	}
	cp.Validators = make([]*Validator, len(s.Validators))
	for i, v := range s.Validators {
		cp.Validators[i] = v.Copy()
	}
	cp.Balances = append([]uint64(nil), s.Balances...)
	cp.RandaoMixes = append([][32]byte(nil), s.RandaoMixes...)
	cp.Slashings = append([]uint64(nil), s.Slashings...)
	cp.PreviousEpochAttestations = make([]*PendingAttestation, len(s.PreviousEpochAttestations))
	for i, a := range s.PreviousEpochAttestations {
		cp.PreviousEpochAttestations[i] = a.Copy()
	}
	cp.CurrentEpochAttestations = make([]*PendingAttestation, len(s.CurrentEpochAttestations))
	for i, a := range s.CurrentEpochAttestations {
		cp.CurrentEpochAttestations[i] = a.Copy()
	}
	cp.PreviousJustifiedCheckpoint = s.PreviousJustifiedCheckpoint.Copy()
	cp.CurrentJustifiedCheckpoint = s.CurrentJustifiedCheckpoint.Copy()
	cp.FinalizedCheckpoint = s.FinalizedCheckpoint.Copy()
	return &cp
}

// HashTreeRoot computes the SSZ hash tree root of the entire state, the
// value committed to by every block's state_root.
func (s *BeaconState) HashTreeRoot() (Root, error) {
	cfg := params.BeaconConfig()

	forkRoot, err := s.Fork.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	headerRoot, err := s.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	eth1DataRoot, err := s.Eth1Data.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	eth1VotesRoot, err := hashEth1DataVotesList(s.Eth1DataVotes)
	if err != nil {
		return Root{}, err
	}
	validatorsRoot, err := hashValidatorList(s.Validators, cfg.ValidatorRegistryLimit)
	if err != nil {
		return Root{}, err
	}
	balancesRoot := hashBalanceList(s.Balances, cfg.ValidatorRegistryLimit)
	prevAttRoot, err := hashPendingAttestationList(s.PreviousEpochAttestations, cfg.MaxAttestations*cfg.SlotsPerEpoch)
	if err != nil {
		return Root{}, err
	}
	currAttRoot, err := hashPendingAttestationList(s.CurrentEpochAttestations, cfg.MaxAttestations*cfg.SlotsPerEpoch)
	if err != nil {
		return Root{}, err
	}
	prevJustRoot, err := s.PreviousJustifiedCheckpoint.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	currJustRoot, err := s.CurrentJustifiedCheckpoint.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}
	finalRoot, err := s.FinalizedCheckpoint.HashTreeRoot()
	if err != nil {
		return Root{}, err
	}

	chunks := [][32]byte{
		uint64Chunk(s.GenesisTime),
		s.GenesisValidatorsRoot,
		uint64Chunk(s.Slot),
		forkRoot,
		headerRoot,
		HashVector(s.BlockRoots),
		HashVector(s.StateRoots),
		HashBytesList(s.HistoricalRoots, cfg.HistoricalRootsLimit),
		eth1DataRoot,
		eth1VotesRoot,
		uint64Chunk(s.Eth1DepositIndex),
		validatorsRoot,
		balancesRoot,
		HashVector(s.RandaoMixes),
		hashSlashingsVector(s.Slashings),
		prevAttRoot,
		currAttRoot,
		justificationBitsChunk(s.JustificationBits),
		prevJustRoot,
		currJustRoot,
		finalRoot,
	}
	return ssz.Merkleize(chunks), nil
}

func justificationBitsChunk(bits [1]byte) [32]byte {
	var chunk [32]byte
	chunk[0] = bits[0]
	return chunk
}

func hashEth1DataVotesList(items []*Eth1Data) (Root, error) {
	chunks := make([][32]byte, len(items))
	for i, item := range items {
		r, err := item.HashTreeRoot()
		if err != nil {
			return Root{}, err
		}
		chunks[i] = r
	}
	limit := int(params.BeaconConfig().SlotsPerEth1VotingPeriod)
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, limit), uint64(len(items))), nil
}

func hashValidatorList(items []*Validator, limit uint64) (Root, error) {
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

// ValidatorsRoot computes the hash tree root of a raw validator list
// against the registry's configured limit — the same value that feeds
// both BeaconState.HashTreeRoot and the genesis_validators_root field
// set once at chainstart.
func ValidatorsRoot(validators []*Validator) (Root, error) {
	return hashValidatorList(validators, params.BeaconConfig().ValidatorRegistryLimit)
}

func hashBalanceList(balances []uint64, limit uint64) Root {
	buf := make([]byte, 0, len(balances)*8)
	for _, b := range balances {
		buf = append(buf, uint64ToBytes(b)...)
	}
	chunks := ssz.Pack(buf)
	limitChunks := int((limit*8 + 31) / 32)
	return ssz.MixInLength(ssz.MerkleizeLimit(chunks, limitChunks), uint64(len(balances)))
}

func hashSlashingsVector(slashings []uint64) [32]byte {
	buf := make([]byte, 0, len(slashings)*8)
	for _, s := range slashings {
		buf = append(buf, uint64ToBytes(s)...)
	}
	return ssz.Merkleize(ssz.Pack(buf))
}

func hashPendingAttestationList(items []*PendingAttestation, limit uint64) (Root, error) {
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

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
	return b
}
