package types

import (
	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/ssz"
)

// FarFutureEpoch marks a validator field as "not yet set".
const FarFutureEpoch = Epoch(1<<64 - 1)

// Validator is appended to the registry once and never removed; status
// changes are epoch updates to its mutable fields.
type Validator struct {
	PublicKey                  [48]byte `ssz-size:"48"`
	WithdrawalCredentials      [32]byte `ssz-size:"32"`
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch Epoch
	ActivationEpoch            Epoch
	ExitEpoch                  Epoch
	WithdrawableEpoch          Epoch
}

// IsActive returns whether the validator is active at the given epoch.
func (v *Validator) IsActive(epoch Epoch) bool {
	return v.ActivationEpoch <= epoch && epoch < v.ExitEpoch
}

// IsSlashable returns whether the validator can currently be slashed.
func (v *Validator) IsSlashable(epoch Epoch) bool {
	return !v.Slashed && v.ActivationEpoch <= epoch && epoch < v.WithdrawableEpoch
}

// Copy returns a value copy of the validator.
func (v *Validator) Copy() *Validator {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// HashTreeRoot computes the SSZ hash tree root of the validator record.
func (v *Validator) HashTreeRoot() (Root, error) {
	var pubkeyChunks [64]byte
	copy(pubkeyChunks[:48], v.PublicKey[:])
	chunks := [][32]byte{
		{},
		v.WithdrawalCredentials,
		uint64Chunk(v.EffectiveBalance),
		boolChunk(v.Slashed),
		uint64Chunk(v.ActivationEligibilityEpoch),
		uint64Chunk(v.ActivationEpoch),
		uint64Chunk(v.ExitEpoch),
		uint64Chunk(v.WithdrawableEpoch),
	}
	packed := ssz.Pack(pubkeyChunks[:])
	chunks[0] = ssz.Merkleize(packed)
	return ssz.Merkleize(chunks), nil
}

// MarshalSSZ encodes the validator in SSZ's fixed-size container layout.
func (v *Validator) MarshalSSZ() ([]byte, error) {
	buf := make([]byte, 0, 121)
	buf = append(buf, v.PublicKey[:]...)
	buf = append(buf, v.WithdrawalCredentials[:]...)
	buf = append(buf, bytesutil.Bytes8(v.EffectiveBalance)...)
	buf = append(buf, bytesutil.FromBool(v.Slashed))
	buf = append(buf, bytesutil.Bytes8(uint64(v.ActivationEligibilityEpoch))...)
	buf = append(buf, bytesutil.Bytes8(uint64(v.ActivationEpoch))...)
	buf = append(buf, bytesutil.Bytes8(uint64(v.ExitEpoch))...)
	buf = append(buf, bytesutil.Bytes8(uint64(v.WithdrawableEpoch))...)
	return buf, nil
}

// UnmarshalSSZ decodes a validator from its SSZ fixed-size container.
func (v *Validator) UnmarshalSSZ(buf []byte) error {
	if len(buf) != 121 {
		return ssz.ErrTrailingBytes
	}
	copy(v.PublicKey[:], buf[0:48])
	copy(v.WithdrawalCredentials[:], buf[48:80])
	v.EffectiveBalance = bytesutil.FromBytes8(buf[80:88])
	slashed, ok := bytesutil.ToBool(buf[88])
	if !ok {
		return ssz.ErrTrailingBytes
	}
	v.Slashed = slashed
	v.ActivationEligibilityEpoch = bytesutil.FromBytes8(buf[89:97])
	v.ActivationEpoch = bytesutil.FromBytes8(buf[97:105])
	v.ExitEpoch = bytesutil.FromBytes8(buf[105:113])
	v.WithdrawableEpoch = bytesutil.FromBytes8(buf[113:121])
	return nil
}
