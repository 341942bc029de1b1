package ssz

import (
	"encoding/binary"
)

// OffsetBytes encodes a 4-byte little-endian SSZ offset.
func OffsetBytes(offset uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, offset)
	return b
}

// ReadOffset decodes a 4-byte little-endian SSZ offset.
func ReadOffset(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// ValidateOffsets checks that a sequence of variable-field offsets read
// from a fixed-size header section are strictly increasing and each falls
// within [fixedSectionEnd, totalLen], which is the general shape of the
// "no overlapping/backward offsets" rule. Callers append totalLen as a
// final sentinel offset before calling this.
func ValidateOffsets(offsets []uint32, fixedSectionEnd, totalLen uint32) error {
	prev := fixedSectionEnd
	for i, off := range offsets {
		if off < prev || off > totalLen {
			return ErrOffset
		}
		if i > 0 && off < offsets[i-1] {
			return ErrOffset
		}
		prev = off
	}
	return nil
}

// Uint64SSZ encodes a uint64 as an 8-byte little-endian SSZ basic value.
func Uint64SSZ(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// ReadUint64 decodes an 8-byte little-endian SSZ basic value.
func ReadUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
