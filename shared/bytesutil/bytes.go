// Package bytesutil defines byte-level helpers used by the SSZ codec,
// signing-root computation, and bit-list accounting.
package bytesutil

import (
	"encoding/binary"
)

// ToBytes returns integer x as a little-endian byte slice of the given
// length, the SSZ fixed-width integer encoding.
func ToBytes(x uint64, length int) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, x)
	if length >= 8 {
		out := make([]byte, length)
		copy(out, buf)
		return out
	}
	return buf[:length]
}

// ToBytes32 copies b into a fixed [32]byte, truncating or zero-padding as
// needed.
func ToBytes32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

// Bytes1 returns x as a 1-byte little-endian slice.
func Bytes1(x uint64) []byte { return ToBytes(x, 1) }

// Bytes2 returns x as a 2-byte little-endian slice.
func Bytes2(x uint64) []byte { return ToBytes(x, 2) }

// Bytes3 returns x as a 3-byte little-endian slice.
func Bytes3(x uint64) []byte { return ToBytes(x, 3) }

// Bytes4 returns x as a 4-byte little-endian slice.
func Bytes4(x uint64) []byte { return ToBytes(x, 4) }

// Bytes8 returns x as an 8-byte little-endian slice.
func Bytes8(x uint64) []byte { return ToBytes(x, 8) }

// FromBytes2 decodes a 2-byte little-endian slice, zero-padding short input.
func FromBytes2(b []byte) uint16 {
	padded := pad(b, 2)
	return binary.LittleEndian.Uint16(padded)
}

// FromBytes4 decodes a 4-byte little-endian slice, zero-padding short input.
func FromBytes4(b []byte) uint32 {
	padded := pad(b, 4)
	return binary.LittleEndian.Uint32(padded)
}

// FromBytes8 decodes an 8-byte little-endian slice, zero-padding short input.
func FromBytes8(b []byte) uint64 {
	padded := pad(b, 8)
	return binary.LittleEndian.Uint64(padded)
}

func pad(b []byte, length int) []byte {
	if len(b) >= length {
		return b[:length]
	}
	out := make([]byte, length)
	copy(out, b)
	return out
}

// ToBool decodes a single SSZ boolean byte; any non-{0,1} value is invalid
// per the SSZ decode contract.
func ToBool(b byte) (bool, bool) {
	switch b {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}

// FromBool encodes a boolean into its single SSZ byte.
func FromBool(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Trunc returns a short 6-byte prefix of a hash for readable logging.
func Trunc(b []byte) []byte {
	if len(b) > 6 {
		return b[:6]
	}
	return b
}

// ReverseBytes32Slice reverses a slice of 32-byte values in place and
// returns it, used when canonicalizing ordering of Merkle sibling lists.
func ReverseBytes32Slice(in [][32]byte) [][32]byte {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
	return in
}

// SetBit sets bit i (0-indexed, LSB-first within each byte) in bitlist.
func SetBit(bitlist []byte, i int) {
	bitlist[i/8] |= 1 << uint(i%8)
}

// ClearBit clears bit i in bitlist.
func ClearBit(bitlist []byte, i int) {
	bitlist[i/8] &^= 1 << uint(i%8)
}

// HighestBitIndex returns the index of the highest set bit in bitlist, or
// -1 if none are set. For an SSZ bit-list this locates the length delimiter
// bit that every valid encoding must carry.
func HighestBitIndex(bitlist []byte) int {
	return HighestBitIndexAt(bitlist, len(bitlist)*8-1)
}

// HighestBitIndexAt returns the index of the highest set bit at or below
// upTo, or -1 if none are set.
func HighestBitIndexAt(bitlist []byte, upTo int) int {
	for i := upTo; i >= 0; i-- {
		if bitlist[i/8]&(1<<uint(i%8)) != 0 {
			return i
		}
	}
	return -1
}

// MakeEmptyBitlists returns a slice of n freshly allocated empty bit-lists
// each sized to hold bitLen bits plus the SSZ length-delimiter bit.
func MakeEmptyBitlists(n int, bitLen int) [][]byte {
	out := make([][]byte, n)
	size := bitLen/8 + 1
	for i := range out {
		out[i] = make([]byte, size)
	}
	return out
}
