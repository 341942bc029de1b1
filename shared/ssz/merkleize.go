// Package ssz implements the canonical Simple Serialize encoding and
// hash-tree-root Merkleization scheme. Concrete container
// types hand-implement HashTreeRoot (and, for Validator, also
// MarshalSSZ/UnmarshalSSZ) using the primitives in this package, the same division of labor the ecosystem's
// code-generated SSZ types use, written here by hand since no SSZ code
// generator is available in this tree.
package ssz

import (
	"encoding/binary"
	"errors"

	"github.com/driftchain/beacon-node/shared/hashutil"
)

// ErrOverflow is returned when a sequence exceeds a declared SSZ maximum
// length.
var ErrOverflow = errors.New("ssz: value exceeds declared maximum length")

// ErrOffset is returned when variable-size offsets are missing, overlapping,
// or run backward.
var ErrOffset = errors.New("ssz: invalid or overlapping variable-length offset")

// ErrTrailingBytes is returned when a decode leaves unconsumed input.
var ErrTrailingBytes = errors.New("ssz: trailing bytes after decode")

// ErrBitlistDelimiter is returned when a bit-list's length-delimiter bit is
// absent from the encoding.
var ErrBitlistDelimiter = errors.New("ssz: bitlist missing length delimiter bit")

var zeroHashes = computeZeroHashes()

func computeZeroHashes() [][32]byte {
	hashes := make([][32]byte, 64)
	hashes[0] = [32]byte{}
	for i := 1; i < len(hashes); i++ {
		hashes[i] = hashutil.HashPair(hashes[i-1], hashes[i-1])
	}
	return hashes
}

// ZeroHashAtLayer returns the root of a perfectly empty subtree of the
// given depth, memoized so Merkleize never recomputes padding hashes.
func ZeroHashAtLayer(layer int) [32]byte {
	if layer < len(zeroHashes) {
		return zeroHashes[layer]
	}
	h := zeroHashes[len(zeroHashes)-1]
	for i := len(zeroHashes) - 1; i < layer; i++ {
		h = hashutil.HashPair(h, h)
	}
	return h
}

// nextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Merkleize computes the root of the perfect binary Merkle tree over
// chunks, zero-padding to the next power of two.
// An empty chunk list Merkleizes to the zero hash.
func Merkleize(chunks [][32]byte) [32]byte {
	if len(chunks) == 0 {
		return zeroHashes[0]
	}
	size := nextPowerOfTwo(len(chunks))
	layer := make([][32]byte, size)
	copy(layer, chunks)
	depth := 0
	for size > 1 {
		next := make([][32]byte, size/2)
		for i := 0; i < size/2; i++ {
			next[i] = hashutil.HashPair(layer[2*i], layer[2*i+1])
		}
		layer = next
		size /= 2
		depth++
	}
	return layer[0]
}

// MerkleizeLimit merkleizes chunks as if the tree always has room for limit
// chunks, used by variable-length lists so their root depends only on the
// declared maximum, not the actual element count.
func MerkleizeLimit(chunks [][32]byte, limit int) [32]byte {
	size := nextPowerOfTwo(limit)
	if len(chunks) == 0 {
		return ZeroHashAtLayer(log2(size))
	}
	layer := make([][32]byte, size)
	copy(layer, chunks)
	for size > 1 {
		next := make([][32]byte, size/2)
		for i := 0; i < size/2; i++ {
			next[i] = hashutil.HashPair(layer[2*i], layer[2*i+1])
		}
		layer = next
		size /= 2
	}
	return layer[0]
}

func log2(n int) int {
	d := 0
	for n > 1 {
		n >>= 1
		d++
	}
	return d
}

// MixInLength mixes a uint64 length into a root, used by lists and
// bit-lists but not vectors.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return hashutil.HashPair(root, lengthChunk)
}

// Pack splits a flat byte buffer into 32-byte chunks, zero-padding the
// final chunk, the packing rule for basic-type vectors and lists.
func Pack(data []byte) [][32]byte {
	if len(data) == 0 {
		return nil
	}
	numChunks := (len(data) + 31) / 32
	chunks := make([][32]byte, numChunks)
	for i := 0; i < numChunks; i++ {
		copy(chunks[i][:], data[i*32:min(len(data), (i+1)*32)])
	}
	return chunks
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// BitlistHashTreeRoot computes hash_tree_root for an SSZ bit-list: pack the
// bits (excluding the delimiter), Merkleize up to the chunk capacity
// implied by limitBits, and mix in the true bit length.
// bitlist must be in raw SSZ encoded form (delimiter bit included).
func BitlistHashTreeRoot(bitlist []byte, limitBits uint64) ([32]byte, error) {
	length, data, err := bitlistLengthAndData(bitlist)
	if err != nil {
		return [32]byte{}, err
	}
	chunks := Pack(data)
	limitChunks := int((limitBits + 255) / 256)
	if limitChunks == 0 {
		limitChunks = 1
	}
	root := MerkleizeLimit(chunks, limitChunks)
	return MixInLength(root, length), nil
}

// bitlistLengthAndData strips the SSZ length-delimiter bit from an encoded
// bit-list, returning the logical bit count and the zeroed-trailing-bit
// byte buffer for packing.
func bitlistLengthAndData(bitlist []byte) (uint64, []byte, error) {
	if len(bitlist) == 0 {
		return 0, nil, ErrBitlistDelimiter
	}
	msb := highestSetBit(bitlist)
	if msb < 0 {
		return 0, nil, ErrBitlistDelimiter
	}
	length := uint64(msb)
	out := make([]byte, len(bitlist))
	copy(out, bitlist)
	out[msb/8] &^= 1 << uint(msb%8)
	return length, out, nil
}

func highestSetBit(b []byte) int {
	for i := len(b)*8 - 1; i >= 0; i-- {
		if b[i/8]&(1<<uint(i%8)) != 0 {
			return i
		}
	}
	return -1
}
