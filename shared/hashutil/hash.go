// Package hashutil defines the SHA-256 hashing primitives used for
// signing roots, gossip message IDs, and Merkle chunk hashing throughout
// the beacon node.
package hashutil

import (
	"github.com/minio/sha256-simd"
)

// Hash defines a function that returns the SHA-256 hash of the data passed in.
func Hash(data []byte) [32]byte {
	var hash [32]byte
	h := sha256.New()
	// The hash interface never returns an error; see golang.org/pkg/hash/#Hash.
	// #nosec G104
	h.Write(data)
	h.Sum(hash[:0])
	return hash
}

// HashPair hashes the concatenation of two 32-byte chunks, the core
// operation of Merkleization.
func HashPair(left, right [32]byte) [32]byte {
	buf := make([]byte, 64)
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return Hash(buf)
}

// RepeatHash applies SHA-256 repeatedly numTimes on a 32-byte array. Used to
// derive successive randao mixes from a single validator reveal chain.
func RepeatHash(data [32]byte, numTimes uint64) [32]byte {
	if numTimes == 0 {
		return data
	}
	return RepeatHash(Hash(data[:]), numTimes-1)
}
