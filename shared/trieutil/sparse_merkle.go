// Package trieutil implements the incremental sparse Merkle tree the
// deposit contract uses, needed here to reproduce its deposit_root and
// Merkle proofs when building genesis state and verifying deposits.
package trieutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/driftchain/beacon-node/shared/bytesutil"
	"github.com/driftchain/beacon-node/shared/hashutil"
)

var zeroHashes = make([][]byte, 100)

func init() {
	zeroHashes[0] = make([]byte, 32)
	for i := 1; i < 100; i++ {
		leaf := append(zeroHashes[i-1], zeroHashes[i-1]...)
		result := hashutil.Hash(leaf)
		zeroHashes[i] = result[:]
	}
}

// DepositTrie is an append-only sparse Merkle tree over deposit data
// leaves, mirroring the deposit contract's on-chain incremental trie.
type DepositTrie struct {
	depth    uint
	branches [][][]byte
	leaves   [][]byte
}

// NewTrie returns a single-leaf, all-zero trie of the given depth — the
// state of the deposit contract's trie before any deposit has landed.
func NewTrie(depth int) (*DepositTrie, error) {
	var zeroBytes [32]byte
	return GenerateTrieFromItems([][]byte{zeroBytes[:]}, depth)
}

// Insert writes item as the leaf at index, appending if index is exactly
// one past the current leaf count, then recomputes every branch above it.
func (d *DepositTrie) Insert(item []byte, index int) error {
	if index > len(d.leaves) {
		return errors.New("invalid index to be inserting")
	}
	if index == len(d.leaves) {
		d.leaves = append(d.leaves, item)
		return d.rebuild()
	}
	d.leaves[index] = item
	return d.rebuild()
}

// GenerateTrieFromItems constructs a trie over a full set of leaves at once.
func GenerateTrieFromItems(items [][]byte, depth int) (*DepositTrie, error) {
	if len(items) == 0 {
		return nil, errors.New("no items provided to generate Merkle trie")
	}
	return &DepositTrie{
		branches: branchesFromLeaves(items, depth),
		leaves:   items,
		depth:    uint(depth),
	}, nil
}

// Items returns the leaves that were hashed into the trie, in insertion order.
func (d *DepositTrie) Items() [][]byte {
	return d.leaves
}

// Root returns the trie's top hash, excluding the deposit-count mixin
// `HashTreeRoot` adds on top.
func (d *DepositTrie) Root() [32]byte {
	return bytesutil.ToBytes32(d.branches[len(d.branches)-1][0])
}

// MerkleProof returns the sibling hash at each level needed to verify the
// leaf at index against Root, padding with precomputed zero-subtrees
// above the trie's actual height.
func (d *DepositTrie) MerkleProof(index int) ([][]byte, error) {
	leaves := d.branches[0]
	if index >= len(leaves) {
		return nil, fmt.Errorf("merkle index out of range in trie, max range: %d, received: %d", len(leaves), index)
	}
	proof := make([][]byte, d.depth)
	for i := uint(0); i < d.depth; i++ {
		siblingIdx := (uint(index) / (1 << i)) ^ 1
		if siblingIdx < uint(len(d.branches[i])) {
			proof[i] = d.branches[i][siblingIdx]
		} else {
			proof[i] = zeroHashes[i]
		}
	}
	return proof, nil
}

// HashTreeRoot mixes the deposit count into Root the way the deposit
// contract's get_deposit_root does, so it matches state.eth1_data.deposit_root.
func (d *DepositTrie) HashTreeRoot() [32]byte {
	var zeroBytes [32]byte
	depositCount := uint64(len(d.leaves))
	if depositCount == 1 && bytes.Equal(d.leaves[0], zeroBytes[:]) {
		depositCount = 0
	}
	mixed := append(d.branches[len(d.branches)-1][0], bytesutil.Bytes8(depositCount)...)
	mixed = append(mixed, zeroBytes[:24]...)
	return hashutil.Hash(mixed)
}

// VerifyMerkleProof checks a Merkle branch for item at merkleIndex against root.
func VerifyMerkleProof(root []byte, item []byte, merkleIndex int, proof [][]byte) bool {
	node := item
	for i, idx := range branchIndices(merkleIndex, len(proof)) {
		if idx%2 == 0 {
			parent := hashutil.Hash(append(node[:], proof[i]...))
			node = parent[:]
		} else {
			parent := hashutil.Hash(append(proof[i], node[:]...))
			node = parent[:]
		}
	}
	return bytes.Equal(root, node)
}

func branchesFromLeaves(leaves [][]byte, depth int) [][][]byte {
	layers := make([][][]byte, depth+1)
	layers[0] = leaves
	for i := 0; i < depth; i++ {
		if len(layers[i])%2 == 1 {
			layers[i] = append(layers[i], zeroHashes[i])
		}
		next := make([][]byte, 0, len(layers[i])/2)
		for j := 0; j < len(layers[i]); j += 2 {
			parent := hashutil.Hash(append(layers[i][j], layers[i][j+1]...))
			next = append(next, parent[:])
		}
		layers[i+1] = next
	}
	return layers
}

func branchIndices(merkleIndex int, depth int) []int {
	indices := make([]int, depth)
	idx := merkleIndex
	indices[0] = idx
	for i := 1; i < depth; i++ {
		idx /= 2
		indices[i] = idx
	}
	return indices
}

func (d *DepositTrie) rebuild() error {
	trie, err := GenerateTrieFromItems(d.leaves, int(d.depth))
	if err != nil {
		return err
	}
	d.branches = trie.branches
	return nil
}
