package trieutil

import (
	"testing"

	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

func TestBranchIndices(t *testing.T) {
	indices := branchIndices(1024, 3 /* depth */)
	expected := []int{1024, 512, 256}
	for i := 0; i < len(indices); i++ {
		if expected[i] != indices[i] {
			t.Errorf("Expected %d, received %d", expected[i], indices[i])
		}
	}
}

func TestMerkleProofOutOfRange(t *testing.T) {
	h := hashutil.Hash([]byte("hi"))
	m := &DepositTrie{
		branches: [][][]byte{
			{h[:]},
			{h[:]},
			{{}},
		},
	}
	if _, err := m.MerkleProof(-1); err == nil {
		t.Error("expected out of range failure, received nil")
	}
	if _, err := m.MerkleProof(2); err == nil {
		t.Error("expected out of range failure, received nil")
	}
}

func TestTrieRoot_EmptyTrie(t *testing.T) {
	trie, err := NewTrie(int(params.BeaconConfig().DepositContractTreeDepth))
	if err != nil {
		t.Fatalf("could not create empty trie: %v", err)
	}
	var zero [32]byte
	root := trie.HashTreeRoot()
	if root == zero {
		t.Error("expected non-zero hash tree root mixing in deposit count, got zero value")
	}
}

func TestGenerateTrieFromItems_NoItemsProvided(t *testing.T) {
	if _, err := GenerateTrieFromItems(nil, 32); err == nil {
		t.Error("expected error when providing nil items, received nil")
	}
}

func TestVerifyMerkleProof(t *testing.T) {
	items := [][]byte{
		[]byte("alpha"), []byte("bravo"), []byte("charlie"), []byte("delta"),
		[]byte("echo"), []byte("foxtrot"), []byte("golf"),
	}
	m, err := GenerateTrieFromItems(items, 32)
	if err != nil {
		t.Fatalf("could not generate trie from items: %v", err)
	}
	proof, err := m.MerkleProof(2)
	if err != nil {
		t.Fatalf("could not generate Merkle proof: %v", err)
	}
	root := m.Root()
	if ok := VerifyMerkleProof(root[:], items[2], 2, proof); !ok {
		t.Error("Merkle proof did not verify")
	}
	if ok := VerifyMerkleProof(root[:], []byte("not-in-tree"), 2, proof); ok {
		t.Error("item not in tree should fail to verify")
	}
}

func TestInsert_AppendsAndUpdatesRoot(t *testing.T) {
	trie, err := NewTrie(int(params.BeaconConfig().DepositContractTreeDepth))
	if err != nil {
		t.Fatalf("could not create trie: %v", err)
	}
	before := trie.Root()

	leaf := hashutil.Hash([]byte("deposit-0"))
	if err := trie.Insert(leaf[:], 0); err != nil {
		t.Fatalf("could not insert leaf: %v", err)
	}
	after := trie.Root()
	if before == after {
		t.Error("expected root to change after inserting a leaf")
	}
}

func BenchmarkGenerateTrieFromItems(b *testing.B) {
	items := [][]byte{
		[]byte("alpha"), []byte("bravo"), []byte("charlie"), []byte("delta"),
	}
	for i := 0; i < b.N; i++ {
		if _, err := GenerateTrieFromItems(items, 32); err != nil {
			b.Fatalf("could not generate trie from items: %v", err)
		}
	}
}
