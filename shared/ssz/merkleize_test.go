package ssz

import (
	"testing"

	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/stretchr/testify/require"
)

func TestMerkleize_EmptyIsZeroHash(t *testing.T) {
	require.Equal(t, zeroHashes[0], Merkleize(nil))
}

func TestMerkleize_SingleChunkIsItself(t *testing.T) {
	chunk := hashutil.Hash([]byte("a"))
	require.Equal(t, chunk, Merkleize([][32]byte{chunk}))
}

func TestMerkleize_PadsToPowerOfTwo(t *testing.T) {
	a := hashutil.Hash([]byte("a"))
	b := hashutil.Hash([]byte("b"))
	c := hashutil.Hash([]byte("c"))

	// Three leaves should pad with one zero chunk to a tree of four leaves.
	got := Merkleize([][32]byte{a, b, c})
	want := hashutil.HashPair(hashutil.HashPair(a, b), hashutil.HashPair(c, zeroHashes[0]))
	require.Equal(t, want, got)
}

func TestMixInLength_Deterministic(t *testing.T) {
	root := hashutil.Hash([]byte("root"))
	require.Equal(t, MixInLength(root, 5), MixInLength(root, 5))
	require.NotEqual(t, MixInLength(root, 5), MixInLength(root, 6))
}

func TestPack_ZeroPadsFinalChunk(t *testing.T) {
	data := []byte{1, 2, 3}
	chunks := Pack(data)
	require.Len(t, chunks, 1)
	require.Equal(t, byte(1), chunks[0][0])
	require.Equal(t, byte(0), chunks[0][31])
}

func TestBitlistHashTreeRoot_RequiresDelimiter(t *testing.T) {
	_, err := BitlistHashTreeRoot([]byte{}, 2048)
	require.Error(t, err)

	// 0b00000001 -> delimiter only, zero-length bitlist.
	root, err := BitlistHashTreeRoot([]byte{0x01}, 2048)
	require.NoError(t, err)
	require.NotEqual(t, [32]byte{}, root)
}
