package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash_Deterministic(t *testing.T) {
	data := []byte("beacon")
	require.Equal(t, Hash(data), Hash(data))
}

func TestHashPair_MatchesManualConcatenation(t *testing.T) {
	left := Hash([]byte("left"))
	right := Hash([]byte("right"))

	want := Hash(append(append([]byte{}, left[:]...), right[:]...))
	require.Equal(t, want, HashPair(left, right))
}

func TestRepeatHash_ZeroIsIdentity(t *testing.T) {
	data := Hash([]byte("seed"))
	require.Equal(t, data, RepeatHash(data, 0))
}

func TestRepeatHash_Chains(t *testing.T) {
	data := Hash([]byte("seed"))
	once := Hash(data[:])
	require.Equal(t, once, RepeatHash(data, 1))
}
