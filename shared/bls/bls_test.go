package bls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/driftchain/beacon-node/shared/bls"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	sk, err := bls.RandKey()
	require.NoError(t, err)

	msg := []byte("attest to the beacon chain")
	sig := sk.Sign(msg)
	assert.True(t, sig.Verify(sk.PublicKey(), msg))
}

func TestVerify_WrongMessageFails(t *testing.T) {
	sk, err := bls.RandKey()
	require.NoError(t, err)

	sig := sk.Sign([]byte("the real message"))
	assert.False(t, sig.Verify(sk.PublicKey(), []byte("a forged message")))
}

func TestFastAggregateVerify(t *testing.T) {
	const n = 8
	msg := [32]byte{}
	copy(msg[:], "shared committee vote")

	sks := make([]bls.SecretKey, n)
	pubkeys := make([]bls.PublicKey, n)
	sigs := make([]bls.Signature, n)
	for i := 0; i < n; i++ {
		sk, err := bls.RandKey()
		require.NoError(t, err)
		sks[i] = sk
		pubkeys[i] = sk.PublicKey()
		sigs[i] = sk.Sign(msg[:])
	}

	agg, err := bls.AggregateSignatures(sigs)
	require.NoError(t, err)
	assert.True(t, agg.FastAggregateVerify(pubkeys, msg))
}

func TestAggregatePublicKeys_OrderIndependent(t *testing.T) {
	sk1, err := bls.RandKey()
	require.NoError(t, err)
	sk2, err := bls.RandKey()
	require.NoError(t, err)

	agg1 := sk1.PublicKey().Aggregate(sk2.PublicKey())
	agg2 := sk2.PublicKey().Aggregate(sk1.PublicKey())
	assert.Equal(t, agg1.Marshal(), agg2.Marshal())
}
