// Package blst wraps github.com/supranational/blst's Go bindings behind
// the shared/bls/common interfaces, using the minimal-pubkey-size variant
// (48-byte G1 public keys, 96-byte G2 signatures) Ethereum 2.0 specifies.
package blst

import blstbindings "github.com/supranational/blst/bindings/go"

type blstPublicKey = blstbindings.P1Affine
type blstSignature = blstbindings.P2Affine
type blstAggregatePublicKey = blstbindings.P1Aggregate
type blstAggregateSignature = blstbindings.P2Aggregate

// dst is the domain separation tag for hash-to-curve, matching the
// ciphersuite Ethereum 2.0 Phase 0 specifies for BLS signatures.
var dst = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")
