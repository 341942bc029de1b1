package forkchoice

import "github.com/pkg/errors"

// ErrUnknownParent is returned by OnBlock when the incoming block's parent
// has not been inserted into the store yet.
var ErrUnknownParent = errors.New("forkchoice: unknown parent block")

// ErrUnknownBlock is returned by OnAttestation when the attestation's
// beacon_block_root has not been inserted into the store yet; the caller is
// expected to hand the attestation to the pending-attestation queue instead
// of discarding it.
var ErrUnknownBlock = errors.New("forkchoice: unknown beacon block root")

// ErrBadAncestor is returned by OnBlock when the block's ancestor at the
// justified checkpoint's epoch boundary does not equal the justified
// checkpoint's root.
var ErrBadAncestor = errors.New("forkchoice: block is not descended from the justified checkpoint")

// ErrBadJustifiedEpoch is returned by OnBlock when the post-state's
// justified epoch regresses past what the store already considers
// justified.
var ErrBadJustifiedEpoch = errors.New("forkchoice: post-state justified epoch is stale")
