package forkchoice

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
)

// Head computes the canonical head: starting from the justified checkpoint's
// root, repeatedly descend to the child with the greatest summed
// latest-message weight, ties broken lexicographically by root.
//
// Spec pseudocode definition:
//  starting from justified_checkpoint.root, repeatedly descend to the child
//  with the greatest summed latest-message weight (sum of effective_balances
//  of validators whose latest message is a descendant); ties broken
//  lexicographically by block-root. Blocks not descended from
//  finalized_checkpoint.root are excluded.
func (s *Store) Head() (types.Root, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root := s.justifiedCheckpoint.Root
	if _, ok := s.blocks[root]; !ok {
		return types.Root{}, errors.New("forkchoice: justified checkpoint root not found in store")
	}

	weights := s.subtreeWeights()
	children := s.childrenOf()

	for {
		kids := children[root]
		if len(kids) == 0 {
			return root, nil
		}
		best := kids[0]
		for _, c := range kids[1:] {
			if weights[c] > weights[best] || (weights[c] == weights[best] && bytes.Compare(c[:], best[:]) > 0) {
				best = c
			}
		}
		root = best
	}
}

// childrenOf groups every inserted block's root under its parent, excluding
// blocks that are not descendants of the finalized checkpoint. The caller
// must hold s.mu.
func (s *Store) childrenOf() map[types.Root][]types.Root {
	children := make(map[types.Root][]types.Root)
	for root, node := range s.blocks {
		if root == s.finalizedCheckpoint.Root {
			continue
		}
		if !s.descendsFromFinalized(root) {
			continue
		}
		children[node.parentRoot] = append(children[node.parentRoot], root)
	}
	return children
}

func (s *Store) descendsFromFinalized(root types.Root) bool {
	finalizedSlot := s.blocks[s.finalizedCheckpoint.Root].slot
	ancestor, ok := s.ancestorAtSlot(root, finalizedSlot)
	return ok && ancestor == s.finalizedCheckpoint.Root
}

// subtreeWeights sums, for every inserted block, the effective balance of
// every validator whose latest message descends from (or is) that block.
// The caller must hold s.mu.
func (s *Store) subtreeWeights() map[types.Root]uint64 {
	weights := make(map[types.Root]uint64, len(s.blocks))
	for idx, msg := range s.votes {
		if int(idx) >= len(s.justifiedBalances) {
			continue
		}
		balance := s.justifiedBalances[idx]
		if balance == 0 {
			continue
		}
		root := msg.root
		for {
			node, ok := s.blocks[root]
			if !ok {
				break
			}
			weights[root] += balance
			if root == s.justifiedCheckpoint.Root {
				break
			}
			root = node.parentRoot
		}
	}
	return weights
}
