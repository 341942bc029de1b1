package blocks

import (
	"github.com/pkg/errors"
	"github.com/driftchain/beacon-node/beacon-chain/core/helpers"
	"github.com/driftchain/beacon-node/beacon-chain/core/types"
	"github.com/driftchain/beacon-node/shared/bls"
	"github.com/driftchain/beacon-node/shared/hashutil"
	"github.com/driftchain/beacon-node/shared/params"
)

// ProcessDeposits verifies and applies every deposit a block includes, in
// order, advancing state.Eth1DepositIndex for each.
func ProcessDeposits(state *types.BeaconState, deposits []*types.Deposit) error {
	for i, d := range deposits {
		if err := ProcessDeposit(state, d); err != nil {
			return errors.Wrapf(err, "invalid deposit at index %d", i)
		}
	}
	return nil
}

// ProcessDeposit verifies a deposit's Merkle proof against the state's
// eth1 deposit root, then either tops up an existing validator's balance
// or appends a new validator to the registry.
//
// Spec pseudocode definition:
//  def process_deposit(state: BeaconState, deposit: Deposit) -> None:
//    assert is_valid_merkle_branch(
//        leaf=hash_tree_root(deposit.data),
//        branch=deposit.proof,
//        depth=DEPOSIT_CONTRACT_TREE_DEPTH + 1,
//        index=state.eth1_deposit_index,
//        root=state.eth1_data.deposit_root,
//    )
//    state.eth1_deposit_index += 1
//    ... top up or append validator
func ProcessDeposit(state *types.BeaconState, d *types.Deposit) error {
	const depositContractTreeDepth = 32

	leaf, err := d.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash deposit data")
	}
	if !isValidMerkleBranch(leaf, d.Proof[:], depositContractTreeDepth+1, state.Eth1DepositIndex, state.Eth1Data.DepositRoot) {
		return errors.New("deposit merkle proof does not verify against eth1 deposit root")
	}
	state.Eth1DepositIndex++

	pubkey := d.Data.PublicKey
	idx := -1
	for i, v := range state.Validators {
		if v.PublicKey == pubkey {
			idx = i
			break
		}
	}

	if idx == -1 {
		if ok, _ := bls.VerifySignature(d.Data.Signature[:], depositSigningRoot(d.Data), pubkey[:]); !ok {
			// An invalid deposit signature does not abort block processing;
			// it simply forfeits the deposited funds.
			return nil
		}
		effective := d.Data.Amount - d.Data.Amount%params.BeaconConfig().EffectiveBalanceIncrement
		if effective > params.BeaconConfig().MaxEffectiveBalance {
			effective = params.BeaconConfig().MaxEffectiveBalance
		}
		state.Validators = append(state.Validators, &types.Validator{
			PublicKey:                  pubkey,
			WithdrawalCredentials:      d.Data.WithdrawalCredentials,
			EffectiveBalance:           effective,
			ActivationEligibilityEpoch: types.FarFutureEpoch,
			ActivationEpoch:            types.FarFutureEpoch,
			ExitEpoch:                  types.FarFutureEpoch,
			WithdrawableEpoch:          types.FarFutureEpoch,
		})
		state.Balances = append(state.Balances, d.Data.Amount)
		return nil
	}

	helpers.IncreaseBalance(state, uint64(idx), d.Data.Amount)
	return nil
}

func depositSigningRoot(data *types.DepositData) [32]byte {
	unsigned := &types.DepositData{
		PublicKey:             data.PublicKey,
		WithdrawalCredentials: data.WithdrawalCredentials,
		Amount:                data.Amount,
	}
	root, _ := unsigned.HashTreeRoot()
	return root
}

// isValidMerkleBranch verifies a Merkle proof of inclusion for a leaf at
// the given leaf index (bit i of index selects the side at depth i)
// against an expected root.
func isValidMerkleBranch(leaf [32]byte, branch [][32]byte, depth uint, index uint64, root [32]byte) bool {
	computed := leaf
	for i := uint(0); i < depth; i++ {
		if (index>>i)&1 == 1 {
			computed = hashutil.HashPair(branch[i], computed)
		} else {
			computed = hashutil.HashPair(computed, branch[i])
		}
	}
	return computed == root
}
