package keeper

import (
	"context"
	"sort"

	"cosmossdk.io/math"

	"github.com/pi-chain/piswap/x/dex/types"
)

// GetPool retrieves the pool stored under the (assetA, assetB) pair
// key. Returns ErrPoolNotFound if the pair has never seen a deposit.
func (k *Keeper) GetPool(ctx context.Context, assetA, assetB string) (types.Pool, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return types.Pool{}, err
	}
	keyA, keyB := k.pairKey(assetA, assetB)
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", assetA, assetB)
	}
	return pool, nil
}

// GetAllPools returns every pool in deterministic key order.
func (k *Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(state.Pools))
	for key := range state.Pools {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pools := make([]types.Pool, 0, len(keys))
	for _, key := range keys {
		pools = append(pools, state.Pools[key])
	}
	return pools, nil
}

// CustodyBalance returns the ledger balance the engine holds for an
// asset: pool reserves plus accumulated governance fees.
func (k *Keeper) CustodyBalance(ctx context.Context, asset string) math.Int {
	return k.ledger.BalanceOf(ctx, k.custodyAccount, asset)
}
