package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pi-chain/piswap/testutil/keeper"
	"github.com/pi-chain/piswap/x/dex/keeper"
	"github.com/pi-chain/piswap/x/dex/types"
)

// TestAddLiquidity_CreatesPool tests first deposit creating the pool
func TestAddLiquidity_CreatesPool(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.FundAccount(t, f, ctx, "alice", "upi", math.NewInt(1000))
	keepertest.FundAccount(t, f, ctx, "alice", "uusd", math.NewInt(2000))

	units, err := f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3000), units)

	pool, err := f.Keeper.GetPool(ctx, "upi", "uusd")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pool.ReserveA)
	require.Equal(t, math.NewInt(2000), pool.ReserveB)
	require.Equal(t, math.NewInt(3000), pool.TotalShares)

	// Deposits moved into custody.
	require.True(t, f.Ledger.BalanceOf(ctx, "alice", "upi").IsZero())
	require.Equal(t, math.NewInt(1000), f.Keeper.CustodyBalance(ctx, "upi"))
	require.Equal(t, math.NewInt(2000), f.Keeper.CustodyBalance(ctx, "uusd"))

	position, err := f.Keeper.GetPosition(ctx, "upi", "uusd", "alice")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3000), position)
}

// TestAddLiquidity_AccumulatesExistingPool tests a second deposit
func TestAddLiquidity_AccumulatesExistingPool(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))
	keepertest.FundAccount(t, f, ctx, "carol", "upi", math.NewInt(500))
	keepertest.FundAccount(t, f, ctx, "carol", "uusd", math.NewInt(500))

	units, err := f.Keeper.AddLiquidity(ctx, "carol", "upi", "uusd", math.NewInt(500), math.NewInt(500))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), units)

	pool, err := f.Keeper.GetPool(ctx, "upi", "uusd")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1500), pool.ReserveA)
	require.Equal(t, math.NewInt(3000), pool.TotalShares)
}

// TestAddLiquidity_InvalidPair tests rejection of bad asset pairs
func TestAddLiquidity_InvalidPair(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)

	cases := []struct {
		name           string
		assetA, assetB string
	}{
		{"same asset", "upi", "upi"},
		{"empty asset a", "", "uusd"},
		{"empty asset b", "upi", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Keeper.AddLiquidity(ctx, "alice", tc.assetA, tc.assetB, math.NewInt(100), math.NewInt(100))
			require.ErrorIs(t, err, types.ErrInvalidAmount)
		})
	}
}

// TestAddLiquidity_NonPositiveAmounts tests rejection of zero amounts
func TestAddLiquidity_NonPositiveAmounts(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)

	_, err := f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(0), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestAddLiquidity_Paused tests rejection while paused
func TestAddLiquidity_Paused(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	require.NoError(t, f.Keeper.Pause(ctx, "admin"))
	keepertest.FundAccount(t, f, ctx, "alice", "upi", math.NewInt(100))
	keepertest.FundAccount(t, f, ctx, "alice", "uusd", math.NewInt(100))

	_, err := f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPaused)
}

// TestAddLiquidity_UnfundedProviderRollsBack verifies a failed deposit
// leaves no trace in the state record.
func TestAddLiquidity_UnfundedProviderRollsBack(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)

	_, err := f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	_, err = f.Keeper.GetPool(ctx, "upi", "uusd")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestAddLiquidity_PartialDepositRefunds verifies the first leg is
// refunded when the second asset cannot be collected.
func TestAddLiquidity_PartialDepositRefunds(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.FundAccount(t, f, ctx, "alice", "upi", math.NewInt(100))
	// alice has no uusd

	_, err := f.Keeper.AddLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	require.Equal(t, math.NewInt(100), f.Ledger.BalanceOf(ctx, "alice", "upi"))
	require.True(t, f.Keeper.CustodyBalance(ctx, "upi").IsZero())

	_, err = f.Keeper.GetPool(ctx, "upi", "uusd")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestAddLiquidity_ReversedOrderingCreatesSecondPool documents the
// default registry behavior: (B, A) is a separate pool from (A, B).
func TestAddLiquidity_ReversedOrderingCreatesSecondPool(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))
	keepertest.CreateTestPool(t, f, ctx, "alice", "uusd", "upi", math.NewInt(500), math.NewInt(500))

	pools, err := f.Keeper.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

// TestAddLiquidity_CanonicalOrderingMergesPools verifies the canonical
// option folds both orderings with amounts following the sorted keys.
func TestAddLiquidity_CanonicalOrderingMergesPools(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t, keeper.WithCanonicalPairs(true))
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(2000))
	keepertest.CreateTestPool(t, f, ctx, "alice", "uusd", "upi", math.NewInt(600), math.NewInt(300))

	pools, err := f.Keeper.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 1)

	// The second deposit's amounts follow the asset, not the argument
	// position: 600 uusd and 300 upi.
	pool := pools[0]
	require.Equal(t, "upi", pool.AssetA)
	require.Equal(t, math.NewInt(1300), pool.ReserveA)
	require.Equal(t, math.NewInt(2600), pool.ReserveB)
}

// TestRemoveLiquidity_FullRoundTrip tests withdrawing everything back
// out, draining the pool to empty.
func TestRemoveLiquidity_FullRoundTrip(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(2000))

	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)

	pool, err := f.Keeper.GetPool(ctx, "upi", "uusd")
	require.NoError(t, err)
	require.True(t, pool.ReserveA.IsZero())
	require.True(t, pool.ReserveB.IsZero())
	require.True(t, pool.TotalShares.IsZero())

	position, err := f.Keeper.GetPosition(ctx, "upi", "uusd", "alice")
	require.NoError(t, err)
	require.True(t, position.IsZero())

	require.Equal(t, math.NewInt(1000), f.Ledger.BalanceOf(ctx, "alice", "upi"))
	require.Equal(t, math.NewInt(2000), f.Ledger.BalanceOf(ctx, "alice", "uusd"))
}

// TestRemoveLiquidity_DrainsOneReserve tests a withdrawal that empties
// exactly one side of the pool while units remain outstanding.
func TestRemoveLiquidity_DrainsOneReserve(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(200))

	// Reserves and position cover (100, 100), leaving reserve A at zero
	// with 100 units still issued.
	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.NoError(t, err)

	pool, err := f.Keeper.GetPool(ctx, "upi", "uusd")
	require.NoError(t, err)
	require.True(t, pool.ReserveA.IsZero())
	require.Equal(t, math.NewInt(100), pool.ReserveB)
	require.Equal(t, math.NewInt(100), pool.TotalShares)

	position, err := f.Keeper.GetPosition(ctx, "upi", "uusd", "alice")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), position)

	require.Equal(t, math.NewInt(100), f.Ledger.BalanceOf(ctx, "alice", "upi"))
	require.Equal(t, math.NewInt(100), f.Ledger.BalanceOf(ctx, "alice", "uusd"))
}

// TestRemoveLiquidity_PartialWithdrawal tests removing part of a position
func TestRemoveLiquidity_PartialWithdrawal(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))

	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(400), math.NewInt(400))
	require.NoError(t, err)

	pool, err := f.Keeper.GetPool(ctx, "upi", "uusd")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), pool.ReserveA)
	require.Equal(t, math.NewInt(1200), pool.TotalShares)

	position, err := f.Keeper.GetPosition(ctx, "upi", "uusd", "alice")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1200), position)
}

// TestRemoveLiquidity_ExceedsPosition tests rejection when the caller
// owns fewer units than the withdrawal needs.
func TestRemoveLiquidity_ExceedsPosition(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))
	keepertest.CreateTestPool(t, f, ctx, "carol", "upi", "uusd", math.NewInt(100), math.NewInt(100))

	// carol holds 200 units; withdrawing 150+150 needs 300.
	err := f.Keeper.RemoveLiquidity(ctx, "carol", "upi", "uusd", math.NewInt(150), math.NewInt(150))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

// TestRemoveLiquidity_ExceedsReserves tests rejection when the pool
// cannot cover the withdrawal.
func TestRemoveLiquidity_ExceedsReserves(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))

	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(1500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

// TestRemoveLiquidity_PoolNotFound tests withdrawal from a missing pool
func TestRemoveLiquidity_PoolNotFound(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)

	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestRemoveLiquidity_Paused tests rejection while paused
func TestRemoveLiquidity_Paused(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)
	keepertest.CreateTestPool(t, f, ctx, "alice", "upi", "uusd", math.NewInt(1000), math.NewInt(1000))
	require.NoError(t, f.Keeper.Pause(ctx, "admin"))

	err := f.Keeper.RemoveLiquidity(ctx, "alice", "upi", "uusd", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrPaused)
}

// TestGetPosition_MissingIsZero tests the zero default for unknown positions
func TestGetPosition_MissingIsZero(t *testing.T) {
	f, ctx := keepertest.DexKeeper(t)

	position, err := f.Keeper.GetPosition(ctx, "upi", "uusd", "nobody")
	require.NoError(t, err)
	require.True(t, position.IsZero())
}
