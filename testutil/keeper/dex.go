package keeper

import (
	"context"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pi-chain/piswap/internal/auth"
	"github.com/pi-chain/piswap/internal/events"
	"github.com/pi-chain/piswap/internal/ledger"
	"github.com/pi-chain/piswap/internal/statestore"
	"github.com/pi-chain/piswap/x/dex/keeper"
)

// TB is the subset of testing.TB the fixtures need, satisfied by both
// *testing.T and *rapid.T.
type TB interface {
	Errorf(format string, args ...any)
	FailNow()
	Cleanup(func())
}

// Fixture bundles the keeper with its in-memory collaborators so tests
// can reach past the public surface when they need to.
type Fixture struct {
	Keeper *keeper.Keeper
	Ledger *ledger.Ledger
	Store  *statestore.Store
	Events *events.MemorySink
}

// DexKeeper creates a test keeper backed by in-memory collaborators.
// The engine is initialized with "admin" as the governance admin and a
// 30 bps protocol fee.
func DexKeeper(t TB, opts ...keeper.Option) (*Fixture, context.Context) {
	f, ctx := DexKeeperUninitialized(t, opts...)
	require.NoError(t, f.Keeper.Initialize(ctx, "admin", 30))
	f.Events.Reset()
	return f, ctx
}

// DexKeeperUninitialized is DexKeeper without the Initialize call, for
// tests that exercise initialization itself.
func DexKeeperUninitialized(t TB, opts ...keeper.Option) (*Fixture, context.Context) {
	logger := log.NewNopLogger()
	store := statestore.NewMemory(logger)
	t.Cleanup(func() { store.Close() })

	led, err := ledger.New(nil, logger)
	require.NoError(t, err)

	sink := events.NewMemorySink(256)

	k := keeper.NewKeeper(store, led, auth.OpenGate{}, sink, logger, opts...)
	return &Fixture{Keeper: k, Ledger: led, Store: store, Events: sink}, context.Background()
}

// FundAccount mints balance for a holder on the test ledger.
func FundAccount(t TB, f *Fixture, ctx context.Context, holder, asset string, amount math.Int) {
	require.NoError(t, f.Ledger.Mint(ctx, holder, asset, amount))
}

// CreateTestPool seeds a pool via AddLiquidity, funding the provider
// first, and returns the minted liquidity units.
func CreateTestPool(t TB, f *Fixture, ctx context.Context, provider, assetA, assetB string, amountA, amountB math.Int) math.Int {
	FundAccount(t, f, ctx, provider, assetA, amountA)
	FundAccount(t, f, ctx, provider, assetB, amountB)
	units, err := f.Keeper.AddLiquidity(ctx, provider, assetA, assetB, amountA, amountB)
	require.NoError(t, err)
	return units
}
