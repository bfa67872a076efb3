package statestore

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pi-chain/piswap/x/dex/types"
)

// TestLoad_Uninitialized tests the empty-store sentinel
func TestLoad_Uninitialized(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

// TestSaveLoad_RoundTrip tests persisting and reloading a record
func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()
	ctx := context.Background()

	state := types.NewState("admin", 30)
	state.SetPool(types.Pool{
		AssetA:      "upi",
		AssetB:      "uusd",
		ReserveA:    math.NewInt(1000),
		ReserveB:    math.NewInt(2000),
		TotalShares: math.NewInt(3000),
	})
	state.SetPosition(types.PositionKey("upi", "uusd", "alice"), math.NewInt(3000))

	require.NoError(t, s.Save(ctx, state))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, state.Governance, loaded.Governance)
	require.Equal(t, state.Pools, loaded.Pools)
	require.Equal(t, state.Positions, loaded.Positions)
}

// TestSave_Overwrites tests that a save replaces the whole record
func TestSave_Overwrites(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, types.NewState("admin", 30)))
	require.NoError(t, s.Save(ctx, types.NewState("admin", 500)))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(500), loaded.Governance.FeeBps)
}

// TestSave_NilState tests rejection of a nil record
func TestSave_NilState(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()

	err := s.Save(context.Background(), nil)
	require.ErrorIs(t, err, types.ErrInvalidState)
}

// TestLoad_RepairsNilMaps tests that a minimal record loads with
// usable empty maps.
func TestLoad_RepairsNilMaps(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &types.State{
		Governance: types.GovernanceConfig{Admin: "admin", FeeBps: 30},
	}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded.Pools)
	require.NotNil(t, loaded.Positions)
}

// TestLoad_CorruptRecord tests the corrupt-blob error path
func TestLoad_CorruptRecord(t *testing.T) {
	s := NewMemory(log.NewNopLogger())
	defer s.Close()

	require.NoError(t, s.DB().SetSync(stateKey, []byte("{not json")))

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, types.ErrInvalidState)
}
