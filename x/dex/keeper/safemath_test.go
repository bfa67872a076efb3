package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pi-chain/piswap/x/dex/keeper"
	"github.com/pi-chain/piswap/x/dex/types"
)

func bigPow2(exp uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), exp))
}

// TestSafeAdd tests checked addition including the 256-bit ceiling
func TestSafeAdd(t *testing.T) {
	sum, err := keeper.SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5), sum)

	_, err = keeper.SafeAdd(bigPow2(255), bigPow2(255))
	require.ErrorIs(t, err, types.ErrOverflow)
}

// TestSafeSub tests checked subtraction including underflow
func TestSafeSub(t *testing.T) {
	diff, err := keeper.SafeSub(math.NewInt(5), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), diff)

	_, err = keeper.SafeSub(math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrOverflow)
}

// TestSafeMul tests checked multiplication including the ceiling
func TestSafeMul(t *testing.T) {
	product, err := keeper.SafeMul(math.NewInt(6), math.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(42), product)

	zero, err := keeper.SafeMul(math.NewInt(0), bigPow2(255))
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = keeper.SafeMul(bigPow2(128), bigPow2(128))
	require.ErrorIs(t, err, types.ErrOverflow)
}

// TestSafeQuo tests checked division including division by zero
func TestSafeQuo(t *testing.T) {
	quotient, err := keeper.SafeQuo(math.NewInt(7), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), quotient)

	_, err = keeper.SafeQuo(math.NewInt(7), math.NewInt(0))
	require.ErrorIs(t, err, types.ErrOverflow)
}

// TestSafeMulDiv tests the fused floor(a*b/c)
func TestSafeMulDiv(t *testing.T) {
	result, err := keeper.SafeMulDiv(math.NewInt(10), math.NewInt(7), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(23), result)

	_, err = keeper.SafeMulDiv(math.NewInt(10), math.NewInt(7), math.NewInt(0))
	require.ErrorIs(t, err, types.ErrOverflow)

	_, err = keeper.SafeMulDiv(bigPow2(200), bigPow2(200), math.NewInt(1))
	require.ErrorIs(t, err, types.ErrOverflow)
}
