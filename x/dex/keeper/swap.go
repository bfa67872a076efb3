package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/pi-chain/piswap/x/dex/types"
)

// curve fee constants: a fixed 0.3% fee is baked into the constant
// product formula, independent of the configurable governance fee.
var (
	curveFeeNumerator   = math.NewInt(997)
	curveFeeDenominator = math.NewInt(1000)
)

// Quote computes the swap output for amountIn against the given
// reserves using the constant product formula with the fixed 0.3%
// curve fee:
//
//	amountOut = floor(amountIn*997*reserveOut / (reserveIn*1000 + amountIn*997))
//
// Pure function: no auth, no state. Fails ErrInvalidAmount when any
// operand is zero and ErrOverflow when an intermediate product exceeds
// the 256-bit bound.
func Quote(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsNil() || reserveIn.IsNil() || reserveOut.IsNil() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("quote operands cannot be nil")
	}
	if amountIn.IsZero() || reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("quote operands must be positive")
	}

	amountInFee, err := SafeMul(amountIn, curveFeeNumerator)
	if err != nil {
		return math.Int{}, err
	}
	scaledReserveIn, err := SafeMul(reserveIn, curveFeeDenominator)
	if err != nil {
		return math.Int{}, err
	}
	denominator, err := SafeAdd(scaledReserveIn, amountInFee)
	if err != nil {
		return math.Int{}, err
	}
	return SafeMulDiv(amountInFee, reserveOut, denominator)
}

// Swap trades amountIn of assetIn for assetOut against the pool stored
// under the (assetIn, assetOut) pair key and returns the output
// amount. The governance fee is charged on the input in addition to
// the curve fee inside Quote: the fee portion of the input stays in
// custody but is not added to reserves, which is what WithdrawFees
// later drains.
func (k *Keeper) Swap(ctx context.Context, trader, assetIn, assetOut string, amountIn math.Int) (math.Int, error) {
	if err := k.requireAuthorized(ctx, trader); err != nil {
		k.countSwap(assetIn, assetOut, "unauthorized")
		return math.Int{}, err
	}

	state, err := k.loadState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := requireNotPaused(state); err != nil {
		k.countSwap(assetIn, assetOut, "paused")
		return math.Int{}, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		k.countSwap(assetIn, assetOut, "invalid")
		return math.Int{}, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	keyA, keyB := k.pairKey(assetIn, assetOut)
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		k.countSwap(assetIn, assetOut, "not_found")
		return math.Int{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", assetIn, assetOut)
	}

	var reserveIn, reserveOut math.Int
	inIsA := assetIn == pool.AssetA
	switch {
	case inIsA && assetOut == pool.AssetB:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
	case assetIn == pool.AssetB && assetOut == pool.AssetA:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	default:
		k.countSwap(assetIn, assetOut, "not_found")
		return math.Int{}, types.ErrPoolNotFound.Wrapf("pool %s does not cover pair %s/%s", pool.Key(), assetIn, assetOut)
	}

	if reserveIn.IsZero() || reserveOut.IsZero() {
		k.countSwap(assetIn, assetOut, "no_liquidity")
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	amountOut, err := Quote(amountIn, reserveIn, reserveOut)
	if err != nil {
		return math.Int{}, err
	}
	if amountOut.IsZero() {
		k.countSwap(assetIn, assetOut, "no_liquidity")
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
	}

	// Governance fee on the input, in basis points, separate from the
	// curve fee already applied inside Quote.
	protocolFee, err := SafeMulDiv(amountIn, math.NewInt(int64(state.Governance.FeeBps)), math.NewInt(types.FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}
	amountInAfterFee, err := SafeSub(amountIn, protocolFee)
	if err != nil {
		return math.Int{}, err
	}

	newReserveIn, err := SafeAdd(reserveIn, amountInAfterFee)
	if err != nil {
		return math.Int{}, err
	}
	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return math.Int{}, err
	}

	prev := state.Clone()

	if inIsA {
		pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
	} else {
		pool.ReserveB, pool.ReserveA = newReserveIn, newReserveOut
	}
	state.SetPool(pool)

	// Commit the record before touching the ledger so a reentrant call
	// observes updated reserves rather than stale ones.
	if err := k.saveState(ctx, state); err != nil {
		return math.Int{}, err
	}

	if err := k.ledger.Transfer(ctx, trader, k.custodyAccount, assetIn, amountIn); err != nil {
		k.rollback(ctx, prev, err)
		k.countSwap(assetIn, assetOut, "transfer_failed")
		return math.Int{}, types.ErrInsufficientBalance.Wrapf("failed to collect %s %s from trader: %v", amountIn, assetIn, err)
	}
	if err := k.ledger.Transfer(ctx, k.custodyAccount, trader, assetOut, amountOut); err != nil {
		k.rollback(ctx, prev, err)
		if refundErr := k.ledger.Transfer(ctx, k.custodyAccount, trader, assetIn, amountIn); refundErr != nil {
			k.logger.Error("failed to refund trader after output transfer failure",
				"trader", trader, "asset", assetIn, "amount", amountIn,
				"original_error", err, "refund_error", refundErr)
		}
		k.countSwap(assetIn, assetOut, "transfer_failed")
		return math.Int{}, types.ErrInsufficientBalance.Wrapf("failed to pay out %s %s: %v", amountOut, assetOut, err)
	}

	k.emit(ctx, types.NewEvent(types.EventTypeTokensSwapped,
		types.Attr(types.AttributeKeyTrader, trader),
		types.Attr(types.AttributeKeyAssetIn, assetIn),
		types.Attr(types.AttributeKeyAssetOut, assetOut),
		types.Attr(types.AttributeKeyAmountIn, amountIn.String()),
		types.Attr(types.AttributeKeyAmountOut, amountOut.String()),
	))

	k.countSwap(assetIn, assetOut, "success")
	if k.metrics != nil {
		k.metrics.SwapVolume.WithLabelValues(assetIn).Add(intToFloat(amountIn))
		k.metrics.SwapFees.WithLabelValues(assetIn).Add(intToFloat(protocolFee))
	}
	k.logger.Info("swap executed",
		"trader", trader, "asset_in", assetIn, "asset_out", assetOut,
		"amount_in", amountIn.String(), "amount_out", amountOut.String(),
		"protocol_fee", protocolFee.String())

	return amountOut, nil
}

// SimulateSwap calculates the expected output without executing.
func (k *Keeper) SimulateSwap(ctx context.Context, assetIn, assetOut string, amountIn math.Int) (math.Int, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return math.Int{}, err
	}

	keyA, keyB := k.pairKey(assetIn, assetOut)
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		return math.Int{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", assetIn, assetOut)
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if assetIn == pool.AssetB {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	return Quote(amountIn, reserveIn, reserveOut)
}

// GetSpotPrice returns the instantaneous price of assetOut in terms of
// assetIn for the stored pool.
func (k *Keeper) GetSpotPrice(ctx context.Context, assetIn, assetOut string) (math.LegacyDec, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return math.LegacyDec{}, err
	}

	keyA, keyB := k.pairKey(assetIn, assetOut)
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		return math.LegacyDec{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", assetIn, assetOut)
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if assetIn == pool.AssetB {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyDec{}, types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}

func (k *Keeper) countSwap(assetIn, assetOut, status string) {
	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(assetIn, assetOut, status).Inc()
	}
}
