package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/pi-chain/piswap/x/dex/types"
)

// AddLiquidity deposits amountA/amountB of the pair into its pool,
// creating the pool on first deposit. Units are issued as the raw sum
// amountA+amountB; there is no geometric-mean scaling, so a position
// conflates both assets' amounts into one scalar on purpose.
func (k *Keeper) AddLiquidity(ctx context.Context, provider, assetA, assetB string, amountA, amountB math.Int) (math.Int, error) {
	if err := k.requireAuthorized(ctx, provider); err != nil {
		return math.Int{}, err
	}

	state, err := k.loadState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := requireNotPaused(state); err != nil {
		return math.Int{}, err
	}

	if assetA == "" || assetB == "" || assetA == assetB {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("invalid asset pair %s/%s", assetA, assetB)
	}
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	keyA, keyB := k.pairKey(assetA, assetB)
	if keyA != assetA {
		amountA, amountB = amountB, amountA
	}
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		pool = types.NewPool(keyA, keyB)
	}

	units, err := SafeAdd(amountA, amountB)
	if err != nil {
		return math.Int{}, err
	}
	newReserveA, err := SafeAdd(pool.ReserveA, amountA)
	if err != nil {
		return math.Int{}, err
	}
	newReserveB, err := SafeAdd(pool.ReserveB, amountB)
	if err != nil {
		return math.Int{}, err
	}
	newTotalShares, err := SafeAdd(pool.TotalShares, units)
	if err != nil {
		return math.Int{}, err
	}

	prev := state.Clone()

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares
	state.SetPool(pool)

	posKey := types.PositionKey(keyA, keyB, provider)
	position, err := SafeAdd(state.Position(posKey), units)
	if err != nil {
		return math.Int{}, err
	}
	state.SetPosition(posKey, position)

	// Commit before the ledger calls; a transfer failure rolls the
	// record back so no partial write survives.
	if err := k.saveState(ctx, state); err != nil {
		return math.Int{}, err
	}

	if err := k.ledger.Transfer(ctx, provider, k.custodyAccount, keyA, amountA); err != nil {
		k.rollback(ctx, prev, err)
		return math.Int{}, types.ErrInsufficientBalance.Wrapf("failed to collect %s %s: %v", amountA, keyA, err)
	}
	if err := k.ledger.Transfer(ctx, provider, k.custodyAccount, keyB, amountB); err != nil {
		k.rollback(ctx, prev, err)
		if refundErr := k.ledger.Transfer(ctx, k.custodyAccount, provider, keyA, amountA); refundErr != nil {
			k.logger.Error("failed to refund provider after partial deposit",
				"provider", provider, "asset", keyA, "amount", amountA,
				"original_error", err, "refund_error", refundErr)
		}
		return math.Int{}, types.ErrInsufficientBalance.Wrapf("failed to collect %s %s: %v", amountB, keyB, err)
	}

	k.emit(ctx, types.NewEvent(types.EventTypeLiquidityAdded,
		types.Attr(types.AttributeKeyProvider, provider),
		types.Attr(types.AttributeKeyAssetA, keyA),
		types.Attr(types.AttributeKeyAssetB, keyB),
		types.Attr(types.AttributeKeyAmountA, amountA.String()),
		types.Attr(types.AttributeKeyAmountB, amountB.String()),
		types.Attr(types.AttributeKeyShares, units.String()),
	))

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(keyA).Add(intToFloat(amountA))
		k.metrics.LiquidityAdded.WithLabelValues(keyB).Add(intToFloat(amountB))
		k.metrics.PoolsTotal.Set(float64(len(state.Pools)))
	}
	k.logger.Info("liquidity added",
		"provider", provider, "pair", pool.Key(),
		"amount_a", amountA.String(), "amount_b", amountB.String(),
		"units", units.String())

	return units, nil
}

// RemoveLiquidity withdraws amountA/amountB from the pair's pool. The
// withdrawal is checked against the caller's position in units, the
// same conflated amountA+amountB scalar that was issued on deposit.
func (k *Keeper) RemoveLiquidity(ctx context.Context, provider, assetA, assetB string, amountA, amountB math.Int) error {
	if err := k.requireAuthorized(ctx, provider); err != nil {
		return err
	}

	state, err := k.loadState(ctx)
	if err != nil {
		return err
	}
	if err := requireNotPaused(state); err != nil {
		return err
	}

	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return types.ErrInvalidAmount.Wrap("withdrawal amounts must be positive")
	}

	keyA, keyB := k.pairKey(assetA, assetB)
	if keyA != assetA {
		amountA, amountB = amountB, amountA
	}
	pool, ok := state.Pool(types.PairKey(keyA, keyB))
	if !ok {
		return types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", assetA, assetB)
	}

	if pool.ReserveA.LT(amountA) || pool.ReserveB.LT(amountB) {
		return types.ErrInsufficientLiquidity.Wrapf(
			"pool %s reserves %s/%s cannot cover withdrawal %s/%s",
			pool.Key(), pool.ReserveA, pool.ReserveB, amountA, amountB)
	}

	units, err := SafeAdd(amountA, amountB)
	if err != nil {
		return err
	}
	posKey := types.PositionKey(keyA, keyB, provider)
	position := state.Position(posKey)
	if position.LT(units) {
		return types.ErrInsufficientLiquidity.Wrapf(
			"position %s units cannot cover withdrawal of %s units", position, units)
	}

	prev := state.Clone()

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(units)
	state.SetPool(pool)
	state.SetPosition(posKey, position.Sub(units))

	if err := k.saveState(ctx, state); err != nil {
		return err
	}

	if err := k.ledger.Transfer(ctx, k.custodyAccount, provider, keyA, amountA); err != nil {
		k.rollback(ctx, prev, err)
		return types.ErrInsufficientBalance.Wrapf("failed to return %s %s: %v", amountA, keyA, err)
	}
	if err := k.ledger.Transfer(ctx, k.custodyAccount, provider, keyB, amountB); err != nil {
		k.rollback(ctx, prev, err)
		if revertErr := k.ledger.Transfer(ctx, provider, k.custodyAccount, keyA, amountA); revertErr != nil {
			k.logger.Error("failed to claw back partial withdrawal",
				"provider", provider, "asset", keyA, "amount", amountA,
				"original_error", err, "revert_error", revertErr)
		}
		return types.ErrInsufficientBalance.Wrapf("failed to return %s %s: %v", amountB, keyB, err)
	}

	k.emit(ctx, types.NewEvent(types.EventTypeLiquidityRemoved,
		types.Attr(types.AttributeKeyProvider, provider),
		types.Attr(types.AttributeKeyAssetA, keyA),
		types.Attr(types.AttributeKeyAssetB, keyB),
		types.Attr(types.AttributeKeyAmountA, amountA.String()),
		types.Attr(types.AttributeKeyAmountB, amountB.String()),
		types.Attr(types.AttributeKeyShares, units.String()),
	))

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(keyA).Add(intToFloat(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(keyB).Add(intToFloat(amountB))
	}
	k.logger.Info("liquidity removed",
		"provider", provider, "pair", pool.Key(),
		"amount_a", amountA.String(), "amount_b", amountB.String(),
		"units", units.String())

	return nil
}

// GetPosition returns the provider's liquidity units for a pair. A
// missing position is zero.
func (k *Keeper) GetPosition(ctx context.Context, assetA, assetB, provider string) (math.Int, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	keyA, keyB := k.pairKey(assetA, assetB)
	return state.Position(types.PositionKey(keyA, keyB, provider)), nil
}
