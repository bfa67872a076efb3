package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/math"

	"github.com/pi-chain/piswap/x/dex/types"
)

// Initialize writes the initial governance configuration. Callable
// exactly once per store: a second call fails ErrAlreadyInitialized.
func (k *Keeper) Initialize(ctx context.Context, admin string, feeBps uint32) error {
	if err := k.requireAuthorized(ctx, admin); err != nil {
		return err
	}
	if feeBps > types.MaxFeeBps {
		return types.ErrFeeTooHigh.Wrapf("fee %d bps exceeds maximum %d", feeBps, types.MaxFeeBps)
	}

	existing, err := k.store.Load(ctx)
	if err != nil && !errors.Is(err, types.ErrNotInitialized) {
		return err
	}
	if existing != nil {
		return types.ErrAlreadyInitialized.Wrap("state record already exists")
	}

	state := types.NewState(admin, feeBps)
	if err := k.saveState(ctx, state); err != nil {
		return err
	}

	k.emit(ctx, types.NewEvent(types.EventTypeInitialized,
		types.Attr(types.AttributeKeyAdmin, admin),
		types.Attr(types.AttributeKeyFeeBps, strconv.FormatUint(uint64(feeBps), 10)),
	))
	k.logger.Info("dex initialized", "admin", admin, "fee_bps", feeBps)
	return nil
}

// UpdateFee sets the governance fee. Admin only; callable while paused.
func (k *Keeper) UpdateFee(ctx context.Context, caller string, newFeeBps uint32) error {
	if err := k.requireAuthorized(ctx, caller); err != nil {
		return err
	}
	state, err := k.loadState(ctx)
	if err != nil {
		return err
	}
	if err := requireAdmin(state, caller); err != nil {
		return err
	}
	if newFeeBps > types.MaxFeeBps {
		return types.ErrFeeTooHigh.Wrapf("fee %d bps exceeds maximum %d", newFeeBps, types.MaxFeeBps)
	}

	state.Governance.FeeBps = newFeeBps
	if err := k.saveState(ctx, state); err != nil {
		return err
	}

	k.emit(ctx, types.NewEvent(types.EventTypeFeeUpdated,
		types.Attr(types.AttributeKeyFeeBps, strconv.FormatUint(uint64(newFeeBps), 10)),
	))
	k.logger.Info("governance fee updated", "fee_bps", newFeeBps)
	return nil
}

// Pause blocks liquidity and swap mutations. Admin operations remain
// callable while paused.
func (k *Keeper) Pause(ctx context.Context, caller string) error {
	return k.setPaused(ctx, caller, true)
}

// Unpause re-enables liquidity and swap mutations.
func (k *Keeper) Unpause(ctx context.Context, caller string) error {
	return k.setPaused(ctx, caller, false)
}

func (k *Keeper) setPaused(ctx context.Context, caller string, paused bool) error {
	if err := k.requireAuthorized(ctx, caller); err != nil {
		return err
	}
	state, err := k.loadState(ctx)
	if err != nil {
		return err
	}
	if err := requireAdmin(state, caller); err != nil {
		return err
	}

	state.Governance.Paused = paused
	if err := k.saveState(ctx, state); err != nil {
		return err
	}

	eventType := types.EventTypePaused
	if !paused {
		eventType = types.EventTypeUnpaused
	}
	k.emit(ctx, types.NewEvent(eventType))
	if k.metrics != nil {
		v := 0.0
		if paused {
			v = 1.0
		}
		k.metrics.Paused.Set(v)
	}
	k.logger.Info("pause flag changed", "paused", paused)
	return nil
}

// WithdrawFees transfers the ENTIRE custody balance of an asset to the
// admin. The engine does not segregate collected fees from pool
// reserves, so withdrawing an asset that backs a live pool drains user
// funds along with the fees. Callable while paused.
func (k *Keeper) WithdrawFees(ctx context.Context, caller, asset string) (math.Int, error) {
	if err := k.requireAuthorized(ctx, caller); err != nil {
		return math.Int{}, err
	}
	state, err := k.loadState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if err := requireAdmin(state, caller); err != nil {
		return math.Int{}, err
	}

	amount := k.ledger.BalanceOf(ctx, k.custodyAccount, asset)
	if amount.IsNil() || amount.IsZero() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("no custody balance for asset %s", asset)
	}

	if err := k.ledger.Transfer(ctx, k.custodyAccount, state.Governance.Admin, asset, amount); err != nil {
		return math.Int{}, types.ErrInsufficientBalance.Wrapf("failed to withdraw %s %s: %v", amount, asset, err)
	}

	k.emit(ctx, types.NewEvent(types.EventTypeFeesWithdrawn,
		types.Attr(types.AttributeKeyAsset, asset),
		types.Attr(types.AttributeKeyAmount, amount.String()),
	))
	k.logger.Info("fees withdrawn", "asset", asset, "amount", amount.String())
	return amount, nil
}

// GetGovernance returns the current governance configuration.
func (k *Keeper) GetGovernance(ctx context.Context) (types.GovernanceConfig, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return types.GovernanceConfig{}, err
	}
	return state.Governance, nil
}

// IsPaused reports the pause flag.
func (k *Keeper) IsPaused(ctx context.Context) (bool, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return false, err
	}
	return state.Governance.Paused, nil
}
