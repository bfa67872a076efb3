package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgAddLiquidity deposits amounts of both assets into a pair's pool.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	AssetA   string   `json:"asset_a"`
	AssetB   string   `json:"asset_b"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, assetA, assetB string, amountA, amountB math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		AssetA:   assetA,
		AssetB:   assetB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// ValidateBasic performs stateless validation
func (msg MsgAddLiquidity) ValidateBasic() error {
	if msg.Provider == "" {
		return sdkerrors.Wrap(ErrUnauthorized, "provider cannot be empty")
	}
	if err := validatePair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if err := validatePositive(msg.AmountA, "amount A"); err != nil {
		return err
	}
	return validatePositive(msg.AmountB, "amount B")
}

// MsgRemoveLiquidity withdraws amounts of both assets from a pair's pool.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	AssetA   string   `json:"asset_a"`
	AssetB   string   `json:"asset_b"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, assetA, assetB string, amountA, amountB math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		AssetA:   assetA,
		AssetB:   assetB,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// ValidateBasic performs stateless validation
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if msg.Provider == "" {
		return sdkerrors.Wrap(ErrUnauthorized, "provider cannot be empty")
	}
	if err := validatePair(msg.AssetA, msg.AssetB); err != nil {
		return err
	}
	if err := validatePositive(msg.AmountA, "amount A"); err != nil {
		return err
	}
	return validatePositive(msg.AmountB, "amount B")
}

// MsgSwap trades amountIn of assetIn for assetOut against the pool
// stored under the (assetIn, assetOut) key.
type MsgSwap struct {
	Trader   string   `json:"trader"`
	AssetIn  string   `json:"asset_in"`
	AssetOut string   `json:"asset_out"`
	AmountIn math.Int `json:"amount_in"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, assetIn, assetOut string, amountIn math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:   trader,
		AssetIn:  assetIn,
		AssetOut: assetOut,
		AmountIn: amountIn,
	}
}

// ValidateBasic performs stateless validation
func (msg MsgSwap) ValidateBasic() error {
	if msg.Trader == "" {
		return sdkerrors.Wrap(ErrUnauthorized, "trader cannot be empty")
	}
	if err := validatePair(msg.AssetIn, msg.AssetOut); err != nil {
		return err
	}
	return validatePositive(msg.AmountIn, "amount in")
}

// MsgUpdateFee changes the governance fee. Admin only.
type MsgUpdateFee struct {
	Caller string `json:"caller"`
	FeeBps uint32 `json:"fee_bps"`
}

// ValidateBasic performs stateless validation
func (msg MsgUpdateFee) ValidateBasic() error {
	if msg.Caller == "" {
		return sdkerrors.Wrap(ErrUnauthorized, "caller cannot be empty")
	}
	if msg.FeeBps > MaxFeeBps {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "fee %d bps exceeds maximum %d", msg.FeeBps, MaxFeeBps)
	}
	return nil
}

// MsgWithdrawFees transfers the entire custody balance of an asset to
// the admin. Admin only.
type MsgWithdrawFees struct {
	Caller string `json:"caller"`
	Asset  string `json:"asset"`
}

// ValidateBasic performs stateless validation
func (msg MsgWithdrawFees) ValidateBasic() error {
	if msg.Caller == "" {
		return sdkerrors.Wrap(ErrUnauthorized, "caller cannot be empty")
	}
	if msg.Asset == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "asset cannot be empty")
	}
	return nil
}

func validatePair(assetA, assetB string) error {
	if assetA == "" || assetB == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "asset names cannot be empty")
	}
	if assetA == assetB {
		return sdkerrors.Wrapf(ErrInvalidAmount, "assets must differ, got %s/%s", assetA, assetB)
	}
	return nil
}

func validatePositive(amount math.Int, name string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrapf(ErrInvalidAmount, "%s must be positive", name)
	}
	return nil
}
