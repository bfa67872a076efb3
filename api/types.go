package api

import (
	"cosmossdk.io/math"

	"github.com/pi-chain/piswap/x/dex/types"
)

// AdminRequest identifies the caller of a pause/unpause request.
type AdminRequest struct {
	Caller string `json:"caller"`
}

// QuoteResponse carries the computed swap output.
type QuoteResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// SwapResponse carries the executed (or simulated) swap output.
type SwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// LiquidityResponse carries the units issued by a deposit.
type LiquidityResponse struct {
	Units math.Int `json:"units"`
}

// PositionResponse carries a provider's liquidity units.
type PositionResponse struct {
	Units math.Int `json:"units"`
}

// PoolsResponse lists every pool in the registry.
type PoolsResponse struct {
	Pools []types.Pool `json:"pools"`
}

// SpotPriceResponse carries the instantaneous pool price.
type SpotPriceResponse struct {
	Price string `json:"price"`
}

// BalanceResponse carries a ledger balance.
type BalanceResponse struct {
	Holder string   `json:"holder"`
	Asset  string   `json:"asset"`
	Amount math.Int `json:"amount"`
}

// WithdrawFeesResponse carries the amount swept to the admin.
type WithdrawFeesResponse struct {
	Asset  string   `json:"asset"`
	Amount math.Int `json:"amount"`
}

// EventsResponse lists recently emitted events, oldest first.
type EventsResponse struct {
	Events []types.Event `json:"events"`
}

// ErrorResponse carries a failed operation's error text.
type ErrorResponse struct {
	Error string `json:"error"`
}
