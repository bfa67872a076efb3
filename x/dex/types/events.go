package types

// Event types emitted by the DEX engine
const (
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeTokensSwapped    = "tokens_swapped"
	EventTypeFeesWithdrawn    = "fees_withdrawn"
	EventTypeFeeUpdated       = "fee_updated"
	EventTypePaused           = "paused"
	EventTypeUnpaused         = "unpaused"
	EventTypeInitialized      = "initialized"
)

// Event attribute keys
const (
	AttributeKeyAssetA    = "asset_a"
	AttributeKeyAssetB    = "asset_b"
	AttributeKeyAssetIn   = "asset_in"
	AttributeKeyAssetOut  = "asset_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyShares    = "shares"
	AttributeKeyAdmin     = "admin"
	AttributeKeyAsset     = "asset"
	AttributeKeyAmount    = "amount"
	AttributeKeyFeeBps    = "fee_bps"
)

// EventAttribute is a single key/value pair attached to an event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is the payload handed to the EventSink after a committed
// operation.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes,omitempty"`
}

// NewEvent builds an event from a type and attribute pairs.
func NewEvent(eventType string, attrs ...EventAttribute) Event {
	return Event{Type: eventType, Attributes: attrs}
}

// Attr builds a single event attribute.
func Attr(key, value string) EventAttribute {
	return EventAttribute{Key: key, Value: value}
}

// Attribute returns the value for a key and whether it was present.
func (e Event) Attribute(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
