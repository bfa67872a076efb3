package types

import (
	"context"

	"cosmossdk.io/math"
)

// AssetLedger moves, mints, burns and queries balances of named assets
// for principals. The engine treats every call as synchronous and
// atomic; a transfer may re-enter the engine, which is why internal
// state is committed before any transfer is issued.
type AssetLedger interface {
	Transfer(ctx context.Context, from, to, asset string, amount math.Int) error
	Mint(ctx context.Context, to, asset string, amount math.Int) error
	Burn(ctx context.Context, from, asset string, amount math.Int) error
	BalanceOf(ctx context.Context, holder, asset string) math.Int
}

// AuthGate verifies that a principal authorized the current call. It
// must be consulted before any state read that leads to a mutation
// attributed to the principal.
type AuthGate interface {
	Authorize(ctx context.Context, principal string) error
}

// StateStore persists the whole contract state as a single record.
// Load returns ErrNotInitialized when no record has been saved yet.
type StateStore interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// EventSink publishes events after a committed operation. Publishing
// is best-effort: a sink failure must never roll back the mutation.
type EventSink interface {
	Publish(ctx context.Context, event Event) error
}
