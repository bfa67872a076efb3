package keeper

import (
	"context"

	"github.com/pi-chain/piswap/x/dex/types"
)

// CheckInvariants validates the state record before it is persisted:
// governance fee within bounds, pool reserves and shares consistent,
// and per-pool position sums equal to issued shares. A failure aborts
// the operation that produced the record.
func CheckInvariants(state *types.State) error {
	if state == nil {
		return types.ErrInvalidState.Wrap("nil state record")
	}
	return state.Validate()
}

// CheckStoredInvariants loads the current record and validates it.
// Exposed for operational tooling.
func (k *Keeper) CheckStoredInvariants(ctx context.Context) error {
	state, err := k.loadState(ctx)
	if err != nil {
		return err
	}
	return CheckInvariants(state)
}
