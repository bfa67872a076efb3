package keeper

import (
	"context"
	"errors"

	"github.com/pi-chain/piswap/x/dex/types"
)

// InitGenesis writes a validated genesis state into the store. Fails
// if a record already exists; a store can only be seeded once.
func (k *Keeper) InitGenesis(ctx context.Context, genState *types.GenesisState) error {
	existing, err := k.store.Load(ctx)
	if err != nil && !errors.Is(err, types.ErrNotInitialized) {
		return err
	}
	if existing != nil {
		return types.ErrAlreadyInitialized.Wrap("state record already exists")
	}

	state, err := genState.ToState()
	if err != nil {
		return err
	}
	return k.saveState(ctx, state)
}

// ExportGenesis exports the current record as deterministic lists.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	state, err := k.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return types.FromState(state), nil
}
