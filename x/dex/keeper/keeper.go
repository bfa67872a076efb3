package keeper

import (
	"context"

	"cosmossdk.io/log"

	"github.com/pi-chain/piswap/x/dex/types"
)

// Keeper is the exchange engine. Every public operation authenticates
// the caller, loads the full state record, validates, mutates in
// memory, persists, performs asset transfers and emits an event.
type Keeper struct {
	store  types.StateStore
	ledger types.AssetLedger
	auth   types.AuthGate
	events types.EventSink
	logger log.Logger

	metrics        *Metrics
	custodyAccount string
	canonicalPairs bool
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithCanonicalPairs makes the registry order-independent by sorting
// each pair lexicographically before keying. Off by default: (A,B) and
// (B,A) are distinct pools, matching the historical behavior. Only
// enable on fresh deployments; flipping it on an existing store
// orphans pools keyed in reverse order.
func WithCanonicalPairs(on bool) Option {
	return func(k *Keeper) { k.canonicalPairs = on }
}

// WithCustodyAccount overrides the ledger principal that holds pool
// reserves and collected fees.
func WithCustodyAccount(account string) Option {
	return func(k *Keeper) { k.custodyAccount = account }
}

// WithMetrics attaches prometheus metrics to the keeper hot paths.
func WithMetrics(m *Metrics) Option {
	return func(k *Keeper) { k.metrics = m }
}

// NewKeeper creates a new dex Keeper instance.
func NewKeeper(
	store types.StateStore,
	ledger types.AssetLedger,
	auth types.AuthGate,
	events types.EventSink,
	logger log.Logger,
	opts ...Option,
) *Keeper {
	k := &Keeper{
		store:          store,
		ledger:         ledger,
		auth:           auth,
		events:         events,
		logger:         logger.With("module", types.ModuleName),
		custodyAccount: types.CustodyAccount,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Logger returns the keeper's logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// CustodyAccount returns the ledger principal holding pool reserves.
func (k *Keeper) CustodyAccount() string {
	return k.custodyAccount
}

// pairKey applies the pair ordering policy before keying the registry.
func (k *Keeper) pairKey(assetA, assetB string) (string, string) {
	if k.canonicalPairs {
		return types.SortPair(assetA, assetB)
	}
	return assetA, assetB
}

// loadState loads the full contract state for the current operation.
func (k *Keeper) loadState(ctx context.Context) (*types.State, error) {
	state, err := k.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, types.ErrNotInitialized
	}
	return state, nil
}

// saveState validates invariants and persists the full record.
func (k *Keeper) saveState(ctx context.Context, state *types.State) error {
	if err := CheckInvariants(state); err != nil {
		return err
	}
	return k.store.Save(ctx, state)
}

// rollback restores a previously captured record after a failed
// external transfer. A failing rollback leaves the store inconsistent
// with the ledger and is logged loudly.
func (k *Keeper) rollback(ctx context.Context, prev *types.State, cause error) {
	if err := k.store.Save(ctx, prev); err != nil {
		k.logger.Error("state rollback failed after transfer failure",
			"cause", cause, "rollback_error", err)
	}
}

// emit publishes an event, logging sink failures without affecting the
// committed operation.
func (k *Keeper) emit(ctx context.Context, event types.Event) {
	if k.events == nil {
		return
	}
	if err := k.events.Publish(ctx, event); err != nil {
		k.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}

// requireAuthorized consults the auth gate before any mutation
// attributed to the principal.
func (k *Keeper) requireAuthorized(ctx context.Context, principal string) error {
	if principal == "" {
		return types.ErrUnauthorized.Wrap("principal cannot be empty")
	}
	return k.auth.Authorize(ctx, principal)
}

// requireAdmin checks the caller against the configured admin.
func requireAdmin(state *types.State, caller string) error {
	if caller != state.Governance.Admin {
		return types.ErrUnauthorized.Wrapf(
			"caller %s is not the admin", caller)
	}
	return nil
}

// requireNotPaused gates liquidity and swap mutations. Admin
// operations stay callable while paused.
func requireNotPaused(state *types.State) error {
	if state.Governance.Paused {
		return types.ErrPaused.Wrap("liquidity and swap operations are paused")
	}
	return nil
}
