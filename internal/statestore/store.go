// Package statestore persists the whole contract state as a single
// record in a cosmos-db backend: goleveldb on disk for daemons, memdb
// for tests. There are no partial updates — every save rewrites the
// record, matching the engine's load/mutate/save transaction model.
package statestore

import (
	"context"
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/pi-chain/piswap/x/dex/types"
)

var stateKey = []byte("dex/state")

// Store implements types.StateStore over a cosmos-db database.
type Store struct {
	db     dbm.DB
	logger log.Logger
}

// New wraps an existing database.
func New(db dbm.DB, logger log.Logger) *Store {
	return &Store{db: db, logger: logger.With("component", "statestore")}
}

// Open creates or opens a goleveldb-backed store in dir.
func Open(dir string, logger log.Logger) (*Store, error) {
	db, err := dbm.NewGoLevelDB("piswap", dir, nil)
	if err != nil {
		return nil, err
	}
	return New(db, logger), nil
}

// NewMemory returns a store backed by an in-memory database.
func NewMemory(logger log.Logger) *Store {
	return New(dbm.NewMemDB(), logger)
}

// Load reads the state record. Returns ErrNotInitialized when no
// record has ever been saved.
func (s *Store) Load(_ context.Context) (*types.State, error) {
	bz, err := s.db.Get(stateKey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, types.ErrNotInitialized.Wrap("no state record in store")
	}

	var state types.State
	if err := json.Unmarshal(bz, &state); err != nil {
		return nil, types.ErrInvalidState.Wrapf("corrupt state record: %v", err)
	}
	if state.Pools == nil {
		state.Pools = make(map[string]types.Pool)
	}
	if state.Positions == nil {
		state.Positions = make(map[string]math.Int)
	}
	return &state, nil
}

// Save writes the whole record synchronously.
func (s *Store) Save(_ context.Context, state *types.State) error {
	if state == nil {
		return types.ErrInvalidState.Wrap("cannot save nil state")
	}
	bz, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.SetSync(stateKey, bz)
}

// DB exposes the underlying database so sibling components (the local
// asset ledger) can share one file.
func (s *Store) DB() dbm.DB {
	return s.db
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
