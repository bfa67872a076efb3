// Package ledger provides an in-process asset ledger implementing the
// engine's AssetLedger contract: named asset balances per principal
// with mint, burn and transfer. It stands in for an external ledger in
// local deployments and tests; balances are optionally persisted to
// the node database so one-shot CLI operations see prior funding.
package ledger

import (
	"context"
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/pi-chain/piswap/x/dex/types"
)

var keyPrefix = []byte("ledger/balance/")

// Ledger is a concurrency-safe balance table. With a backing database
// every balance change is written through; with a nil database the
// ledger is purely in-memory.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]math.Int // holder + "/" + asset -> amount
	db       dbm.DB
	logger   log.Logger
}

// New creates a ledger. db may be nil for a memory-only ledger.
func New(db dbm.DB, logger log.Logger) (*Ledger, error) {
	l := &Ledger{
		balances: make(map[string]math.Int),
		db:       db,
		logger:   logger.With("component", "ledger"),
	}
	if db != nil {
		if err := l.loadAll(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func balanceKey(holder, asset string) string {
	return holder + "/" + asset
}

func (l *Ledger) loadAll() error {
	itr, err := l.db.Iterator(keyPrefix, prefixEnd(keyPrefix))
	if err != nil {
		return err
	}
	defer itr.Close()

	for ; itr.Valid(); itr.Next() {
		var amount math.Int
		if err := amount.Unmarshal(itr.Value()); err != nil {
			return types.ErrInvalidState.Wrapf("corrupt balance record %q: %v", itr.Key(), err)
		}
		l.balances[string(itr.Key()[len(keyPrefix):])] = amount
	}
	return itr.Error()
}

func (l *Ledger) persist(key string, amount math.Int) error {
	if l.db == nil {
		return nil
	}
	dbKey := append(append([]byte{}, keyPrefix...), key...)
	if amount.IsZero() {
		return l.db.DeleteSync(dbKey)
	}
	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	return l.db.SetSync(dbKey, bz)
}

// BalanceOf returns the holder's balance of an asset; missing entries
// are zero.
func (l *Ledger) BalanceOf(_ context.Context, holder, asset string) math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	amount, ok := l.balances[balanceKey(holder, asset)]
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

// Mint credits amount of asset to the holder.
func (l *Ledger) Mint(_ context.Context, to, asset string, amount math.Int) error {
	if err := validateEntry(to, asset, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := balanceKey(to, asset)
	next := l.get(key).Add(amount)
	if err := l.persist(key, next); err != nil {
		return err
	}
	l.balances[key] = next
	l.logger.Debug("minted", "to", to, "asset", asset, "amount", amount.String())
	return nil
}

// Burn debits amount of asset from the holder.
func (l *Ledger) Burn(_ context.Context, from, asset string, amount math.Int) error {
	if err := validateEntry(from, asset, amount); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := balanceKey(from, asset)
	current := l.get(key)
	if current.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"%s holds %s %s, cannot burn %s", from, current, asset, amount)
	}
	next := current.Sub(amount)
	if err := l.persist(key, next); err != nil {
		return err
	}
	l.set(key, next)
	l.logger.Debug("burned", "from", from, "asset", asset, "amount", amount.String())
	return nil
}

// Transfer moves amount of asset between principals.
func (l *Ledger) Transfer(_ context.Context, from, to, asset string, amount math.Int) error {
	if err := validateEntry(from, asset, amount); err != nil {
		return err
	}
	if to == "" {
		return types.ErrInvalidAmount.Wrap("recipient cannot be empty")
	}
	if from == to {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := balanceKey(from, asset)
	current := l.get(fromKey)
	if current.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"%s holds %s %s, cannot transfer %s", from, current, asset, amount)
	}

	toKey := balanceKey(to, asset)
	nextFrom := current.Sub(amount)
	nextTo := l.get(toKey).Add(amount)

	if err := l.persist(fromKey, nextFrom); err != nil {
		return err
	}
	if err := l.persist(toKey, nextTo); err != nil {
		return err
	}
	l.set(fromKey, nextFrom)
	l.balances[toKey] = nextTo
	return nil
}

// get is the read half under an already-held lock.
func (l *Ledger) get(key string) math.Int {
	amount, ok := l.balances[key]
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

// set drops zero balances so the table stays sparse.
func (l *Ledger) set(key string, amount math.Int) {
	if amount.IsZero() {
		delete(l.balances, key)
		return
	}
	l.balances[key] = amount
}

func validateEntry(holder, asset string, amount math.Int) error {
	if holder == "" {
		return types.ErrInvalidAmount.Wrap("holder cannot be empty")
	}
	if asset == "" {
		return types.ErrInvalidAmount.Wrap("asset cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// prefixEnd returns the smallest key greater than every key with the
// given prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
