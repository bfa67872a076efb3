package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// MaxFeeBps is the upper bound for the governance fee.
	MaxFeeBps = 10000

	// FeeDenominator converts basis points into a fraction.
	FeeDenominator = 10000
)

// Pool holds the reserves of a single asset pair. TotalShares is the
// sum of all liquidity units issued against the pool; units are
// denominated as amountA+amountB of the original deposits.
type Pool struct {
	AssetA      string   `json:"asset_a"`
	AssetB      string   `json:"asset_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns an empty pool for the given pair.
func NewPool(assetA, assetB string) Pool {
	return Pool{
		AssetA:      assetA,
		AssetB:      assetB,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Key returns the registry key the pool is stored under.
func (p Pool) Key() string {
	return PairKey(p.AssetA, p.AssetB)
}

// IsEmpty reports whether the pool holds no reserves and no shares.
func (p Pool) IsEmpty() bool {
	return p.ReserveA.IsZero() && p.ReserveB.IsZero() && p.TotalShares.IsZero()
}

// Validate checks structural pool invariants.
func (p Pool) Validate() error {
	if p.AssetA == "" || p.AssetB == "" {
		return ErrInvalidState.Wrap("pool asset names cannot be empty")
	}
	if p.AssetA == p.AssetB {
		return ErrInvalidState.Wrapf("pool assets must differ, got %s/%s", p.AssetA, p.AssetB)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidState.Wrap("pool amounts cannot be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidState.Wrapf("pool %s has negative reserves", p.Key())
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidState.Wrapf("pool %s has negative total shares", p.Key())
	}
	// A pool may hold shares against a zero reserve: a withdrawal that
	// exactly drains one side is a legal transition, and swaps against
	// such a pool fail on the zero-reserve check instead.
	return nil
}

// GovernanceConfig holds the admin identity, the configurable fee and
// the pause flag.
type GovernanceConfig struct {
	Admin  string `json:"admin"`
	FeeBps uint32 `json:"fee_bps"`
	Paused bool   `json:"paused"`
}

// Validate checks the governance configuration.
func (g GovernanceConfig) Validate() error {
	if g.Admin == "" {
		return ErrInvalidState.Wrap("admin cannot be empty")
	}
	if g.FeeBps > MaxFeeBps {
		return ErrFeeTooHigh.Wrapf("fee %d bps exceeds maximum %d", g.FeeBps, MaxFeeBps)
	}
	return nil
}

// State is the whole contract state. It is loaded and persisted
// atomically per operation; no entity is individually addressable in
// storage.
type State struct {
	Governance GovernanceConfig    `json:"governance"`
	Pools      map[string]Pool     `json:"pools"`
	Positions  map[string]math.Int `json:"positions"`
}

// NewState returns an initialized state record for the given admin.
func NewState(admin string, feeBps uint32) *State {
	return &State{
		Governance: GovernanceConfig{Admin: admin, FeeBps: feeBps},
		Pools:      make(map[string]Pool),
		Positions:  make(map[string]math.Int),
	}
}

// Pool returns the pool stored under the given pair key.
func (s *State) Pool(pairKey string) (Pool, bool) {
	p, ok := s.Pools[pairKey]
	return p, ok
}

// SetPool stores a pool under its own key.
func (s *State) SetPool(pool Pool) {
	if s.Pools == nil {
		s.Pools = make(map[string]Pool)
	}
	s.Pools[pool.Key()] = pool
}

// Position returns the liquidity units held for a position key. A
// missing entry is a zero position.
func (s *State) Position(positionKey string) math.Int {
	units, ok := s.Positions[positionKey]
	if !ok {
		return math.ZeroInt()
	}
	return units
}

// SetPosition stores a position, deleting zero-valued entries so that
// empty positions are logically absent.
func (s *State) SetPosition(positionKey string, units math.Int) {
	if s.Positions == nil {
		s.Positions = make(map[string]math.Int)
	}
	if units.IsZero() {
		delete(s.Positions, positionKey)
		return
	}
	s.Positions[positionKey] = units
}

// Clone returns a deep copy of the state. Used to retain the previous
// record so a failed external transfer can be rolled back.
func (s *State) Clone() *State {
	out := &State{
		Governance: s.Governance,
		Pools:      make(map[string]Pool, len(s.Pools)),
		Positions:  make(map[string]math.Int, len(s.Positions)),
	}
	for k, v := range s.Pools {
		out.Pools[k] = v
	}
	for k, v := range s.Positions {
		out.Positions[k] = v
	}
	return out
}

// Validate checks the full record: governance bounds, structural pool
// invariants, and that per-pool position sums match issued shares.
func (s *State) Validate() error {
	if err := s.Governance.Validate(); err != nil {
		return err
	}

	for key, pool := range s.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if key != pool.Key() {
			return ErrInvalidState.Wrapf("pool stored under key %q but keyed %q", key, pool.Key())
		}
	}

	sums := make(map[string]math.Int, len(s.Pools))
	for key, units := range s.Positions {
		if units.IsNil() || !units.IsPositive() {
			return ErrInvalidState.Wrapf("position %s has non-positive units", key)
		}
		pairKey, ok := pairOfPosition(key, s.Pools)
		if !ok {
			return ErrInvalidState.Wrapf("position %s references no known pool", key)
		}
		sum, ok := sums[pairKey]
		if !ok {
			sum = math.ZeroInt()
		}
		sums[pairKey] = sum.Add(units)
	}
	for pairKey, pool := range s.Pools {
		sum, ok := sums[pairKey]
		if !ok {
			sum = math.ZeroInt()
		}
		if !sum.Equal(pool.TotalShares) {
			return ErrInvalidState.Wrapf(
				"pool %s total shares %s do not match position sum %s",
				pairKey, pool.TotalShares, sum,
			)
		}
	}
	return nil
}

// pairOfPosition maps a position key back onto the pool it belongs to.
// Position keys are pairKey + "/" + provider, so the owning pool is the
// longest pool key that prefixes the position key.
func pairOfPosition(positionKey string, pools map[string]Pool) (string, bool) {
	best, found := "", false
	for pairKey := range pools {
		if len(positionKey) > len(pairKey)+1 &&
			positionKey[:len(pairKey)] == pairKey &&
			positionKey[len(pairKey)] == '/' &&
			len(pairKey) > len(best) {
			best, found = pairKey, true
		}
	}
	return best, found
}

// String implements fmt.Stringer for logging.
func (p Pool) String() string {
	return fmt.Sprintf("%s: reserves %s/%s shares %s", p.Key(), p.ReserveA, p.ReserveB, p.TotalShares)
}
