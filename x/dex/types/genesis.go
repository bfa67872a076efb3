package types

import (
	"sort"

	"cosmossdk.io/math"
)

// PositionRecord is the exported form of a liquidity position.
type PositionRecord struct {
	AssetA   string   `json:"asset_a"`
	AssetB   string   `json:"asset_b"`
	Provider string   `json:"provider"`
	Units    math.Int `json:"units"`
}

// GenesisState is the deterministic, list-based export of the state
// record used for init and export.
type GenesisState struct {
	Governance GovernanceConfig `json:"governance"`
	Pools      []Pool           `json:"pools"`
	Positions  []PositionRecord `json:"positions"`
}

// DefaultGenesis returns a genesis with governance to be filled in at
// initialization time.
func DefaultGenesis(admin string, feeBps uint32) *GenesisState {
	return &GenesisState{
		Governance: GovernanceConfig{Admin: admin, FeeBps: feeBps},
	}
}

// Validate checks the genesis by materializing it into a state record.
func (gs *GenesisState) Validate() error {
	_, err := gs.ToState()
	return err
}

// ToState materializes the genesis into a validated state record.
func (gs *GenesisState) ToState() (*State, error) {
	state := NewState(gs.Governance.Admin, gs.Governance.FeeBps)
	state.Governance.Paused = gs.Governance.Paused
	for _, pool := range gs.Pools {
		if _, ok := state.Pools[pool.Key()]; ok {
			return nil, ErrInvalidState.Wrapf("duplicate pool %s", pool.Key())
		}
		state.SetPool(pool)
	}
	for _, pos := range gs.Positions {
		key := PositionKey(pos.AssetA, pos.AssetB, pos.Provider)
		if _, ok := state.Positions[key]; ok {
			return nil, ErrInvalidState.Wrapf("duplicate position %s", key)
		}
		state.SetPosition(key, pos.Units)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

// FromState exports a state record into sorted, deterministic lists.
func FromState(state *State) *GenesisState {
	gs := &GenesisState{Governance: state.Governance}

	poolKeys := make([]string, 0, len(state.Pools))
	for k := range state.Pools {
		poolKeys = append(poolKeys, k)
	}
	sort.Strings(poolKeys)
	for _, k := range poolKeys {
		gs.Pools = append(gs.Pools, state.Pools[k])
	}

	posKeys := make([]string, 0, len(state.Positions))
	for k := range state.Positions {
		posKeys = append(posKeys, k)
	}
	sort.Strings(posKeys)
	for _, k := range posKeys {
		pairKey, ok := pairOfPosition(k, state.Pools)
		if !ok {
			continue
		}
		pool := state.Pools[pairKey]
		gs.Positions = append(gs.Positions, PositionRecord{
			AssetA:   pool.AssetA,
			AssetB:   pool.AssetB,
			Provider: k[len(pairKey)+1:],
			Units:    state.Positions[k],
		})
	}
	return gs
}
