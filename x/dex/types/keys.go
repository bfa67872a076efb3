package types

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// CustodyAccount is the default principal that holds pool reserves
	// and collected protocol fees on the asset ledger.
	CustodyAccount = "dex_custody"
)

// PairKey builds the registry key for an asset pair. The key is the
// ordered tuple exactly as supplied: PairKey(a, b) != PairKey(b, a).
// Callers that want order-independent pools must sort the pair first
// (see keeper.WithCanonicalPairs).
func PairKey(assetA, assetB string) string {
	return assetA + "/" + assetB
}

// PositionKey builds the liquidity ledger key for a provider's claim
// on a pair's pool.
func PositionKey(assetA, assetB, provider string) string {
	return PairKey(assetA, assetB) + "/" + provider
}

// SortPair returns the pair in lexicographic order.
func SortPair(assetA, assetB string) (string, string) {
	if assetA > assetB {
		return assetB, assetA
	}
	return assetA, assetB
}
