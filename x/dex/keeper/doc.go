// Package keeper implements the DEX (Decentralized Exchange) module keeper.
//
// The module provides a constant-product automated market maker (AMM).
// Users create liquidity pools, add and remove liquidity, and swap assets
// against pooled reserves. A governance admin controls the fee schedule,
// can pause trading, and sweeps accumulated fees from custody.
//
// # Core Functionality
//
// Liquidity Pools: Dual-asset pools keyed by the asset pair. Adding
// liquidity mints share units equal to the sum of both deposited amounts;
// removing liquidity burns units and releases the matching amounts from
// custody.
//
// Asset Swaps: Execute swaps using the constant-product formula (x * y = k)
// with a 0.3% curve fee baked into the quote. A separate governance fee,
// expressed in basis points, is skimmed from the input before it joins the
// reserves and accumulates in the custody account.
//
// Governance: A single admin recorded at initialization may update the fee,
// pause and unpause trading, and withdraw the custody fee balance. All
// admin operations pass through the injected AuthGate.
//
// # Key Types
//
// Keeper: Main module keeper. State access, ledger transfers, authorization,
// and event emission all go through injected collaborators (StateStore,
// AssetLedger, AuthGate, EventSink), so the keeper itself stays free of
// storage and transport concerns.
//
// Pool: Liquidity pool with two reserves and the total outstanding shares.
//
// # Usage Patterns
//
// Adding liquidity:
//
//	err := k.AddLiquidity(ctx, provider, "upi", "uusd", amountA, amountB)
//
// Executing a swap:
//
//	amountOut, err := k.Swap(ctx, trader, "upi", "uusd", amountIn)
//
// Quoting without state:
//
//	amountOut, err := keeper.Quote(amountIn, reserveIn, reserveOut)
//
// # Metrics
//
// The keeper optionally records Prometheus metrics for swaps, liquidity
// changes, pool counts, and fee withdrawals via Metrics.
package keeper
