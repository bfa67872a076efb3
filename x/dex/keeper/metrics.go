package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus metrics for the DEX engine.
type Metrics struct {
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	SwapFees         *prometheus.CounterVec
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolsTotal       prometheus.Gauge
	Paused           prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers the engine metrics on the default
// registerer (singleton; repeated calls return the same set).
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swap attempts by outcome",
				},
				[]string{"asset_in", "asset_out", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"asset"},
			),
			SwapFees: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "swap_fees_total",
					Help:      "Total governance fees charged on swap inputs",
				},
				[]string{"asset"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited per asset",
				},
				[]string{"asset"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn per asset",
				},
				[]string{"asset"},
			),
			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "pools_total",
					Help:      "Number of pools in the registry",
				},
			),
			Paused: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "piswap",
					Subsystem: "dex",
					Name:      "paused",
					Help:      "Whether liquidity and swap operations are paused",
				},
			),
		}
	})
	return metrics
}

// intToFloat converts an amount for metric recording. Counters are
// observability-only, so precision loss on very large amounts is
// acceptable.
func intToFloat(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
