// Package rebalance implements the drift-threshold rebalancer from spec
// §4.6: it measures how far current holdings have drifted from a target
// allocation and, if the drift exceeds a threshold, emits a trade list
// that restores the target.
package rebalance

// Side is the direction of an emitted trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Trade is one emitted rebalancing order (spec §3.7).
type Trade struct {
	Asset        string
	Side         Side
	Amount       float64
	CurrentValue float64
	TargetValue  float64
}

// Config controls one rebalancing run (spec §6). Zero values fall back
// to the documented defaults: DriftThreshold 5 percentage points,
// MinimumTradeAmount 10 000 currency units.
type Config struct {
	DriftThreshold      float64
	MinimumTradeAmount  float64
	TradingCostBpsOverride *float64
}

const (
	DefaultDriftThreshold     = 5.0
	DefaultMinimumTradeAmount = 10_000.0
	// perAssetDriftFloor is the fixed 1-percentage-point dead zone below
	// which an individual asset's drift is left untouched even once
	// max_drift has triggered a rebalance (spec §4.6 step 5).
	perAssetDriftFloor = 1.0
)

// Result is the rebalancing output (spec §3.7).
type Result struct {
	NeedsRebalancing bool
	Drifts           map[string]float64
	MaxDrift         float64
	Trades           []Trade
	EstimatedCost    float64
	ImpactOnReturn   float64 // basis points
}
