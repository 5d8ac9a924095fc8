package rebalance

import (
	"math"
	"sort"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
)

// Generate computes drift against target and, if it exceeds the
// threshold, a trade list that restores it (spec §4.6). Asset iteration
// is over target's keys in sorted order so the emitted trade list is
// reproducible.
func Generate(holdings, target map[string]float64, a assumptions.Bundle, cfg Config) Result {
	driftThreshold := cfg.DriftThreshold
	if driftThreshold == 0 {
		driftThreshold = DefaultDriftThreshold
	}
	minTrade := cfg.MinimumTradeAmount
	if minTrade == 0 {
		minTrade = DefaultMinimumTradeAmount
	}

	var total float64
	for _, v := range holdings {
		total += v
	}
	if total == 0 {
		return Result{NeedsRebalancing: false, Drifts: map[string]float64{}}
	}

	assets := make([]string, 0, len(target))
	for id := range target {
		assets = append(assets, id)
	}
	sort.Strings(assets)

	drifts := make(map[string]float64, len(assets))
	var maxDrift float64
	for _, id := range assets {
		currentPct := 100 * holdings[id] / total
		drift := currentPct - target[id]
		drifts[id] = drift
		if math.Abs(drift) > maxDrift {
			maxDrift = math.Abs(drift)
		}
	}

	if maxDrift < driftThreshold {
		return Result{NeedsRebalancing: false, Drifts: drifts, MaxDrift: maxDrift}
	}

	var trades []Trade
	var estimatedCost float64
	for _, id := range assets {
		if math.Abs(drifts[id]) <= perAssetDriftFloor {
			continue
		}
		targetValue := (target[id] / 100) * total
		currentValue := holdings[id]
		tradeAmount := targetValue - currentValue
		if math.Abs(tradeAmount) < minTrade {
			continue
		}

		side := Buy
		if tradeAmount < 0 {
			side = Sell
		}
		amount := math.Abs(tradeAmount)

		trades = append(trades, Trade{
			Asset:        id,
			Side:         side,
			Amount:       amount,
			CurrentValue: currentValue,
			TargetValue:  targetValue,
		})

		bps := bundledCostBps(a, id, cfg.TradingCostBpsOverride)
		estimatedCost += amount * bps / 10_000
	}

	impact := 10_000 * estimatedCost / total

	return Result{
		NeedsRebalancing: true,
		Drifts:           drifts,
		MaxDrift:         maxDrift,
		Trades:           trades,
		EstimatedCost:    estimatedCost,
		ImpactOnReturn:   impact,
	}
}

func bundledCostBps(a assumptions.Bundle, asset string, override *float64) float64 {
	if override != nil {
		return *override
	}
	if params, ok := a.Assets[asset]; ok {
		return params.TradingCostBps
	}
	return 0
}
