// Package finengine is the public surface of the financial planning
// engine: a thin, stateless set of functions delegating to internal/*,
// mirroring aristath-sentinel's pkg/formulas + internal/modules split.
// Every function is pure -- identical inputs and an identical seed
// produce byte-identical outputs -- and none of them log, retry, or
// swallow an error.
package finengine

import (
	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/goals"
	"github.com/castlemilk/finplan-engine/internal/montecarlo"
	"github.com/castlemilk/finplan-engine/internal/projector"
	"github.com/castlemilk/finplan-engine/internal/rebalance"
)

// GetAssumptions returns the bundle registered for an exact
// (region, version) pair.
func GetAssumptions(region, version string) (assumptions.Bundle, error) {
	return assumptions.Default.Get(region, version)
}

// GetLatestAssumptions returns the newest version registered for a
// region.
func GetLatestAssumptions(region string) (assumptions.Bundle, error) {
	return assumptions.Default.GetLatest(region)
}

// ProjectDeterministic runs the year-by-year deterministic projector
// (spec §4.3).
func ProjectDeterministic(in projector.Inputs, a assumptions.Bundle) (projector.Result, error) {
	return projector.Run(in, a)
}

// RunMonteCarlo runs the stochastic simulator (spec §4.4).
func RunMonteCarlo(in projector.Inputs, a assumptions.Bundle, cfg montecarlo.Config) (montecarlo.Result, error) {
	return montecarlo.Simulate(in, a, cfg)
}

// AllocateGoalBudget distributes a monthly budget across competing goals
// (spec §4.5).
func AllocateGoalBudget(gs []goals.Goal, monthlyBudget float64, a assumptions.Bundle, cfg goals.Config) (goals.Result, error) {
	return goals.Allocate(gs, monthlyBudget, a, cfg)
}

// GenerateRebalancingTrades computes drift against a target allocation
// and, if it exceeds the threshold, the trades that restore it (spec
// §4.6).
func GenerateRebalancingTrades(holdings, target map[string]float64, a assumptions.Bundle, cfg rebalance.Config) rebalance.Result {
	return rebalance.Generate(holdings, target, a, cfg)
}
