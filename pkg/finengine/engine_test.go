package finengine_test

import (
	"testing"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/goals"
	"github.com/castlemilk/finplan-engine/internal/montecarlo"
	"github.com/castlemilk/finplan-engine/internal/projector"
	"github.com/castlemilk/finplan-engine/internal/rebalance"
	"github.com/castlemilk/finplan-engine/pkg/finengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseline() projector.Inputs {
	return projector.Inputs{
		CurrentAge:        30,
		RetirementAge:     60,
		LifeExpectancy:    85,
		CurrentSavings:    1_000_000,
		MonthlyInvestment: 25_000,
		MonthlyExpenses:   50_000,
		AssetAllocation:   map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30},
	}
}

// Scenario 1: baseline projection.
func TestScenario1_BaselineProjection(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	res, err := finengine.ProjectDeterministic(baseline(), a)
	require.NoError(t, err)

	require.Len(t, res.Timeline, 55)

	var age59, age60 *projector.Record
	var age40, age50 *projector.Record
	for i := range res.Timeline {
		r := &res.Timeline[i]
		switch r.Age {
		case 59:
			age59 = r
		case 60:
			age60 = r
		case 40:
			age40 = r
		case 50:
			age50 = r
		}
	}
	require.NotNil(t, age59)
	require.NotNil(t, age60)
	require.NotNil(t, age40)
	require.NotNil(t, age50)

	assert.Greater(t, age59.Contributions, 0.0)
	assert.Equal(t, 0.0, age60.Contributions)
	assert.Equal(t, 0.0, age59.Withdrawals)
	assert.Greater(t, age60.Withdrawals, 0.0)
	assert.Greater(t, res.Summary.RetirementCorpusNeeded, 10_000_000.0)
	assert.Greater(t, age50.PortfolioValue, age40.PortfolioValue)
}

// Scenario 2: depletion detection.
func TestScenario2_DepletionDetection(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	in := baseline()
	in.CurrentSavings = 100_000
	in.MonthlyInvestment = 5_000

	res, err := finengine.ProjectDeterministic(in, a)
	require.NoError(t, err)

	assert.Equal(t, projector.MetricDepletion, res.Summary.SuccessMetric)
	require.NotNil(t, res.Summary.DepletionAge)
	assert.Less(t, len(res.Timeline), 55)
}

// Scenario 3: surplus detection.
func TestScenario3_SurplusDetection(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	in := baseline()
	in.CurrentSavings = 50_000_000
	in.MonthlyInvestment = 100_000

	res, err := finengine.ProjectDeterministic(in, a)
	require.NoError(t, err)

	assert.Equal(t, projector.MetricSurplus, res.Summary.SuccessMetric)
	assert.Greater(t, res.Summary.FinalPortfolioValue, 2*res.Summary.RetirementCorpusNeeded)
}

// Scenario 4: allocation error.
func TestScenario4_AllocationError(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	in := baseline()
	in.AssetAllocation = map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 20}

	_, err = finengine.ProjectDeterministic(in, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocation")
	assert.Contains(t, err.Error(), "100%")
}

// Scenario 5: Monte Carlo reproducibility.
func TestScenario5_MonteCarloReproducibility(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	cfg := montecarlo.Config{NumSimulations: 100, Seed: 12345}
	res1, err := finengine.RunMonteCarlo(baseline(), a, cfg)
	require.NoError(t, err)
	res2, err := finengine.RunMonteCarlo(baseline(), a, cfg)
	require.NoError(t, err)

	assert.Equal(t, res1.SuccessProbability, res2.SuccessProbability)
	assert.Equal(t, res1.MedianOutcome, res2.MedianOutcome)
}

// Scenario 6: Monte Carlo risk monotonicity.
func TestScenario6_MonteCarloRiskMonotonicity(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	cfg := montecarlo.Config{NumSimulations: 200, Seed: 7}

	conservative := baseline()
	conservative.AssetAllocation = map[string]float64{assumptions.AssetEquity: 30, assumptions.AssetDebt: 70}
	aggressive := baseline()
	aggressive.AssetAllocation = map[string]float64{assumptions.AssetEquity: 90, assumptions.AssetDebt: 10}

	resConservative, err := finengine.RunMonteCarlo(conservative, a, cfg)
	require.NoError(t, err)
	resAggressive, err := finengine.RunMonteCarlo(aggressive, a, cfg)
	require.NoError(t, err)

	assert.Greater(t, resAggressive.Terminal.StdDev, resConservative.Terminal.StdDev)
}

// Scenario 7: rebalancer no-op.
func TestScenario7_RebalancerNoOp(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	holdings := map[string]float64{assumptions.AssetEquity: 700_000, assumptions.AssetDebt: 300_000}
	target := map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30}

	res := finengine.GenerateRebalancingTrades(holdings, target, a, rebalance.Config{})
	assert.False(t, res.NeedsRebalancing)
	assert.Empty(t, res.Trades)
}

// Scenario 8: rebalancer drift.
func TestScenario8_RebalancerDrift(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	holdings := map[string]float64{assumptions.AssetEquity: 850_000, assumptions.AssetDebt: 150_000}
	target := map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30}

	res := finengine.GenerateRebalancingTrades(holdings, target, a, rebalance.Config{})
	assert.InDelta(t, 15.0, res.MaxDrift, 0.5)
	require.Len(t, res.Trades, 2)

	var sellEquity, buyDebt bool
	for _, tr := range res.Trades {
		if tr.Asset == assumptions.AssetEquity && tr.Side == rebalance.Sell {
			sellEquity = true
		}
		if tr.Asset == assumptions.AssetDebt && tr.Side == rebalance.Buy {
			buyDebt = true
		}
	}
	assert.True(t, sellEquity)
	assert.True(t, buyDebt)
	assert.Greater(t, res.EstimatedCost, 0.0)
}

// Scenario 9: goal allocator priority.
func TestScenario9_GoalAllocatorPriority(t *testing.T) {
	a, err := finengine.GetAssumptions("IN", "2024-Q4")
	require.NoError(t, err)

	cfg := goals.Config{CurrentYear: 2026}
	gs := []goals.Goal{
		{ID: "g1", Name: "Home down payment", TargetAmount: 2_000_000, TargetYear: 2031, Priority: goals.PriorityHigh},
		{ID: "g2", Name: "Child education", TargetAmount: 3_000_000, TargetYear: 2036, Priority: goals.PriorityHigh},
		{ID: "g3", Name: "World trip", TargetAmount: 500_000, TargetYear: 2028, Priority: goals.PriorityLow},
	}

	prelim, err := finengine.AllocateGoalBudget(gs, 1_000_000_000, a, cfg)
	require.NoError(t, err)
	var highTotal float64
	for i, alloc := range prelim.Allocations {
		if gs[i].Priority == goals.PriorityHigh {
			highTotal += alloc.RequiredSIP
		}
	}

	res, err := finengine.AllocateGoalBudget(gs, highTotal, a, cfg)
	require.NoError(t, err)

	var lowAlloc *goals.Allocation
	for i := range res.Allocations {
		if res.Allocations[i].GoalID == "g3" {
			lowAlloc = &res.Allocations[i]
		}
	}
	require.NotNil(t, lowAlloc)
	assert.Equal(t, 0.0, lowAlloc.MonthlySIP)
	assert.Equal(t, goals.FeasibilityImpossible, lowAlloc.Feasibility)
	assert.NotEmpty(t, res.Conflicts)
}

func TestGetAssumptions_UnknownRegionReturnsAssumptionNotFound(t *testing.T) {
	_, err := finengine.GetAssumptions("ZZ", "2024-Q4")
	assert.Error(t, err)
}

func TestGetLatestAssumptions_ListsAcrossRegions(t *testing.T) {
	_, err := finengine.GetLatestAssumptions("US")
	require.NoError(t, err)
	_, err = finengine.GetLatestAssumptions("IN")
	require.NoError(t, err)
}
