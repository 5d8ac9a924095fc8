package adapter

import (
	"testing"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/engineerrors"
	"github.com/castlemilk/finplan-engine/internal/goals"
	"github.com/castlemilk/finplan-engine/internal/projector"
	"github.com/castlemilk/finplan-engine/internal/rebalance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func realBundle(t *testing.T) assumptions.Bundle {
	t.Helper()
	b, err := assumptions.Default.Get("IN", "2024-Q4")
	require.NoError(t, err)
	return b
}

func baselineInputs() projector.Inputs {
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

func TestRetirementOptimization_UsesMockedRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("IN", "2024-Q4").Return(realBundle(t), nil)

	a := New(mock)
	res, err := a.RetirementOptimization("IN", "2024-Q4", baselineInputs())
	require.NoError(t, err)

	report, ok := res.Report.(RetirementOptimizationReport)
	require.True(t, ok)
	assert.NotEmpty(t, report.SuccessMetric)
	assert.NotEmpty(t, report.Recommendation)
	assert.NotEmpty(t, res.Steps)
	for _, step := range res.Steps {
		assert.NotEmpty(t, step.StepID)
		assert.Greater(t, step.DurationMS, 0)
	}
}

func TestRetirementOptimization_PropagatesAssumptionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("ZZ", "9999").Return(assumptions.Bundle{}, &engineerrors.AssumptionNotFoundError{Region: "ZZ", Version: "9999"})

	a := New(mock)
	_, err := a.RetirementOptimization("ZZ", "9999", baselineInputs())
	assert.Error(t, err)
}

func TestRetirementOptimization_EmptyVersionUsesGetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().GetLatest("IN").Return(realBundle(t), nil)

	a := New(mock)
	_, err := a.RetirementOptimization("IN", "", baselineInputs())
	require.NoError(t, err)
}

func TestMonteCarloRetirement_ReportsPercentilesAndRecommendation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("IN", "2024-Q4").Return(realBundle(t), nil)

	a := New(mock)
	res, err := a.MonteCarloRetirement("IN", "2024-Q4", baselineInputs(), 360)
	require.NoError(t, err)

	report, ok := res.Report.(MonteCarloRetirementReport)
	require.True(t, ok)
	assert.LessOrEqual(t, report.P10, report.P90)
	assert.NotEmpty(t, report.Recommendation)
}

func TestPortfolioProjection_ReturnsMilestones(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("IN", "2024-Q4").Return(realBundle(t), nil)

	a := New(mock)
	res, err := a.PortfolioProjection("IN", "2024-Q4", baselineInputs())
	require.NoError(t, err)

	report, ok := res.Report.(PortfolioProjectionReport)
	require.True(t, ok)
	assert.NotEmpty(t, report.Milestones)
	for _, m := range report.Milestones {
		assert.Contains(t, []int{40, 50, 60}, m.Age)
	}
}

func TestGoalFunding_DelegatesToAllocator(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("IN", "2024-Q4").Return(realBundle(t), nil)

	a := New(mock)
	gs := []goals.Goal{{ID: "g1", Name: "Vacation", TargetAmount: 200_000, TargetYear: 2030, Priority: goals.PriorityHigh}}
	res, err := a.GoalFunding("IN", "2024-Q4", gs, 20_000, goals.Config{CurrentYear: 2026})
	require.NoError(t, err)

	report, ok := res.Report.(GoalFundingReport)
	require.True(t, ok)
	assert.InDelta(t, 20_000, report.TotalMonthly+report.Unallocated, 1e-6)
}

func TestRebalancing_DelegatesToRebalancer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := assumptions.NewMockRegistry(ctrl)
	mock.EXPECT().Get("IN", "2024-Q4").Return(realBundle(t), nil)

	a := New(mock)
	holdings := map[string]float64{assumptions.AssetEquity: 850_000, assumptions.AssetDebt: 150_000}
	target := map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30}
	res, err := a.Rebalancing("IN", "2024-Q4", holdings, target, rebalance.Config{})
	require.NoError(t, err)

	report, ok := res.Report.(RebalancingReport)
	require.True(t, ok)
	assert.True(t, report.NeedsRebalancing)
	assert.Equal(t, 2, report.TradeCount)
	assert.Greater(t, report.EstimatedCost, 0.0)
}
