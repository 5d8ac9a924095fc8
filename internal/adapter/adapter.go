package adapter

import (
	"fmt"
	"math"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/goals"
	"github.com/castlemilk/finplan-engine/internal/montecarlo"
	"github.com/castlemilk/finplan-engine/internal/projector"
	"github.com/castlemilk/finplan-engine/internal/rebalance"
)

// defaultMilestoneAges is the fixed set of ages the Portfolio projection
// intention highlights (spec §4.7).
var defaultMilestoneAges = []int{40, 50, 60}

// Adapter is the Intention Adapter (spec §4.7). It holds an
// assumptions.Registry dependency, exactly as service.FinanceService
// holds a store.Store, and exposes one method per UI intention.
type Adapter struct {
	registry assumptions.Registry
}

// New builds an Adapter over the given registry.
func New(registry assumptions.Registry) *Adapter {
	return &Adapter{registry: registry}
}

func (a *Adapter) bundle(region, version string) (assumptions.Bundle, error) {
	if version == "" {
		return a.registry.GetLatest(region)
	}
	return a.registry.Get(region, version)
}

// RetirementOptimization runs the deterministic projector and shapes a
// shortfall/surplus recommendation from its success metric (spec §4.7).
func (a *Adapter) RetirementOptimization(region, version string, in projector.Inputs) (Result, error) {
	steps := thinkingSteps("loading assumptions", "running projection", "evaluating outcome")

	bundle, err := a.bundle(region, version)
	if err != nil {
		return Result{}, err
	}

	res, err := projector.Run(in, bundle)
	if err != nil {
		return Result{}, err
	}

	var recommendation string
	switch res.Summary.SuccessMetric {
	case projector.MetricDepletion:
		recommendation = "current plan depletes the portfolio before life expectancy; increase monthly investment or reduce retirement expenses"
	case projector.MetricShortfall:
		recommendation = "projected corpus falls short of the required corpus; consider increasing monthly investment"
	case projector.MetricSurplus:
		recommendation = "projected corpus exceeds the required corpus; consider reallocating surplus toward other goals"
	default:
		recommendation = "plan is on track"
	}

	return Result{
		Steps: steps,
		Report: RetirementOptimizationReport{
			CorpusAtRetirement:  res.Summary.ProjectedCorpusAtRetirement,
			CorpusNeeded:        res.Summary.RetirementCorpusNeeded,
			FinalPortfolioValue: res.Summary.FinalPortfolioValue,
			SuccessMetric:       string(res.Summary.SuccessMetric),
			Recommendation:      recommendation,
		},
	}, nil
}

// MonteCarloRetirement runs the simulator with the spec-mandated defaults
// (N=1000, seed=42) and, when success_probability < 0.8, recommends
// raising the monthly SIP by the shortfall gap divided by the months
// remaining until retirement (spec §4.7). The gap is the deterministic
// corpus_needed less the simulator's median terminal outcome -- the
// clearest reading of "gap" available given spec.md names no other
// funding-gap quantity for this intention.
func (a *Adapter) MonteCarloRetirement(region, version string, in projector.Inputs, monthsUntilRetirement int) (Result, error) {
	steps := thinkingSteps("loading assumptions", "running monte carlo paths", "aggregating percentiles")

	bundle, err := a.bundle(region, version)
	if err != nil {
		return Result{}, err
	}

	det, err := projector.Run(in, bundle)
	if err != nil {
		return Result{}, err
	}

	mc, err := montecarlo.Simulate(in, bundle, montecarlo.DefaultConfig())
	if err != nil {
		return Result{}, err
	}

	var recommendation string
	if mc.SuccessProbability < 0.8 && monthsUntilRetirement > 0 {
		gap := math.Max(0, det.Summary.RetirementCorpusNeeded-mc.MedianOutcome)
		extraSIP := gap / float64(monthsUntilRetirement)
		recommendation = fmt.Sprintf("success probability %.0f%% is below target; raise monthly SIP by approximately %.0f to close the gap", mc.SuccessProbability*100, extraSIP)
	} else {
		recommendation = "plan meets the target success probability"
	}

	p10 := mc.PercentilePaths[10].Summary.FinalPortfolioValue
	p90 := mc.PercentilePaths[90].Summary.FinalPortfolioValue

	return Result{
		Steps: steps,
		Report: MonteCarloRetirementReport{
			SuccessProbability: mc.SuccessProbability,
			Median:             mc.MedianOutcome,
			P10:                p10,
			P90:                p90,
			Recommendation:     recommendation,
		},
	}, nil
}

// PortfolioProjection runs the deterministic projector and extracts
// milestone values at ages 40, 50, and 60 (spec §4.7).
func (a *Adapter) PortfolioProjection(region, version string, in projector.Inputs) (Result, error) {
	steps := thinkingSteps("loading assumptions", "running projection")

	bundle, err := a.bundle(region, version)
	if err != nil {
		return Result{}, err
	}

	res, err := projector.Run(in, bundle)
	if err != nil {
		return Result{}, err
	}

	pm := projector.ExtractMilestones(res.Timeline, defaultMilestoneAges)
	milestones := make([]Milestone, len(pm))
	for i, m := range pm {
		milestones[i] = Milestone{Age: m.Age, PortfolioValue: m.PortfolioValue}
	}

	return Result{
		Steps: steps,
		Report: PortfolioProjectionReport{
			Milestones:    milestones,
			SuccessMetric: string(res.Summary.SuccessMetric),
		},
	}, nil
}

// GoalFunding runs the goal allocator against a monthly budget (spec
// §4.7).
func (a *Adapter) GoalFunding(region, version string, gs []goals.Goal, monthlyBudget float64, cfg goals.Config) (Result, error) {
	steps := thinkingSteps("loading assumptions", "sorting goals by priority", "allocating monthly budget")

	bundle, err := a.bundle(region, version)
	if err != nil {
		return Result{}, err
	}

	res, err := goals.Allocate(gs, monthlyBudget, bundle, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Steps: steps,
		Report: GoalFundingReport{
			TotalMonthly:      res.TotalMonthly,
			Unallocated:       res.Unallocated,
			BudgetUtilization: res.BudgetUtilization,
			Conflicts:         res.Conflicts,
			Recommendations:   res.Recommendations,
		},
	}, nil
}

// Rebalancing runs the rebalancer against a current portfolio and target
// allocation (spec §4.7).
func (a *Adapter) Rebalancing(region, version string, holdings, target map[string]float64, cfg rebalance.Config) (Result, error) {
	steps := thinkingSteps("loading assumptions", "measuring drift", "generating trades")

	bundle, err := a.bundle(region, version)
	if err != nil {
		return Result{}, err
	}

	res := rebalance.Generate(holdings, target, bundle, cfg)

	return Result{
		Steps: steps,
		Report: RebalancingReport{
			NeedsRebalancing: res.NeedsRebalancing,
			MaxDrift:         res.MaxDrift,
			TradeCount:       len(res.Trades),
			EstimatedCost:    res.EstimatedCost,
		},
	}, nil
}
