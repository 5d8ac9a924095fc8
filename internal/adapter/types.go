// Package adapter is the Intention Adapter (spec §4.7): a thin façade
// that sequences the engine components and shapes their output for a UI,
// generalized from the teacher's service.FinanceService -- a struct
// holding a store/registry dependency, with one method per intention,
// each validating input, calling into the engine, and returning a typed
// response.
package adapter

// Step is one entry in an intention's fixed "thinking step" sequence
// (spec §4.7, §9). Steps are presentation artifacts only: StepID is
// stamped with a random UUID and DurationMS is a hard-coded, pre-measured
// value. Neither ever influences engine output, so their non-determinism
// is safe.
type Step struct {
	StepID     string
	Label      string
	DurationMS int
}

// Result is the uniform {steps, report} shape every intention handler
// returns (spec §4.7). Report holds the intention-specific payload.
type Result struct {
	Steps  []Step
	Report any
}

// RetirementOptimizationReport is the report payload for
// Adapter.RetirementOptimization.
type RetirementOptimizationReport struct {
	CorpusAtRetirement float64
	CorpusNeeded       float64
	FinalPortfolioValue float64
	SuccessMetric       string
	Recommendation      string
}

// MonteCarloRetirementReport is the report payload for
// Adapter.MonteCarloRetirement.
type MonteCarloRetirementReport struct {
	SuccessProbability float64
	Median             float64
	P10                float64
	P90                float64
	Recommendation     string
}

// Milestone is a single named-age checkpoint in a projected timeline
// (spec §4.7 "highlights milestone values at ages 40, 50, and 60"; not a
// type spec.md's data model names directly, added here to carry that
// requirement -- mirrors projector.Milestone).
type Milestone struct {
	Age            int
	PortfolioValue float64
}

// PortfolioProjectionReport is the report payload for
// Adapter.PortfolioProjection.
type PortfolioProjectionReport struct {
	Milestones []Milestone
	SuccessMetric string
}

// GoalFundingReport is the report payload for Adapter.GoalFunding.
type GoalFundingReport struct {
	TotalMonthly      float64
	Unallocated       float64
	BudgetUtilization float64
	Conflicts         []string
	Recommendations   []string
}

// RebalancingReport is the report payload for Adapter.Rebalancing.
type RebalancingReport struct {
	NeedsRebalancing bool
	MaxDrift         float64
	TradeCount       int
	EstimatedCost    float64
}
