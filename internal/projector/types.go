// Package projector implements the deterministic, single expected-value
// cashflow projection from spec §4.3: a year-by-year walk from
// current_age to life_expectancy that produces a timeline plus a summary
// classification of the plan's outcome.
package projector

// FutureExpense is a one-time outflow scheduled at a given year offset,
// expressed in today's money (spec §3.2).
type FutureExpense struct {
	YearOffset int
	AmountToday float64
	Label       string
}

// Inputs is the projection request (spec §3.2).
type Inputs struct {
	CurrentAge      int
	RetirementAge   int
	LifeExpectancy  int
	CurrentSavings  float64
	MonthlyInvestment float64
	MonthlyExpenses   float64

	// InvestmentGrowthRate and ExpenseGrowthRate are optional overrides.
	// A nil pointer means "use the assumptions-derived default" (spec
	// §4.3 step 3).
	InvestmentGrowthRate *float64
	ExpenseGrowthRate    *float64

	// AssetAllocation maps asset id to a percentage weight; weights must
	// sum to 100 +/- 0.01 (spec §3.2, §8 "Allocation closure").
	AssetAllocation map[string]float64

	FutureExpenses []FutureExpense
}

// Record is one yearly projection element (spec §3.3).
type Record struct {
	YearOffset       int
	Age              int
	PortfolioValue   float64
	Income           float64 // reserved, always 0 in this spec
	Expenses         float64
	NetCashflow      float64
	Contributions    float64
	Withdrawals      float64
	InvestmentReturn float64
	RealReturn       float64
	WithdrawalRate   *float64

	// Deficit is how far withdrawals exceeded the portfolio available to
	// fund them this year (max(0, withdrawals - portfolioBeforeWithdrawal)).
	// Zero in every year except the one where the plan actually runs dry;
	// the Monte Carlo simulator uses the terminal record's Deficit as the
	// path's shortfall magnitude (spec §3.5).
	Deficit float64
}

// SuccessMetric is the closed set of outcome classifications (spec §3.4).
type SuccessMetric string

const (
	MetricSurplus   SuccessMetric = "surplus"
	MetricOnTrack   SuccessMetric = "on-track"
	MetricShortfall SuccessMetric = "shortfall"
	MetricDepletion SuccessMetric = "depletion"
)

// Summary aggregates the projection's headline figures (spec §3.4).
type Summary struct {
	RetirementCorpusNeeded      float64
	ProjectedCorpusAtRetirement float64
	FinalPortfolioValue         float64
	DepletionAge                *int
	SuccessMetric                SuccessMetric
}

// Result is the full projector output: a timeline plus its summary.
type Result struct {
	Timeline           []Record
	Summary            Summary
	AssumptionsVersion string
}
