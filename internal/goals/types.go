// Package goals implements the priority-constrained monthly-budget
// allocator from spec §4.5: goals are inflated to their target year,
// sorted by priority and urgency, then funded greedily from a fixed
// monthly budget with a feasibility classification per goal.
package goals

// Priority is the closed set of goal priorities (spec §3.6). Higher
// values are more urgent; the allocator sorts descending by this rank.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Feasibility is the closed set of per-goal funding outcomes (spec §3.6).
type Feasibility string

const (
	FeasibilityOnTrack    Feasibility = "on-track"
	FeasibilityTight      Feasibility = "tight"
	FeasibilityUnderfunded Feasibility = "underfunded"
	FeasibilityImpossible Feasibility = "impossible"
)

// Goal is one funding target (spec §3.6).
type Goal struct {
	ID             string
	Name           string
	TargetAmount   float64
	TargetYear     int
	Priority       Priority
	CurrentSavings float64
}

// Allocation is one goal's funding outcome (spec §3.6).
type Allocation struct {
	GoalID         string
	MonthlySIP     float64
	RequiredSIP    float64
	Feasibility    Feasibility
	ProjectedValue float64
	Shortfall      float64
}

// DefaultPlanningReturn is the hard-coded 10% annual planning return
// spec §4.5 mandates for goal funding math, kept independent of the
// portfolio's actual asset allocation so SIPs stay comparable across
// users (spec §9). Ported as a named constant, not inline magic, per
// spec §9's explicit instruction.
const DefaultPlanningReturn = 0.10

// Config controls one allocation run.
type Config struct {
	// PlanningReturn overrides DefaultPlanningReturn when non-zero.
	PlanningReturn float64
	// CurrentYear is the calendar year allocation math treats as "now".
	// Left at zero, it defaults to the wall-clock year at call time; the
	// engine's other components take no ambient time input, but a goal's
	// target year is only meaningful relative to some "now" and the
	// pure-input path (an explicit CurrentYear) is what test-suite
	// determinism relies on.
	CurrentYear int
}

// Result is the aggregate allocation output (spec §3.6).
type Result struct {
	Allocations       []Allocation
	TotalMonthly      float64
	Unallocated       float64
	BudgetUtilization float64
	Conflicts         []string
	Recommendations   []string
}
