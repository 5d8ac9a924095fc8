package goals

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/engineerrors"
	"github.com/castlemilk/finplan-engine/internal/kernel"
)

type goalMath struct {
	goal        Goal
	years       float64
	fvTarget    float64
	requiredSIP float64
}

// Allocate distributes monthlyBudget across gs by priority, per spec
// §4.5. A negative budget is rejected; an empty goal list returns an
// empty allocation with the entire budget marked Unallocated.
func Allocate(gs []Goal, monthlyBudget float64, a assumptions.Bundle, cfg Config) (Result, error) {
	if monthlyBudget < 0 {
		return Result{}, engineerrors.NewValidationError("monthly_budget", "must be non-negative")
	}

	planningReturn := cfg.PlanningReturn
	if planningReturn == 0 {
		planningReturn = DefaultPlanningReturn
	}
	currentYear := cfg.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	inflation := a.Inflation.MeanPct / 100

	if len(gs) == 0 {
		return Result{Unallocated: monthlyBudget, TotalMonthly: 0, BudgetUtilization: 0}, nil
	}

	maths := make([]goalMath, len(gs))
	for i, g := range gs {
		gm, err := computeGoalMath(g, currentYear, inflation, planningReturn)
		if err != nil {
			return Result{}, err
		}
		maths[i] = gm
	}

	order := make([]int, len(maths))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		gi, gj := maths[order[i]], maths[order[j]]
		if gi.goal.Priority != gj.goal.Priority {
			return gi.goal.Priority > gj.goal.Priority
		}
		return gi.years < gj.years
	})

	allocByIndex := make(map[int]Allocation, len(maths))
	var conflicts []string
	remaining := monthlyBudget
	var totalRequired float64

	for _, idx := range order {
		gm := maths[idx]
		totalRequired += gm.requiredSIP

		var granted float64
		var feasibility Feasibility
		switch {
		case remaining >= gm.requiredSIP:
			granted = gm.requiredSIP
			feasibility = FeasibilityOnTrack
			remaining -= granted
		case remaining > 0:
			granted = remaining
			ratio := granted / gm.requiredSIP
			if ratio > 0.70 {
				feasibility = FeasibilityTight
			} else {
				feasibility = FeasibilityUnderfunded
			}
			remaining = 0
			conflicts = append(conflicts, fmt.Sprintf("%s: funded %.0f of %.0f required monthly SIP", gm.goal.Name, granted, gm.requiredSIP))
		default:
			granted = 0
			feasibility = FeasibilityImpossible
			conflicts = append(conflicts, fmt.Sprintf("%s: no budget remaining, required monthly SIP %.0f", gm.goal.Name, gm.requiredSIP))
		}

		grownSavings := gm.goal.CurrentSavings * math.Pow(1+planningReturn, gm.years)
		annuityFV, _ := kernel.FutureValueAnnuity(granted, planningReturn/12, gm.years*12, kernel.AnnuityDue)
		projectedValue := grownSavings + annuityFV
		shortfall := math.Max(0, gm.fvTarget-projectedValue)

		allocByIndex[idx] = Allocation{
			GoalID:         gm.goal.ID,
			MonthlySIP:     granted,
			RequiredSIP:    gm.requiredSIP,
			Feasibility:    feasibility,
			ProjectedValue: projectedValue,
			Shortfall:      shortfall,
		}
	}

	allocations := make([]Allocation, len(gs))
	for i := range gs {
		allocations[i] = allocByIndex[i]
	}

	totalMonthly := monthlyBudget - remaining
	var utilization float64
	if monthlyBudget > 0 {
		utilization = 100 * totalMonthly / monthlyBudget
	}

	var recommendations []string
	if totalRequired > monthlyBudget {
		recommendations = append(recommendations, fmt.Sprintf(
			"increase monthly budget by %.0f to fully fund every goal, or defer the lowest-priority underfunded goals",
			totalRequired-monthlyBudget))
	}
	if remaining > 0 {
		recommendations = append(recommendations, fmt.Sprintf("%.0f of the monthly budget is unallocated", remaining))
	}

	return Result{
		Allocations:       allocations,
		TotalMonthly:      totalMonthly,
		Unallocated:       remaining,
		BudgetUtilization: utilization,
		Conflicts:         conflicts,
		Recommendations:   recommendations,
	}, nil
}

// computeGoalMath inflates a goal's target to its target year, grows its
// current savings forward at the fixed planning return, and derives the
// monthly SIP required to close the remaining gap (spec §4.5 step 2).
// current_savings is treated as growing at the planning return only and
// subtracted from the inflated target -- not itself inflation-adjusted a
// second time, resolving the double-counting ambiguity spec §9 flags.
func computeGoalMath(g Goal, currentYear int, inflation, planningReturn float64) (goalMath, error) {
	years := float64(g.TargetYear - currentYear)
	if years <= 0 {
		return goalMath{}, engineerrors.NewValidationError("target_year", fmt.Sprintf("goal %q: target_year must be strictly in the future", g.Name))
	}

	fvTarget, err := kernel.FutureValue(g.TargetAmount, inflation, years)
	if err != nil {
		return goalMath{}, engineerrors.NewValidationError("target_amount", err.Error())
	}

	grownSavings := g.CurrentSavings * math.Pow(1+planningReturn, years)
	remainingNeed := math.Max(0, fvTarget-grownSavings)

	var requiredSIP float64
	if remainingNeed > 0 {
		requiredSIP, err = kernel.RequiredPayment(remainingNeed, planningReturn, years, kernel.PeriodMonthly)
		if err != nil {
			return goalMath{}, engineerrors.NewValidationError("target_amount", err.Error())
		}
	}

	return goalMath{goal: g, years: years, fvTarget: fvTarget, requiredSIP: requiredSIP}, nil
}
