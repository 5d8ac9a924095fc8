package projector

import (
	"math"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/engineerrors"
)

const allocationSumEpsilon = 0.01

// Validate enforces every invariant from spec §3.2 before a projection is
// allowed to run: age ranges, non-negative monetary values, an allocation
// summing to 100%, and every allocation key existing in the loaded
// assumptions bundle.
func Validate(in Inputs, a assumptions.Bundle) error {
	if in.CurrentAge < 18 || in.CurrentAge > 100 {
		return engineerrors.NewValidationError("current_age", "must be between 18 and 100")
	}
	if in.RetirementAge <= in.CurrentAge {
		return engineerrors.NewValidationError("retirement_age", "must be greater than current_age")
	}
	if in.LifeExpectancy <= in.RetirementAge {
		return engineerrors.NewValidationError("life_expectancy", "must be greater than retirement_age")
	}
	if in.CurrentSavings < 0 {
		return engineerrors.NewValidationError("current_savings", "must be non-negative")
	}
	if in.MonthlyInvestment < 0 {
		return engineerrors.NewValidationError("monthly_investment", "must be non-negative")
	}
	if in.MonthlyExpenses < 0 {
		return engineerrors.NewValidationError("monthly_expenses", "must be non-negative")
	}

	var sum float64
	for asset, weight := range in.AssetAllocation {
		if weight < 0 || weight > 100 {
			return engineerrors.NewValidationError("asset_allocation", "weight for "+asset+" must be in [0, 100]")
		}
		if _, ok := a.Assets[asset]; !ok {
			return engineerrors.NewValidationError("asset_allocation", "unknown asset id "+asset)
		}
		sum += weight
	}
	if math.Abs(sum-100) > allocationSumEpsilon {
		return engineerrors.NewValidationError("asset_allocation", "weights must sum to 100%")
	}

	for _, fe := range in.FutureExpenses {
		if fe.YearOffset < 0 {
			return engineerrors.NewValidationError("future_expenses", "year_offset must be non-negative")
		}
		if fe.AmountToday < 0 {
			return engineerrors.NewValidationError("future_expenses", "amount_today must be non-negative")
		}
	}

	return nil
}
