package projector

import (
	"math"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/kernel"
)

// ExpectedNominalReturn computes the allocation-weighted sum of per-asset
// nominal means (spec §4.3 step 2). Iteration follows the bundle's stable
// asset-id order so floating-point accumulation is reproducible (spec
// §9).
func ExpectedNominalReturn(a assumptions.Bundle, allocation map[string]float64) float64 {
	var total float64
	for _, id := range a.AssetIDs() {
		weight, ok := allocation[id]
		if !ok || weight == 0 {
			continue
		}
		total += (weight / 100) * (a.Assets[id].Nominal.MeanPct / 100)
	}
	return total
}

// Run walks the household timeline year by year and returns the
// deterministic projection result described in spec §4.3-§4.4. Run
// validates its own input; callers do not need to call Validate
// separately.
func Run(in Inputs, a assumptions.Bundle) (Result, error) {
	if err := Validate(in, a); err != nil {
		return Result{}, err
	}
	return RunWithSampler(in, a, ExpectedNominalReturn(a, in.AssetAllocation), nil)
}

// RunWithSampler is the shared stepping loop used by both the
// deterministic projector and, with a per-year sampled return function,
// the Monte Carlo simulator (spec §4.4 step 3: "all other steps... are
// identical to the deterministic projector"). sampleReturn, when
// non-nil, is called once per year to obtain that year's portfolio
// return in place of the fixed expected return; this is how
// montecarlo.Simulate reuses this loop while keeping its own RNG
// stream. Callers that skip Run (and therefore Validate) are
// responsible for validating in themselves.
func RunWithSampler(in Inputs, a assumptions.Bundle, expectedReturn float64, sampleReturn func(year int) float64) (Result, error) {
	inflation := a.Inflation.MeanPct / 100
	expenseGrowth := inflation
	if in.ExpenseGrowthRate != nil {
		expenseGrowth = *in.ExpenseGrowthRate
	}
	investmentGrowth := inflation + 0.01
	if in.InvestmentGrowthRate != nil {
		investmentGrowth = *in.InvestmentGrowthRate
	}

	futureByYear := make(map[int][]FutureExpense)
	for _, fe := range in.FutureExpenses {
		futureByYear[fe.YearOffset] = append(futureByYear[fe.YearOffset], fe)
	}

	horizon := in.LifeExpectancy - in.CurrentAge
	timeline := make([]Record, 0, horizon)

	portfolio := in.CurrentSavings
	var depletionAge *int

	for t := 0; t < horizon; t++ {
		age := in.CurrentAge + t
		isRetired := age >= in.RetirementAge

		annualExpenses := in.MonthlyExpenses * 12 * math.Pow(1+expenseGrowth, float64(t))
		for _, fe := range futureByYear[t] {
			annualExpenses += fe.AmountToday * math.Pow(1+inflation, float64(t))
		}

		var contributions float64
		if !isRetired {
			contributions = in.MonthlyInvestment * 12 * math.Pow(1+investmentGrowth, float64(t))
		}

		var withdrawals float64
		if isRetired {
			withdrawals = annualExpenses
		}

		periodReturn := expectedReturn
		if sampleReturn != nil {
			periodReturn = sampleReturn(t)
		}
		investmentReturn := portfolio * periodReturn

		portfolioBeforeWithdrawal := portfolio + investmentReturn + contributions
		portfolio = portfolioBeforeWithdrawal - withdrawals
		var deficit float64
		if portfolio < 0 {
			deficit = -portfolio
			portfolio = 0
		}

		realReturn := investmentReturn / math.Pow(1+inflation, float64(t))

		var withdrawalRate *float64
		if withdrawals > 0 && portfolioBeforeWithdrawal > 0 {
			rate := withdrawals / portfolioBeforeWithdrawal
			withdrawalRate = &rate
		}

		timeline = append(timeline, Record{
			YearOffset:       t,
			Age:              age,
			PortfolioValue:   portfolio,
			Income:           0,
			Expenses:         annualExpenses,
			NetCashflow:      contributions - withdrawals,
			Contributions:    contributions,
			Withdrawals:      withdrawals,
			InvestmentReturn: investmentReturn,
			RealReturn:       realReturn,
			WithdrawalRate:   withdrawalRate,
			Deficit:          deficit,
		})

		if portfolio == 0 && isRetired {
			depleted := age
			depletionAge = &depleted
			break
		}
	}

	summary := summarize(in, a, timeline, expectedReturn, inflation, depletionAge)
	return Result{
		Timeline:           timeline,
		Summary:            summary,
		AssumptionsVersion: a.Version,
	}, nil
}

func summarize(in Inputs, a assumptions.Bundle, timeline []Record, portfolioReturn, inflation float64, depletionAge *int) Summary {
	final := timeline[len(timeline)-1]

	var retirementRecord *Record
	for i := range timeline {
		if timeline[i].Age == in.RetirementAge {
			retirementRecord = &timeline[i]
			break
		}
	}
	var corpusAtRetirement float64
	var retirementYearExpense float64
	if retirementRecord != nil {
		corpusAtRetirement = retirementRecord.PortfolioValue
		retirementYearExpense = retirementRecord.Expenses
	}

	realReturn := kernel.NominalToReal(portfolioReturn, inflation)
	postRetirementYears := float64(in.LifeExpectancy - in.RetirementAge)
	corpusNeeded, _ := kernel.PresentValueAnnuity(retirementYearExpense, realReturn, postRetirementYears)

	var metric SuccessMetric
	switch {
	case depletionAge != nil:
		metric = MetricDepletion
	case corpusAtRetirement > corpusNeeded:
		metric = MetricSurplus
	case corpusNeeded == 0 || (corpusNeeded-corpusAtRetirement)/corpusNeeded <= 0.10:
		metric = MetricOnTrack
	default:
		metric = MetricShortfall
	}

	return Summary{
		RetirementCorpusNeeded:      corpusNeeded,
		ProjectedCorpusAtRetirement: corpusAtRetirement,
		FinalPortfolioValue:         final.PortfolioValue,
		DepletionAge:                depletionAge,
		SuccessMetric:               metric,
	}
}
