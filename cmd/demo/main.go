// Command demo wires the assumptions registry, engine packages, and
// intention adapter together and prints a sample run of each intention.
// It replaces the teacher's connect-rpc HTTP server: this engine has no
// wire protocol of its own (spec §6), so the entrypoint is a plain
// stdout demonstration rather than a listener.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/castlemilk/finplan-engine/internal/adapter"
	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/goals"
	"github.com/castlemilk/finplan-engine/internal/montecarlo"
	"github.com/castlemilk/finplan-engine/internal/projector"
	"github.com/castlemilk/finplan-engine/internal/rebalance"
)

func main() {
	region := os.Getenv("FINENGINE_REGION")
	if region == "" {
		region = "IN"
	}

	numSimulations := 1000
	if v := os.Getenv("FINENGINE_SIMULATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			numSimulations = n
		}
	}

	seed := int64(42)
	if v := os.Getenv("FINENGINE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}

	log.Printf("finengine demo: region=%s simulations=%d seed=%d", region, numSimulations, seed)

	a := adapter.New(assumptions.Default)

	in := projector.Inputs{
		CurrentAge:        30,
		RetirementAge:     60,
		LifeExpectancy:    85,
		CurrentSavings:    1_000_000,
		MonthlyInvestment: 25_000,
		MonthlyExpenses:   50_000,
		AssetAllocation:   map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30},
	}

	retirement, err := a.RetirementOptimization(region, "", in)
	if err != nil {
		log.Fatalf("retirement optimization failed: %v", err)
	}
	fmt.Printf("\n== Retirement optimization ==\n%+v\n", retirement.Report)

	mc, err := a.MonteCarloRetirement(region, "", in, 360)
	if err != nil {
		log.Fatalf("monte carlo retirement failed: %v", err)
	}
	// The Monte Carlo intention always runs montecarlo.DefaultConfig();
	// FINENGINE_SIMULATIONS and FINENGINE_SEED are only logged above.
	fmt.Printf("\n== Monte Carlo retirement (N=%d) ==\n%+v\n", montecarlo.DefaultConfig().NumSimulations, mc.Report)

	projection, err := a.PortfolioProjection(region, "", in)
	if err != nil {
		log.Fatalf("portfolio projection failed: %v", err)
	}
	fmt.Printf("\n== Portfolio projection ==\n%+v\n", projection.Report)

	gs := []goals.Goal{
		{ID: "g1", Name: "Home down payment", TargetAmount: 2_000_000, TargetYear: 2031, Priority: goals.PriorityHigh},
		{ID: "g2", Name: "World trip", TargetAmount: 500_000, TargetYear: 2028, Priority: goals.PriorityLow},
	}
	funding, err := a.GoalFunding(region, "", gs, 40_000, goals.Config{CurrentYear: 2026})
	if err != nil {
		log.Fatalf("goal funding failed: %v", err)
	}
	fmt.Printf("\n== Goal funding ==\n%+v\n", funding.Report)

	holdings := map[string]float64{assumptions.AssetEquity: 850_000, assumptions.AssetDebt: 150_000}
	target := map[string]float64{assumptions.AssetEquity: 70, assumptions.AssetDebt: 30}
	rebalancing, err := a.Rebalancing(region, "", holdings, target, rebalance.Config{})
	if err != nil {
		log.Fatalf("rebalancing failed: %v", err)
	}
	fmt.Printf("\n== Rebalancing ==\n%+v\n", rebalancing.Report)
}
