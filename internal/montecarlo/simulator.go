package montecarlo

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"github.com/castlemilk/finplan-engine/internal/assumptions"
	"github.com/castlemilk/finplan-engine/internal/kernel"
	"github.com/castlemilk/finplan-engine/internal/projector"
)

var percentileRanks = []int{10, 25, 50, 75, 90}

// Simulate runs cfg.NumSimulations independent stochastic paths and
// aggregates them per spec §4.4. Parallelism is via a bounded worker
// pool over path indices (grounded on aristath-sentinel's
// EvaluateMonteCarlo, generalized from one goroutine per path to a
// GOMAXPROCS-sized pool since path count can reach 10 000); determinism
// is unaffected by worker count because every path's RNG stream is
// seeded independently as base_seed + path_index (spec §5).
func Simulate(in projector.Inputs, a assumptions.Bundle, cfg Config) (Result, error) {
	if err := projector.Validate(in, a); err != nil {
		return Result{}, err
	}
	if cfg.NumSimulations <= 0 {
		cfg.NumSimulations = 1000
	}
	if cfg.TimeStep == "" {
		cfg.TimeStep = Annual
	}
	if cfg.TimeStep != Annual {
		return Result{}, fmt.Errorf("montecarlo: time_step %q is not implemented in this spec", cfg.TimeStep)
	}

	n := cfg.NumSimulations
	paths := make([]projector.Result, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for i := range indices {
				paths[i] = simulateOnePath(in, a, cfg.Seed+int64(i))
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}

	return aggregate(paths, a.Version), nil
}

// simulateOnePath walks the shared stepping loop with a per-year sampled
// portfolio return in place of the deterministic expected return (spec
// §4.4 step 2): each asset's yearly return is drawn independently from
// Normal(mean, vol) using that asset's nominal parameters, then combined
// by the fixed allocation weights. Correlation is deliberately not
// applied -- see DESIGN.md.
func simulateOnePath(in projector.Inputs, a assumptions.Bundle, seed int64) projector.Result {
	rng := kernel.NewRNG(seed)
	assetIDs := a.AssetIDs()

	sampleReturn := func(_ int) float64 {
		var total float64
		for _, id := range assetIDs {
			weight, ok := in.AssetAllocation[id]
			if !ok || weight == 0 {
				continue
			}
			params := a.Assets[id]
			r := rng.NormalWith(params.Nominal.MeanPct/100, params.Nominal.VolPct/100)
			total += (weight / 100) * r
		}
		return total
	}

	// The yearly returns come from sampleReturn; expectedReturn is still
	// passed because the path's summary discounts the corpus needed at its
	// real equivalent, as the deterministic projector does.
	res, _ := projector.RunWithSampler(in, a, projector.ExpectedNominalReturn(a, in.AssetAllocation), sampleReturn)
	return res
}

func aggregate(paths []projector.Result, version string) Result {
	n := len(paths)
	terminal := make([]float64, n)
	for i, p := range paths {
		terminal[i] = p.Summary.FinalPortfolioValue
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return terminal[order[i]] < terminal[order[j]]
	})

	var successes int
	for _, v := range terminal {
		if v > 0 {
			successes++
		}
	}
	successProbability := float64(successes) / float64(n)

	percentilePaths := make(map[int]projector.Result, len(percentileRanks))
	for _, p := range percentileRanks {
		idx := int(math.Floor(float64(n) * float64(p) / 100))
		if idx >= n {
			idx = n - 1
		}
		percentilePaths[p] = paths[order[idx]]
	}

	var shortfallSum float64
	var shortfallCount int
	for _, p := range paths {
		if p.Summary.FinalPortfolioValue > 0 {
			continue
		}
		shortfallCount++
		if len(p.Timeline) > 0 {
			shortfallSum += p.Timeline[len(p.Timeline)-1].Deficit
		}
	}
	var averageShortfall float64
	if shortfallCount > 0 {
		averageShortfall = shortfallSum / float64(shortfallCount)
	}

	worstCase := terminal[order[0]]

	return Result{
		SuccessProbability: successProbability,
		MedianOutcome:      kernel.Median(terminal),
		PercentilePaths:    percentilePaths,
		Terminal: TerminalDistribution{
			Mean:   kernel.Mean(terminal),
			Median: kernel.Median(terminal),
			StdDev: kernel.StdDev(terminal),
			Values: terminal,
		},
		ShortfallRisk: ShortfallRisk{
			Probability:      1 - successProbability,
			AverageShortfall: averageShortfall,
			WorstCase:        worstCase,
		},
		AssumptionsVersion: version,
	}
}
