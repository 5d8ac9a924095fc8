// Package montecarlo runs the stochastic projection described in spec
// §4.4: N independent seeded paths through the same year-stepping loop
// the deterministic projector uses, aggregated into a success
// probability, percentile paths, and a shortfall-risk summary.
package montecarlo

import "github.com/castlemilk/finplan-engine/internal/projector"

// TimeStep selects the simulation's compounding period. Only Annual is
// implemented in this spec; Monthly is reserved (spec §4.4).
type TimeStep string

const (
	Annual  TimeStep = "annual"
	Monthly TimeStep = "monthly"
)

// Config controls a simulation run (spec §6).
type Config struct {
	NumSimulations int
	Seed           int64
	TimeStep       TimeStep
}

// DefaultConfig matches spec §4.4's defaults: 1000 paths, base seed 42,
// annual stepping.
func DefaultConfig() Config {
	return Config{NumSimulations: 1000, Seed: 42, TimeStep: Annual}
}

// TerminalDistribution summarizes the terminal portfolio values across
// every path (spec §3.5).
type TerminalDistribution struct {
	Mean   float64
	Median float64
	StdDev float64
	Values []float64
}

// ShortfallRisk summarizes the failure side of the distribution (spec
// §3.5).
type ShortfallRisk struct {
	Probability     float64
	AverageShortfall float64
	WorstCase        float64
}

// Result is the full Monte Carlo output (spec §3.5). PercentilePaths
// holds the entire timeline of the single simulated path whose terminal
// value sits at that percentile rank -- not an element-wise aggregate
// across paths.
type Result struct {
	SuccessProbability float64
	MedianOutcome      float64
	PercentilePaths    map[int]projector.Result
	Terminal           TerminalDistribution
	ShortfallRisk      ShortfallRisk
	AssumptionsVersion string
}
