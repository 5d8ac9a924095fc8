package projector

// Milestone is a projected portfolio value at a specific age, used by the
// "Portfolio projection" intention (spec §4.7) to highlight ages 40, 50,
// and 60. Not named in spec §3, since §3 only describes the timeline and
// summary types -- this is a supplemented convenience view over an
// existing Result.
type Milestone struct {
	Age            int
	PortfolioValue float64
}

// ExtractMilestones returns the timeline records at the requested ages,
// in the order the ages were requested. An age with no matching timeline
// record (outside the projection's horizon, or on a depleted plan that
// terminated early) is omitted rather than zero-padded, consistent with
// spec §9's "do not pad with zeros" guidance for truncated timelines.
func ExtractMilestones(timeline []Record, ages []int) []Milestone {
	byAge := make(map[int]float64, len(timeline))
	for _, r := range timeline {
		byAge[r.Age] = r.PortfolioValue
	}
	milestones := make([]Milestone, 0, len(ages))
	for _, age := range ages {
		if v, ok := byAge[age]; ok {
			milestones = append(milestones, Milestone{Age: age, PortfolioValue: v})
		}
	}
	return milestones
}
