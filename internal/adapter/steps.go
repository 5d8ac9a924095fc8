package adapter

import "github.com/google/uuid"

// thinkingSteps stamps a fixed, per-intention sequence of presentation
// labels with fresh UUIDs and hard-coded durations (spec §4.7, §9). The
// labels and durations are pre-measured constants copied per call; the
// only thing that varies between calls is StepID, which never feeds back
// into engine behavior.
func thinkingSteps(labels ...string) []Step {
	durations := map[string]int{
		"loading assumptions":       120,
		"running projection":        340,
		"evaluating outcome":        90,
		"running monte carlo paths": 1800,
		"aggregating percentiles":   210,
		"sorting goals by priority": 60,
		"allocating monthly budget": 150,
		"measuring drift":           80,
		"generating trades":         140,
	}
	steps := make([]Step, 0, len(labels))
	for _, label := range labels {
		ms, ok := durations[label]
		if !ok {
			ms = 100
		}
		steps = append(steps, Step{StepID: uuid.New().String(), Label: label, DurationMS: ms})
	}
	return steps
}
