package engine

import "time"

// Budget tracks a single flat wall-clock deadline for one FindBestMove
// call. This is deliberately simpler than a whole-game UCI time control
// (no optimum/maximum split, no stability-based extension) since spec.md
// §4.6 only asks for one deadline per call.
type Budget struct {
	start    time.Time
	duration time.Duration
}

// NewBudget starts a budget's clock running now, expiring after d.
func NewBudget(d time.Duration) Budget {
	return Budget{start: time.Now(), duration: d}
}

// Elapsed returns the time spent since the budget started.
func (bu Budget) Elapsed() time.Duration {
	return time.Since(bu.start)
}

// Expired reports whether the budget's duration has passed.
func (bu Budget) Expired() bool {
	return bu.Elapsed() >= bu.duration
}
