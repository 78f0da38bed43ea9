package core

import "time"

// DefaultMaxCatchUp caps how many ticks a single Advance may report after a stall.
const DefaultMaxCatchUp = 5

// FixedStep turns irregular wall-clock wakeups into a whole number of
// fixed-length simulation ticks. Leftover time carries over to the next call,
// so the long-run tick rate matches the configured rate even when the
// platform timer drifts.
type FixedStep struct {
	interval time.Duration
	maxSteps int
	last     time.Time
	acc      time.Duration
}

// NewFixedStep creates a scheduler for the given ticks per second.
// Non-positive rates fall back to 60.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{
		interval: time.Second / time.Duration(tickRate),
		maxSteps: DefaultMaxCatchUp,
	}
}

// Interval returns the length of one tick.
func (f *FixedStep) Interval() time.Duration {
	return f.interval
}

// Advance reports how many ticks should run at wall time now.
// The first call primes the scheduler and always yields one tick.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}

	elapsed := now.Sub(f.last)
	f.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	f.acc += elapsed
	steps := int(f.acc / f.interval)
	f.acc -= time.Duration(steps) * f.interval

	// Drop the backlog instead of fast-forwarding through it
	if steps > f.maxSteps {
		steps = f.maxSteps
		f.acc = 0
	}
	return steps
}

// Reset forgets accumulated time; the next Advance primes again.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.acc = 0
}

// TickTime returns the simulation timestamp of the given tick number,
// measured from epoch.
func TickTime(epoch time.Time, tick uint64, interval time.Duration) time.Time {
	return epoch.Add(time.Duration(tick) * interval) //#nosec G115 -- tick counts stay far below MaxInt64
}
