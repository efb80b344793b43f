package core

import "time"

// DefaultTick is the simulation period used when none is configured.
const DefaultTick = 100 * time.Millisecond

// FixedStep paces simulation ticks independently of the render loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing once per tick.
func NewFixedStep(tick time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTick(tick)
	return fs
}

// SetTick changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetTick(tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTick
	}
	f.step = tick
}

// Tick returns the configured period.
func (f *FixedStep) Tick() time.Duration { return f.step }

// Due returns how many ticks have elapsed since the previous call. The first
// call only starts the clock. Backlog is capped so a stalled frame does not
// trigger a burst of catch-up steps.
func (f *FixedStep) Due(maxSteps int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	if maxSteps > 0 && n > maxSteps {
		n = maxSteps
		f.accumulator = 0
	}
	return n
}
