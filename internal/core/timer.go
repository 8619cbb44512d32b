package core

import "time"

// FixedStep paces repeated actions at a steady rate, independent of the
// caller's frame rate. The viewer uses it to auto-advance through stage
// snapshots.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given steps per second.
// The first ShouldStep after construction fires immediately.
func NewFixedStep(sps int) *FixedStep {
	if sps <= 0 {
		sps = 4
	}
	fs := &FixedStep{}
	fs.SetRate(sps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the pace. Safe to call between steps.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 4
	}
	f.step = time.Second / time.Duration(sps)
}

// Reset restarts the pacing as if freshly constructed, so the next
// ShouldStep fires immediately and later ones wait a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the next action is due.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
