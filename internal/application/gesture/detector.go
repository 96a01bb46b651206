// Package gesture recognizes long presses. A hold fires exactly once after the
// configured duration; releasing or cancelling earlier fires nothing.
package gesture

import (
	"sync"
	"time"
)

// State is the phase of a press
type State int

const (
	Idle State = iota
	Pressing
	Fired
)

func (s State) String() string {
	switch s {
	case Pressing:
		return "pressing"
	case Fired:
		return "fired"
	default:
		return "idle"
	}
}

// Detector turns press and release events into a single long-press fire.
// It is safe for concurrent use; the fire callback runs on the clock's timer
// goroutine.
type Detector struct {
	hold     time.Duration
	clock    Clock
	onFire   func()
	feedback func()

	mu         sync.Mutex
	state      State
	generation uint64
	timer      Timer
}

// Option configures a Detector
type Option func(*Detector)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(d *Detector) { d.clock = c }
}

// WithFeedback registers a side effect run right before the fire callback,
// typically haptic feedback
func WithFeedback(fn func()) Option {
	return func(d *Detector) { d.feedback = fn }
}

// NewDetector creates a detector that calls onFire after a press held for hold
func NewDetector(hold time.Duration, onFire func(), opts ...Option) *Detector {
	d := &Detector{
		hold:   hold,
		clock:  SystemClock{},
		onFire: onFire,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Press starts a hold. A press while already pressing restarts the timer.
func (d *Detector) Press() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.generation++
	gen := d.generation
	d.state = Pressing
	d.timer = d.clock.AfterFunc(d.hold, func() { d.fire(gen) })
}

// Release ends the hold. It reports whether the hold had already fired, so
// callers can suppress the short-press action of the same button.
func (d *Detector) Release() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fired := d.state == Fired
	d.stopLocked()
	d.state = Idle
	return fired
}

// Cancel aborts the hold without firing, e.g. when the pointer leaves the button
func (d *Detector) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.state = Idle
}

// State returns the current phase
func (d *Detector) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// stopLocked invalidates any pending timer callback
func (d *Detector) stopLocked() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Detector) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || d.state != Pressing {
		d.mu.Unlock()
		return
	}
	d.state = Fired
	d.timer = nil
	d.mu.Unlock()

	if d.feedback != nil {
		d.feedback()
	}
	if d.onFire != nil {
		d.onFire()
	}
}
