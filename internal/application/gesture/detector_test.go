package gesture

import (
	"sync"
	"testing"
	"time"
)

// manualClock fires timers only when advanced
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// fireAll runs every timer ever scheduled, including stopped ones, to
// simulate callbacks that raced with Stop
func (c *manualClock) fireAll() {
	c.mu.Lock()
	timers := append([]*manualTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range timers {
		t.f()
	}
}

func TestDetector(t *testing.T) {
	const hold = 2 * time.Second

	tests := []struct {
		name      string
		run       func(d *Detector, c *manualClock)
		wantFires int
		wantState State
	}{
		{
			name: "short hold never fires",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(1999 * time.Millisecond)
				d.Release()
				c.Advance(time.Hour)
			},
			wantFires: 0,
			wantState: Idle,
		},
		{
			name: "long hold fires once",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(hold)
				c.Advance(time.Hour)
			},
			wantFires: 1,
			wantState: Fired,
		},
		{
			name: "release after fire returns to idle",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(3 * time.Second)
				d.Release()
			},
			wantFires: 1,
			wantState: Idle,
		},
		{
			name: "cancel aborts",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(time.Second)
				d.Cancel()
				c.Advance(time.Hour)
			},
			wantFires: 0,
			wantState: Idle,
		},
		{
			name: "repress restarts the hold",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(1500 * time.Millisecond)
				d.Release()
				d.Press()
				c.Advance(1500 * time.Millisecond)
			},
			wantFires: 0,
			wantState: Pressing,
		},
		{
			name: "two separate holds fire twice",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				c.Advance(hold)
				d.Release()
				d.Press()
				c.Advance(hold)
				d.Release()
			},
			wantFires: 2,
			wantState: Idle,
		},
		{
			name: "stale callbacks are ignored",
			run: func(d *Detector, c *manualClock) {
				d.Press()
				d.Release()
				d.Press()
				d.Cancel()
				c.fireAll()
			},
			wantFires: 0,
			wantState: Idle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &manualClock{}
			fires := 0
			d := NewDetector(hold, func() { fires++ }, WithClock(clock))

			tt.run(d, clock)

			if fires != tt.wantFires {
				t.Errorf("fires = %d, want %d", fires, tt.wantFires)
			}
			if got := d.State(); got != tt.wantState {
				t.Errorf("state = %v, want %v", got, tt.wantState)
			}
		})
	}
}

func TestDetector_ReleaseReportsFire(t *testing.T) {
	clock := &manualClock{}
	d := NewDetector(600*time.Millisecond, nil, WithClock(clock))

	d.Press()
	if d.Release() {
		t.Errorf("short press reported as fired")
	}

	d.Press()
	clock.Advance(600 * time.Millisecond)
	if !d.Release() {
		t.Errorf("long press not reported as fired")
	}
}

func TestDetector_FeedbackRunsBeforeFire(t *testing.T) {
	clock := &manualClock{}
	var order []string
	d := NewDetector(time.Second,
		func() { order = append(order, "fire") },
		WithClock(clock),
		WithFeedback(func() { order = append(order, "feedback") }),
	)

	d.Press()
	clock.Advance(time.Second)

	if len(order) != 2 || order[0] != "feedback" || order[1] != "fire" {
		t.Errorf("order = %v", order)
	}
}

func TestDetector_SystemClock(t *testing.T) {
	done := make(chan struct{})
	d := NewDetector(10*time.Millisecond, func() { close(done) })

	d.Press()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detector did not fire")
	}
	if !d.Release() {
		t.Errorf("expected Release to report the fire")
	}
}
