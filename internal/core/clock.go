package core

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped the timer,
	// false if it already fired or was stopped.
	Stop() bool
}

// Scheduler arms callbacks against a clock.
type Scheduler interface {
	Now() time.Duration
	AfterFunc(d time.Duration, f func()) Timer
}

// VirtualClock is a single-threaded Scheduler driven by explicit Advance calls.
// Callbacks run on the caller's goroutine inside Advance, so game code that is
// only touched from the tick loop never needs locking.
type VirtualClock struct {
	now     time.Duration
	seq     uint64
	pending []*clockTimer
}

type clockTimer struct {
	clock    *VirtualClock
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewVirtualClock creates a clock at time zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules f to run once the clock has advanced by d.
// Negative durations are treated as zero.
func (c *VirtualClock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{
		clock:    c,
		deadline: c.now + d,
		seq:      c.seq,
		fn:       f,
	}
	c.pending = append(c.pending, t)
	return t
}

// Pending returns the number of armed timers.
func (c *VirtualClock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock forward by d and fires every timer that comes due,
// in deadline order with ties broken by arming order. Timers armed by a
// callback fire within the same Advance if their deadline falls inside it.
func (c *VirtualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := c.now + d

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.remove(next)
		next.done = true
		c.now = next.deadline
		next.fn()
	}
	c.now = target
}

func (c *VirtualClock) nextDue(target time.Duration) *clockTimer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	if c.pending[0].deadline > target {
		return nil
	}
	return c.pending[0]
}

func (c *VirtualClock) remove(t *clockTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

func (t *clockTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
