package core

import (
	"testing"
	"time"
)

func TestVirtualClockFiresInDeadlineOrder(t *testing.T) {
	c := NewVirtualClock()
	var order []string

	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	c.Advance(150 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("after 150ms fired %v, expected [a]", order)
	}

	c.Advance(time.Second)
	if got := len(order); got != 3 || order[1] != "b" || order[2] != "c" {
		t.Errorf("fired %v, expected [a b c]", order)
	}
	if c.Now() != 1150*time.Millisecond {
		t.Errorf("Now() = %v, expected 1.15s", c.Now())
	}
}

func TestVirtualClockTiesFireFIFO(t *testing.T) {
	c := NewVirtualClock()
	var order []int
	for i := 0; i < 5; i++ {
		c.AfterFunc(time.Second, func() { order = append(order, i) })
	}

	c.Advance(time.Second)
	for i, v := range order {
		if v != i {
			t.Fatalf("tie order = %v, expected arming order", order)
		}
	}
}

func TestVirtualClockStop(t *testing.T) {
	c := NewVirtualClock()
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestVirtualClockStopAfterFire(t *testing.T) {
	c := NewVirtualClock()
	timer := c.AfterFunc(10*time.Millisecond, func() {})
	c.Advance(10 * time.Millisecond)

	if timer.Stop() {
		t.Error("Stop after firing should report false")
	}
}

func TestVirtualClockCallbackArmsTimer(t *testing.T) {
	c := NewVirtualClock()
	var at []time.Duration

	c.AfterFunc(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.AfterFunc(50*time.Millisecond, func() {
			at = append(at, c.Now())
		})
	})

	c.Advance(200 * time.Millisecond)
	if len(at) != 2 {
		t.Fatalf("expected chained timer to fire within the same advance, got %v", at)
	}
	if at[0] != 100*time.Millisecond || at[1] != 150*time.Millisecond {
		t.Errorf("callbacks saw times %v, expected [100ms 150ms]", at)
	}
}

func TestVirtualClockCallbackStopsTimer(t *testing.T) {
	c := NewVirtualClock()
	fired := false

	var second Timer
	c.AfterFunc(100*time.Millisecond, func() { second.Stop() })
	second = c.AfterFunc(200*time.Millisecond, func() { fired = true })

	c.Advance(time.Second)
	if fired {
		t.Error("timer stopped by an earlier callback should not fire")
	}
}

func TestVirtualClockZeroDelay(t *testing.T) {
	c := NewVirtualClock()
	fired := false
	c.AfterFunc(-time.Second, func() { fired = true })

	c.Advance(0)
	if !fired {
		t.Error("non-positive delay should fire on the next advance")
	}
}
