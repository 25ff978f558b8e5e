// Package loop drives a catch game in real or virtual time.
//
// A Driver owns the game state. Timers, key handlers and restart requests only
// post messages to it; one goroutine applies them in arrival order.
package loop

import (
	"sync"
	"time"
)

// Clock schedules repeating callbacks. Callbacks are the only way simulation
// time advances.
type Clock interface {
	// ScheduleRepeating calls fn every interval until cancel is called.
	ScheduleRepeating(interval time.Duration, fn func()) (cancel func())
}

// TickerClock is a Clock backed by time.Ticker. Each schedule runs in its own goroutine.
type TickerClock struct{}

// NewTickerClock returns a wall-clock Clock.
func NewTickerClock() *TickerClock {
	return &TickerClock{}
}

// ScheduleRepeating implements Clock.
func (TickerClock) ScheduleRepeating(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualClock is a virtual Clock for tests and headless runs. Time moves only
// when Advance is called, and callbacks run synchronously on the caller's goroutine.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	interval  time.Duration
	next      time.Duration
	fn        func()
	cancelled bool
}

// NewManualClock returns a ManualClock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// ScheduleRepeating implements Clock. The first call happens one interval from now.
func (c *ManualClock) ScheduleRepeating(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		panic("loop: ScheduleRepeating interval must be positive")
	}

	c.mu.Lock()
	t := &manualTimer{interval: interval, next: c.now + interval, fn: fn}
	c.timers = append(c.timers, t)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		t.cancelled = true
		c.mu.Unlock()
	}
}

// Advance moves virtual time forward by d, firing every callback that falls due
// in chronological order. Callbacks due at the same instant fire in the order
// they were scheduled.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.nextDue(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = t.next
		t.next += t.interval
		fn := t.fn
		c.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest live timer due at or before target. Callers hold mu.
func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer
	for _, t := range c.timers {
		if t.cancelled || t.next > target {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}

// Now returns the virtual time elapsed since the clock was created.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
